package constvars

// Client-facing error messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "Your session has expired, please log in again"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientEmailAlreadyExists            = "An account with this email already exists"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again"

	ErrClientActiveAppointmentExists   = "You already have an active appointment. Please wait until it is completed or rejected"
	ErrClientSlotNotAvailable          = "This time slot is no longer available. Please select another"
	ErrClientInvalidWeight             = "Please enter a valid weight (1-500 kg)"
	ErrClientInvalidTemperature        = "Please enter a valid temperature (30-45°C)"
	ErrClientRejectionReasonRequired   = "A rejection reason is required"
	ErrClientConsultationNotPaid       = "Patient has not paid the consultation fee"
	ErrClientLabTestNotPaid            = "This lab test has not been paid for yet"
	ErrClientEmptyPrescription         = "A prescription must contain at least one medication"
	ErrClientDosageRequired            = "Every medication line requires a dosage"
	ErrClientSignatureRequired         = "An electronic signature is required before saving a prescription"
	ErrClientPrescriptionNotApproved   = "This prescription has not been approved by a pharmacist yet"
	ErrClientPrescriptionNotPaid       = "This prescription has not been paid for yet"
	ErrClientDuplicateAssignment       = "This department is already assigned to the hospital"
	ErrClientInvalidStatusTransition   = "This status change is not allowed"
	ErrClientDiagnosisRequired         = "A diagnosis is required to save the consultation"
	ErrClientResultAlreadySubmitted    = "A result has already been submitted for this lab test"
	ErrClientResultDataRequired        = "Please enter the test result data"
	ErrClientAppointmentNotActionable  = "This appointment is not in a state that allows this action"
	ErrClientInsuranceCoverageInvalid  = "Insurance coverage must be between 0 and 100 percent"
	ErrClientRecordNotFound            = "The requested record could not be found"
)

// Developer error messages (never shown to clients).
const (
	ErrDevValidationFailed        = "request validation failed"
	ErrDevCannotParseJSON         = "failed to parse JSON request body"
	ErrDevCannotParseDate         = "failed to parse date"
	ErrDevCannotMarshalJSON       = "failed to marshal value to JSON"
	ErrDevServerDeadlineExceeded  = "request deadline exceeded"
	ErrDevServerProcess           = "failed processing the request"
	ErrDevMissingRequestID        = "request_id not found in context"
	ErrDevMissingSessionData      = "session data not found in context"
	ErrDevInvalidCredentials      = "credentials do not match any user"
	ErrDevEmailAlreadyExists      = "email already registered"
	ErrDevFailedToHashPassword    = "failed to hash password"
	ErrDevAuthTokenMissing        = "authorization token missing"
	ErrDevAuthTokenInvalid        = "authorization token invalid or expired"
	ErrDevAuthGenerateToken       = "failed to generate session token"
	ErrDevAuthInvalidSession      = "session not found or expired"
	ErrDevRoleTypeDoesntMatch     = "session role does not permit this operation"
	ErrDevURLParamMissing         = "required URL parameter %s is missing"

	ErrDevDBFailedToFindDocument    = "mongodb: failed to find document"
	ErrDevDBFailedToInsertDocument  = "mongodb: failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "mongodb: failed to update document"
	ErrDevDBFailedToDeleteDocument  = "mongodb: failed to delete document"
	ErrDevDBFailedToIterateDocument = "mongodb: failed to iterate documents"
	ErrDevDBFailedToCountDocuments  = "mongodb: failed to count documents"
	ErrDevDBStringNotObjectID       = "mongodb: string is not a valid ObjectID"

	ErrDevRedisGetData    = "redis: failed to get data"
	ErrDevRedisSetData    = "redis: failed to set data"
	ErrDevRedisDeleteData = "redis: failed to delete data"
	ErrDevRedisSetNX      = "redis: failed to set data with NX"
	ErrDevRedisEval       = "redis: failed to eval script"

	ErrDevQueuePublishMessage = "rabbitmq: failed to publish message to queue %s"
	ErrDevQueueConsume        = "rabbitmq: failed to start consumer for queue %s"

	ErrDevMinioCreateObject = "minio: failed to create object in bucket %s"
	ErrDevMinioPresignURL   = "minio: failed to generate presigned url in bucket %s"
)
