package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"

	LoggingUserIDKey            = "user_id"
	LoggingPatientIDKey         = "patient_id"
	LoggingDoctorIDKey          = "doctor_id"
	LoggingAppointmentIDKey     = "appointment_id"
	LoggingConsultationIDKey    = "consultation_id"
	LoggingLabTestRequestKey    = "lab_test_request_id"
	LoggingPrescriptionIDKey    = "prescription_id"
	LoggingPrescriptionCountKey = "prescription_count"
	LoggingPaymentIDKey         = "payment_id"
	LoggingNotificationIDKey    = "notification_id"
	LoggingReferenceIDKey       = "reference_id"
	LoggingPaymentTypeKey       = "payment_type"
	LoggingStatusKey            = "status"
	LoggingDateKey              = "date"
	LoggingSlotCountKey         = "slot_count"
	LoggingAppointmentDateKey   = "appointment_date"
	LoggingRedisKey             = "redis_key"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingLockValueKey         = "lock_value"
	LoggingQueueKey             = "queue"
)
