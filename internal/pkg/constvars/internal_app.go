package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         contextKey = "session_data"
)

// User roles.
const (
	RolePatient       = "patient"
	RoleDoctor        = "doctor"
	RoleNurse         = "nurse"
	RoleLabTechnician = "lab_technician"
	RolePharmacist    = "pharmacist"
	RoleAdmin         = "admin"
)

// Appointment statuses.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusApproved  = "approved"
	AppointmentStatusRejected  = "rejected"
	AppointmentStatusCompleted = "completed"
)

// Lab test request statuses.
const (
	LabTestStatusAwaitingPayment = "awaiting_payment"
	LabTestStatusPending         = "pending"
	LabTestStatusInProgress      = "in_progress"
	LabTestStatusCompleted       = "completed"
)

// Lab test result statuses.
const (
	LabResultStatusPositive     = "positive"
	LabResultStatusNegative     = "negative"
	LabResultStatusInconclusive = "inconclusive"
)

// Prescription statuses.
const (
	PrescriptionStatusPending   = "pending"
	PrescriptionStatusApproved  = "approved"
	PrescriptionStatusPaid      = "paid"
	PrescriptionStatusCompleted = "completed"
	PrescriptionStatusRejected  = "rejected"
)

// Payment statuses and types.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"

	PaymentTypeConsultation = "consultation"
	PaymentTypeLabTest      = "lab_test"
	PaymentTypeMedication   = "medication"

	PaymentMethodMobileMoney = "mobile_money"
	PaymentMethodCash        = "cash"
)

// Notification types.
const (
	NotificationTypeAppointment  = "appointment"
	NotificationTypeConsultation = "consultation"
	NotificationTypeLabTest      = "lab_test"
	NotificationTypePrescription = "prescription"
	NotificationTypePayment      = "payment"
)

// Mongo collections.
const (
	MongoCollectionUsers               = "users"
	MongoCollectionHospitals           = "hospitals"
	MongoCollectionDepartments         = "departments"
	MongoCollectionHospitalDepartments = "hospital_departments"
	MongoCollectionDoctors             = "doctors"
	MongoCollectionNurses              = "nurses"
	MongoCollectionPharmacies          = "pharmacies"
	MongoCollectionMedications         = "medications"
	MongoCollectionInsurances          = "insurances"
	MongoCollectionAppointments        = "appointments"
	MongoCollectionConsultations       = "consultations"
	MongoCollectionLabTestTemplates    = "lab_test_templates"
	MongoCollectionLabTestRequests     = "lab_test_requests"
	MongoCollectionLabTestResults      = "lab_test_results"
	MongoCollectionPrescriptions       = "prescriptions"
	MongoCollectionPayments            = "payments"
	MongoCollectionNotifications       = "notifications"
)

// Redis key prefixes.
const (
	RedisSessionKeyPrefix         = "session:"
	RedisAppointmentLockKeyPrefix = "lock:appointment:patient:"
)

// Vitals validation bounds (kg / °C).
const (
	VitalsWeightMin      = 0.0
	VitalsWeightMax      = 500.0
	VitalsTemperatureMin = 30.0
	VitalsTemperatureMax = 45.0
)

const (
	CurrencyRwandanFranc = "RWF"

	DateLayoutISO  = "2006-01-02"
	TimeLayoutHHMM = "15:04"

	AppPaginationURLFormat = "%s?page=%d&page_size=%d"
)
