package constvars

const (
	RegisterSuccessMessage = "Account registered successfully"
	LoginSuccessMessage    = "Logged in successfully"
	LogoutSuccessMessage   = "Logged out successfully"
	GetProfileSuccessMessage = "Profile retrieved successfully"

	GetAppointmentSuccessMessage      = "Appointments retrieved successfully"
	GetAvailableSlotsSuccessMessage   = "Available slots retrieved successfully"
	CreateAppointmentSuccessMessage   = "Appointment requested successfully"
	ApproveAppointmentSuccessMessage  = "Appointment approved and vitals recorded"
	RejectAppointmentSuccessMessage   = "Appointment rejected"

	GetConsultationSuccessMessage  = "Consultation retrieved successfully"
	SaveConsultationSuccessMessage = "Consultation saved successfully"

	GetLabTestSuccessMessage          = "Lab tests retrieved successfully"
	CreateLabTestTemplateSuccess      = "Lab test template created successfully"
	UpdateLabTestRequestSuccess       = "Lab test request updated successfully"
	SubmitLabTestResultSuccessMessage = "Lab test result submitted successfully"

	GetPrescriptionSuccessMessage     = "Prescriptions retrieved successfully"
	CreatePrescriptionSuccessMessage  = "Prescription created successfully"
	ReviewPrescriptionSuccessMessage  = "Prescription review saved successfully"
	DispensePrescriptionSuccess       = "Prescription dispensed successfully"

	GetPaymentSuccessMessage    = "Payments retrieved successfully"
	CreatePaymentSuccessMessage = "Payment recorded successfully"

	GetNotificationSuccessMessage      = "Notifications retrieved successfully"
	MarkNotificationReadSuccessMessage = "Notification marked as read"

	GetHospitalSuccessMessage    = "Hospitals retrieved successfully"
	CreateHospitalSuccessMessage = "Hospital created successfully"
	UpdateHospitalSuccessMessage = "Hospital updated successfully"
	DeleteHospitalSuccessMessage = "Hospital deleted successfully"

	GetDepartmentSuccessMessage    = "Departments retrieved successfully"
	CreateDepartmentSuccessMessage = "Department created successfully"
	UpdateDepartmentSuccessMessage = "Department updated successfully"
	DeleteDepartmentSuccessMessage = "Department deleted successfully"
	AssignDepartmentSuccessMessage = "Department assigned to hospital successfully"

	GetInsuranceSuccessMessage    = "Insurances retrieved successfully"
	CreateInsuranceSuccessMessage = "Insurance created successfully"
	UpdateInsuranceSuccessMessage = "Insurance updated successfully"
	DeleteInsuranceSuccessMessage = "Insurance deleted successfully"

	GetPharmacySuccessMessage    = "Pharmacies retrieved successfully"
	CreatePharmacySuccessMessage = "Pharmacy created successfully"
	UpdatePharmacySuccessMessage = "Pharmacy updated successfully"
	DeletePharmacySuccessMessage = "Pharmacy deleted successfully"

	GetMedicationSuccessMessage    = "Medications retrieved successfully"
	CreateMedicationSuccessMessage = "Medication created successfully"
	UpdateMedicationSuccessMessage = "Medication updated successfully"
	DeleteMedicationSuccessMessage = "Medication deleted successfully"

	GetDoctorSuccessMessage    = "Doctors retrieved successfully"
	CreateDoctorSuccessMessage = "Doctor created successfully"
	UpdateDoctorSuccessMessage = "Doctor updated successfully"
	DeleteDoctorSuccessMessage = "Doctor deleted successfully"

	GetNurseSuccessMessage    = "Nurses retrieved successfully"
	CreateNurseSuccessMessage = "Nurse created successfully"
	UpdateNurseSuccessMessage = "Nurse updated successfully"
	DeleteNurseSuccessMessage = "Nurse deleted successfully"
)
