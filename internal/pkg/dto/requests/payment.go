package requests

type CreatePayment struct {
	Type        string `json:"type" validate:"required,oneof=consultation lab_test medication"`
	ReferenceID string `json:"reference_id" validate:"required"`
	Method      string `json:"payment_method" validate:"required,oneof=mobile_money cash"`
	InsuranceID string `json:"insurance_id,omitempty"`
}
