package requests

type CreateLabTestTemplate struct {
	Name        string  `json:"name" validate:"required,not_blank"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gte=0"`
}

// completed is deliberately absent, a request only completes through
// result submission.
type UpdateLabTestStatus struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress"`
}

type SubmitLabTestResult struct {
	ResultStatus string `json:"result_status" validate:"required,oneof=positive negative inconclusive"`
	ResultData   string `json:"result_data" validate:"required,not_blank"`
	Notes        string `json:"notes,omitempty"`
}
