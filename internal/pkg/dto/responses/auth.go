package responses

type RegisterUser struct {
	UserID string `json:"user_id"`
}

type LoginUser struct {
	Token string `json:"token"`
}

type Profile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}
