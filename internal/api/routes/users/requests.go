package users

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,min=2"`
	Plan     string `json:"plan" validate:"omitempty,oneof=free premium"`
}
