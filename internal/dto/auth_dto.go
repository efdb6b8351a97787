package dto

// UserType values accepted by the login endpoint.
const (
	UserTypeStudent = "student"
	UserTypeTeacher = "teacher"
)

// LoginRequest carries the credentials supplied at login. Email and password
// are compared verbatim; no case or whitespace normalization happens anywhere
// on this path.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"userType" validate:"required"`
}

// LoginResponse returns the matched user with the password stripped.
type LoginResponse struct {
	User     interface{} `json:"user"`
	UserType string      `json:"userType"`
}
