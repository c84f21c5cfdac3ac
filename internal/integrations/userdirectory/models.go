package userdirectory

// Contact contact data of a registered user
type Contact struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Locale string `json:"locale"`
}

// ErrorResponse error payload from the user directory
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
