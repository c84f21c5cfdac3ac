package mailclient

// Message a rendered email handed to the mail service
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ErrorResponse error payload from the mail service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
