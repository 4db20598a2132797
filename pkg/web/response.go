// Package web defines common components for a web application.
package web

// ErrorResponse provides type for explicit json encoded error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Error wraps a given err into json frinedly struct.
func Error(err error) ErrorResponse {
	return ErrorResponse{Detail: err.Error()}
}

// Detail wraps a message into json frinedly struct.
func Detail(msg string) ErrorResponse {
	return ErrorResponse{Detail: msg}
}
