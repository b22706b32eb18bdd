package dto

// Response is the standard success envelope for the API
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse represents a standardized error response for the API.
// Fields is populated for validation errors only and maps each violated
// field to the reason it was rejected.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// OK wraps data in a success envelope
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKWithMessage wraps data in a success envelope with a message
func OKWithMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}
