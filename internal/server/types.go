package server

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// TestResponse is the response for the upload smoke-test endpoint
type TestResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ImageName string `json:"image_name"`
}
