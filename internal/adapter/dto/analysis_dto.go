package dto

// AnalyzeRequest is the body of POST /analyze
type AnalyzeRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by the health routes
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
