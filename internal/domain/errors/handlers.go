package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "TOKEN_NOT_AVAILABLE"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the envelope written for failed requests
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
