package response

// Resp is the standard JSON response body for system routes.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is the message attached to OK responses.
	MessageSuccess = "Success"
	// DefaultErrorMessage hides internal details from 500 responses.
	DefaultErrorMessage = "Something went wrong"
	// InternalServerErrorCode marks unexpected failures.
	InternalServerErrorCode = 500
)
