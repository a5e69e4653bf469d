package dto

// Response is the uniform envelope every endpoint renders, success or failure.
type Response struct {
	Success    bool        `json:"success" example:"true"`
	StatusCode int         `json:"status_code" example:"200"`
	Message    string      `json:"message" example:"Success"`
	Data       interface{} `json:"data"`
}

// NewSuccessResponse creates a success envelope.
func NewSuccessResponse(data interface{}, message string, statusCode int) Response {
	return Response{
		Success:    true,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	}
}

// NewErrorResponse creates a failure envelope. Data is always null.
func NewErrorResponse(message string, statusCode int) Response {
	return Response{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Data:       nil,
	}
}
