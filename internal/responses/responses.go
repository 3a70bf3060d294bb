package responses

import "github.com/gin-gonic/gin"

// Error codes recognized by API consumers
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeDatabaseError   = "DATABASE_ERROR"
)

// Envelope is the fixed wrapper every API response uses
type Envelope struct {
	Status  string       `json:"status"`
	Data    interface{}  `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries the fixed code/message pair exposed to callers
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success writes a success envelope with an optional data payload
func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, Envelope{
		Status:  "success",
		Data:    data,
		Message: message,
	})
}

// Fail writes an error envelope. No internal error detail is exposed beyond
// the code/message pair.
func Fail(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Envelope{
		Status: "error",
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
