package response

import "github.com/gin-gonic/gin"

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondDomainFailure is RespondJSON for structured booking failures,
// carrying the machine error code alongside the message.
func RespondDomainFailure(c *gin.Context, code int, message, errorCode string, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     "error",
		StatusCode: code,
		Message:    message,
		ErrorCode:  errorCode,
		Errors:     errors,
	})
}
