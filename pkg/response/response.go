package response

import (
	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func Success(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// Error renders err without leaking its cause. Internal errors are logged
// with the cause and rendered with a generic message.
func Error(c *gin.Context, err error, log *logger.Logger) {
	appErr := apperr.From(err)
	status := appErr.HTTPStatus()
	message := appErr.Message

	switch appErr.Code {
	case apperr.CodeInternal:
		message = "Internal server error"
		if log != nil {
			log.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
		}
	case apperr.CodeUpstreamFailure:
		if log != nil {
			log.Warn("%s %s: %v", c.Request.Method, c.FullPath(), err)
		}
	}

	Abort(c, status, message)
}

// Abort writes a failure envelope and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		StatusCode: status,
		Message:    message,
		Success:    false,
	})
}
