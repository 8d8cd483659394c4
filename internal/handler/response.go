package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Response helpers

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    data,
	})
}

func Error(c *gin.Context, httpCode int, code int, message string) {
	c.JSON(httpCode, gin.H{
		"code":    code,
		"message": message,
		"data":    nil,
	})
}

func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code int, message string) {
	Error(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code int, message string) {
	Error(c, http.StatusForbidden, code, message)
}

func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, 50001, message)
}

func parseID(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 64)
	return uint(id)
}

// parseErrorCode splits the service layer's "NNNNN:message" convention into
// its code and message, defaulting to a generic internal code.
func parseErrorCode(err error) (int, string) {
	msg := err.Error()
	if len(msg) > 5 && msg[5] == ':' {
		code, e := strconv.Atoi(msg[:5])
		if e == nil {
			return code, msg[6:]
		}
	}
	return 50001, msg
}

func respondServiceError(c *gin.Context, err error) {
	code, msg := parseErrorCode(err)
	switch code / 100 {
	case 401:
		Unauthorized(c, code, msg)
	case 403:
		Forbidden(c, code, msg)
	case 404:
		NotFound(c, code, msg)
	case 400:
		BadRequest(c, code, msg)
	default:
		InternalError(c, msg)
	}
}
