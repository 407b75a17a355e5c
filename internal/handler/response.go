package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// Error writes err as a JSON error response, honoring the error's own
// status code when it carries one.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if e, ok := err.(interface{ StatusCode() int }); ok {
		status = e.StatusCode()
	}
	c.JSON(status, NewErrorResponse(err.Error()))
}
