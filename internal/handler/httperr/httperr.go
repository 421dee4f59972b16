// Package httperr defines the envelope used when a handler aborts a
// request through the shared gin error middleware.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the public error body. The flat {"error": "..."} shape is
// the contract the original clients parse.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// AbortWithError records err on the gin context, so the logging middleware
// still sees the cause, then aborts with the public envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
