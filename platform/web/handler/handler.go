package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what a Func returns: the status code and the body to be rendered as JSON.
// A nil Body writes only the status.
type Result struct {
	Status int
	Body   any
}

// Error is the JSON shape of every error response.
type Error struct {
	Field   string `json:"field,omitempty" example:"title"`
	Message string `json:"message" example:"note not found"`
}

// Func is a gin handler that returns its response instead of writing it.
type Func func(ctx *gin.Context) Result

// Wrapper adapts a Func to a gin.HandlerFunc.
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
