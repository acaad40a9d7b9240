package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteapp/business/v1/note"
	"github.com/ribgsilva/noteapp/platform/web/handler"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description List every note, oldest first
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Failure 500 {object} handler.Error
// @Router /notes/ [get]
func List(ctx *gin.Context) handler.Result {
	list, err := note.List(ctx)
	if err != nil {
		return failure(ctx, err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   list,
	}
}
