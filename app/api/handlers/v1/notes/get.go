package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteapp/business/v1/note"
	"github.com/ribgsilva/noteapp/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} note.Note
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /notes/{id}/ [get]
func Get(ctx *gin.Context) handler.Result {
	id, ok := noteID(ctx)
	if !ok {
		return notFound
	}

	get, err := note.Find(ctx, id)
	if err != nil {
		return failure(ctx, err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   get,
	}
}
