package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteapp/business/v1/note"
	"github.com/ribgsilva/noteapp/platform/web/handler"
	"net/http"
)

// Delete godoc
// @Summary Delete a note
// @Tags Note
// @Param id path int true "Note id"
// @Success 204
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /notes/{id}/ [delete]
func Delete(ctx *gin.Context) handler.Result {
	id, ok := noteID(ctx)
	if !ok {
		return notFound
	}

	if err := note.Delete(ctx, id); err != nil {
		return failure(ctx, err)
	}
	return handler.Result{Status: http.StatusNoContent}
}
