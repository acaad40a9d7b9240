package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteapp/business/v1/note"
	"github.com/ribgsilva/noteapp/platform/web/handler"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Create a note; id and created_at are assigned by the server
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note to create"
// @Success 201 {object} note.Note
// @Failure 400 {array} handler.Error
// @Failure 500 {object} handler.Error
// @Router /notes/ [post]
func Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return badBody(err)
	}

	created, err := note.Create(ctx, newN)
	if err != nil {
		return failure(ctx, err)
	}
	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
