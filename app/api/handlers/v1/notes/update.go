package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteapp/business/v1/note"
	"github.com/ribgsilva/noteapp/platform/web/handler"
	"net/http"
)

// Put godoc
// @Summary Replace a note
// @Description Replace title and content of a note. id and created_at are read only.
// @Tags Note
// @Accept json
// @Produce json
// @Param id path int true "Note id"
// @Param note body note.NewNote true "New title and content"
// @Success 200 {object} note.Note
// @Failure 400 {array} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /notes/{id}/ [put]
func Put(ctx *gin.Context) handler.Result {
	id, ok := noteID(ctx)
	if !ok {
		return notFound
	}

	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return badBody(err)
	}

	updated, err := note.Replace(ctx, id, newN)
	if err != nil {
		return failure(ctx, err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   updated,
	}
}

// Patch godoc
// @Summary Update a note
// @Description Update the given fields of a note, leaving the others untouched
// @Tags Note
// @Accept json
// @Produce json
// @Param id path int true "Note id"
// @Param note body note.UpdateNote true "Fields to change"
// @Success 200 {object} note.Note
// @Failure 400 {array} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /notes/{id}/ [patch]
func Patch(ctx *gin.Context) handler.Result {
	id, ok := noteID(ctx)
	if !ok {
		return notFound
	}

	var upd note.UpdateNote
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		return badBody(err)
	}

	updated, err := note.Update(ctx, id, upd)
	if err != nil {
		return failure(ctx, err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   updated,
	}
}
