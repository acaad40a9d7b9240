package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteapp/business/v1/note"
	"github.com/ribgsilva/noteapp/platform/web/handler"
	"github.com/ribgsilva/noteapp/platform/web/mid"
	"github.com/ribgsilva/noteapp/sys"
	"net/http"
	"strconv"
)

var notFound = handler.Result{
	Status: http.StatusNotFound,
	Body:   handler.Error{Message: "note not found"},
}

// noteID reads the id path param. Anything that is not a positive integer names no note.
func noteID(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// badBody turns a body decoding failure into a 400.
func badBody(err error) handler.Result {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   []handler.Error{{Field: typeErr.Field, Message: fmt.Sprintf("expected a %s", typeErr.Type)}},
		}
	}
	return handler.Result{
		Status: http.StatusBadRequest,
		Body:   []handler.Error{{Message: "invalid JSON body"}},
	}
}

// failure maps business errors to responses. Unknown errors are logged and hidden behind a 500.
func failure(ctx *gin.Context, err error) handler.Result {
	var verrs note.ValidationErrors
	switch {
	case errors.Is(err, note.ErrNotFound):
		return notFound
	case errors.As(err, &verrs):
		body := make([]handler.Error, 0, len(verrs))
		for _, fe := range verrs {
			body = append(body, handler.Error{Field: fe.Field, Message: fe.Message})
		}
		return handler.Result{Status: http.StatusBadRequest, Body: body}
	default:
		sys.R.Log.Errorw("request failed",
			"requestID", mid.GetRequestID(ctx),
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"ERROR", err)
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "internal error"},
		}
	}
}
