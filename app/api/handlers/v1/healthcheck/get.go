package healthcheck

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteapp/platform/web/handler"
	"github.com/ribgsilva/noteapp/sys"
	"net/http"
)

type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Description Reports whether the service can reach its database
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Failure 503 {object} handler.Error
// @Router /v1/healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	pingCtx, pingCancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
	defer pingCancel()

	if err := sys.R.Database.PingContext(pingCtx); err != nil {
		sys.R.Log.Errorw("healthcheck", "ERROR", err)
		return handler.Result{
			Status: http.StatusServiceUnavailable,
			Body:   handler.Error{Message: "database unavailable"},
		}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "ok"},
	}
}
