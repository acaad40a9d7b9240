package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteapp/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/noteapp/app/api/handlers/v1/notes"
	"github.com/ribgsilva/noteapp/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	r.GET("/notes/", handler.Wrapper(notes.List))
	r.POST("/notes/", handler.Wrapper(notes.Create))
	r.GET("/notes/:id/", handler.Wrapper(notes.Get))
	r.PUT("/notes/:id/", handler.Wrapper(notes.Put))
	r.PATCH("/notes/:id/", handler.Wrapper(notes.Patch))
	r.DELETE("/notes/:id/", handler.Wrapper(notes.Delete))
}
