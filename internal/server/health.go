package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func (hh *HealthHandler) health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
