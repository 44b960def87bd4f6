package handlers

import (
	"github.com/dantee-nv/contact-relay/internal/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.RespondOK(c, "Health check OK")
}
