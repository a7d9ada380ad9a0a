package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/classware/studentms/internal/config"
)

// HealthController serves the health and info endpoints
type HealthController struct {
	cfg *config.Config
}

// NewHealthController creates a new HealthController
func NewHealthController(cfg *config.Config) *HealthController {
	return &HealthController{
		cfg: cfg,
	}
}

// Health reports API liveness
// @Summary API Health Check
// @Description Returns the current status and timestamp of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy and running"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "UP",
		"timestamp": time.Now(),
		"version":   c.cfg.App.Version,
		"service":   c.cfg.App.Name,
	})
}

// Info returns static API metadata
// @Summary API Information
// @Description Returns information about the API including documentation links
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "API information retrieved successfully"
// @Router /info [get]
func (c *HealthController) Info(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"name":        c.cfg.App.Name,
		"description": c.cfg.App.Description,
		"version":     c.cfg.App.Version,
		"swagger-ui":  "/swagger/index.html",
		"api-docs":    "/swagger/doc.json",
	})
}
