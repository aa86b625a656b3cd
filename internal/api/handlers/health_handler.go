package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports liveness and readiness. Dwellist cannot serve
// traffic without its database or the directory listing images live in, so
// both are probed.
type HealthHandler struct {
	db       *gorm.DB
	imageDir string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *gorm.DB, imageDir string) *HealthHandler {
	return &HealthHandler{db: db, imageDir: imageDir}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	services := map[string]string{
		"database":      "healthy",
		"image_storage": "healthy",
	}
	status := "healthy"

	if err := h.pingDatabase(); err != nil {
		services["database"] = "unhealthy"
		status = "unhealthy"
	}
	if err := h.checkImageDir(); err != nil {
		services["image_storage"] = "unhealthy"
		status = "unhealthy"
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, HealthResponse{
		Status:   status,
		Services: services,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c echo.Context) error {
	if err := h.pingDatabase(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "database ping failed",
		})
	}
	if err := h.checkImageDir(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "image storage unavailable",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (h *HealthHandler) pingDatabase() error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// checkImageDir verifies the listing image directory still exists and is a
// directory. Uploads land there, so a missing mount means degraded service.
func (h *HealthHandler) checkImageDir() error {
	info, err := os.Stat(h.imageDir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", h.imageDir)
	}
	return nil
}
