package controllers

import (
	"time"

	"jalseva-http-service/internal/domain/services"
	"jalseva-http-service/internal/domain/services/container"
	"jalseva-http-service/internal/error/code"
	"jalseva-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// HealthController reports liveness and dependency status.
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller.
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler dispatching to the health
// controller.
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.Fail(ctx, code.ErrBind, "Invalid method")
		}
	}
}

// Ping answers liveness probes
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, "pong", gin.H{
		"uptime": time.Since(startedAt).String(),
	})
}

// Status reports database and cache connectivity
// @Summary Dependency status
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /health/status [get]
func (c *HealthController) Status() {
	status := gin.H{
		"uptime": time.Since(startedAt).String(),
	}

	db := c.Container.GetDB()
	if sqlDB, err := db.DB(); err == nil && sqlDB.Ping() == nil {
		status["database"] = "up"
	} else {
		status["database"] = "down"
	}

	if redisService, ok := c.Container.GetService("redis").(services.InterfaceRedisService); ok && redisService != nil {
		if redisService.HealthCheck() == nil {
			status["redis"] = "up"
		} else {
			status["redis"] = "down"
		}
	} else {
		status["redis"] = "disabled"
	}

	response.Success(c.Ctx, "Status fetched successfully", status)
}
