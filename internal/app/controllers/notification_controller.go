package controllers

import (
	"errors"
	"strconv"

	"jalseva-http-service/internal/app/middleware"
	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/domain/services"
	"jalseva-http-service/internal/domain/services/container"
	"jalseva-http-service/internal/error/code"
	"jalseva-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// NotificationController handles announcement requests.
type NotificationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNotificationController creates a new notification controller.
func NewNotificationController(ctx *gin.Context, container *container.ServiceContainer) *NotificationController {
	return &NotificationController{
		Ctx:       ctx,
		Container: container,
	}
}

// NotificationCreateRequest is the announcement payload.
type NotificationCreateRequest struct {
	Title   string `json:"title" binding:"required" example:"Water supply interruption"`
	Message string `json:"message" binding:"required" example:"Supply paused Thursday 10:00-14:00 for pipeline repair."`
}

// HandleNotificationFunc returns a gin handler dispatching to the
// notification controller.
func HandleNotificationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNotificationController(ctx, container)

		switch method {
		case "create":
			controller.Create()
		case "list":
			controller.List()
		case "listByGrampanchayat":
			controller.ListByGrampanchayat()
		default:
			response.Fail(ctx, code.ErrBind, "Invalid method")
		}
	}
}

func (c *NotificationController) service() services.InterfaceNotificationService {
	return c.Container.GetService("notification").(services.InterfaceNotificationService)
}

// Create publishes an announcement for the authenticated body
// @Summary Publish a notification
// @Tags Notification
// @Accept json
// @Produce json
// @Param x-auth-token header string true "body token"
// @Param body body NotificationCreateRequest true "announcement payload"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /grampanchayat/notification [post]
func (c *NotificationController) Create() {
	gp := c.Ctx.MustGet(middleware.CtxGrampanchayat).(*models.Grampanchayat)

	var req NotificationCreateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	notification := &models.Notification{
		Title:           req.Title,
		Message:         req.Message,
		GrampanchayatID: gp.ID,
	}
	if err := c.service().CreateNotification(notification); err != nil {
		if errors.Is(err, services.ErrGrampanchayatNotFound) {
			response.Fail(c.Ctx, code.ErrGrampanchayatNotFound, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to publish notification", err)
		return
	}

	response.Created(c.Ctx, "Notification published successfully", notification)
}

// List returns the public feed, newest first
// @Summary List all notifications
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/notification/list [get]
func (c *NotificationController) List() {
	notifications, err := c.service().GetAllNotifications()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to list notifications", err)
		return
	}
	if len(notifications) == 0 {
		response.Fail(c.Ctx, code.ErrRecordNotFound, "No notifications found")
		return
	}
	response.Success(c.Ctx, "Notifications fetched successfully", notifications)
}

// ListByGrampanchayat returns one body's announcements, newest first
// @Summary List a Grampanchayat's notifications
// @Tags Notification
// @Produce json
// @Param grampanchayatId path int true "grampanchayat id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/notification/list/grampanchayat/{grampanchayatId} [get]
func (c *NotificationController) ListByGrampanchayat() {
	id, err := strconv.Atoi(c.Ctx.Param("grampanchayatId"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrValidation, "Invalid Grampanchayat ID")
		return
	}

	notifications, err := c.service().GetNotificationsByGrampanchayat(uint(id))
	if err != nil {
		response.ServerError(c.Ctx, "Failed to list notifications", err)
		return
	}
	if len(notifications) == 0 {
		response.Fail(c.Ctx, code.ErrRecordNotFound, "No notifications found for this Grampanchayat")
		return
	}
	response.Success(c.Ctx, "Notifications fetched successfully", notifications)
}
