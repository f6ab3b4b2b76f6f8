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

// UserComplaintController handles consumer complaint requests.
type UserComplaintController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserComplaintController creates a new consumer complaint controller.
func NewUserComplaintController(ctx *gin.Context, container *container.ServiceContainer) *UserComplaintController {
	return &UserComplaintController{
		Ctx:       ctx,
		Container: container,
	}
}

// UserComplaintCreateRequest is the complaint payload.
type UserComplaintCreateRequest struct {
	ComplaintDetails string `json:"complaintDetails" binding:"required" example:"No water supply since Monday"`
}

// UserComplaintStatusRequest is the status change payload.
type UserComplaintStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Resolved"`
}

// HandleUserComplaintFunc returns a gin handler dispatching to the consumer
// complaint controller.
func HandleUserComplaintFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserComplaintController(ctx, container)

		switch method {
		case "create":
			controller.Create()
		case "updateStatus":
			controller.UpdateStatus()
		case "list":
			controller.List()
		case "listByUser":
			controller.ListByUser()
		case "listByGrampanchayat":
			controller.ListByGrampanchayat()
		default:
			response.Fail(ctx, code.ErrBind, "Invalid method")
		}
	}
}

func (c *UserComplaintController) service() services.InterfaceUserComplaintService {
	return c.Container.GetService("user_complaint").(services.InterfaceUserComplaintService)
}

// Create files a complaint for the authenticated consumer under their body
// @Summary File a consumer complaint
// @Tags UserComplaint
// @Accept json
// @Produce json
// @Param x-auth-token header string true "consumer token"
// @Param body body UserComplaintCreateRequest true "complaint payload"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /user/usercomplaint [post]
func (c *UserComplaintController) Create() {
	consumer := c.Ctx.MustGet(middleware.CtxConsumer).(*models.Consumer)

	var req UserComplaintCreateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	complaint := &models.UserComplaint{
		UserID:           consumer.ID,
		ComplaintDetails: req.ComplaintDetails,
		GrampanchayatID:  consumer.GrampanchayatID,
	}
	if err := c.service().CreateUserComplaint(complaint); err != nil {
		response.ServerError(c.Ctx, "Failed to file complaint", err)
		return
	}

	response.Created(c.Ctx, "Complaint filed successfully", complaint)
}

// UpdateStatus moves a complaint to a new status. Only the body the
// complaint was filed under may do this.
// @Summary Update a consumer complaint status
// @Tags UserComplaint
// @Accept json
// @Produce json
// @Param x-auth-token header string true "body token"
// @Param complaintId path string true "public complaint id"
// @Param body body UserComplaintStatusRequest true "new status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/usercomplaints/{complaintId} [put]
func (c *UserComplaintController) UpdateStatus() {
	gp := c.Ctx.MustGet(middleware.CtxGrampanchayat).(*models.Grampanchayat)
	complaintID := c.Ctx.Param("complaintId")

	var req UserComplaintStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	complaint, err := c.service().UpdateStatus(complaintID, gp.ID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			response.Fail(c.Ctx, code.ErrInvalidStatus, "")
			return
		}
		if errors.Is(err, services.ErrComplaintNotFound) {
			response.Fail(c.Ctx, code.ErrComplaintNotFound, "")
			return
		}
		if errors.Is(err, services.ErrNotComplaintOwner) {
			response.Forbidden(c.Ctx, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to update complaint", err)
		return
	}

	response.Success(c.Ctx, "Complaint status updated successfully", complaint)
}

// List returns every consumer complaint with consumer and body inlined
// @Summary List all consumer complaints
// @Tags UserComplaint
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/usercomplaints/list [get]
func (c *UserComplaintController) List() {
	complaints, err := c.service().GetAllUserComplaints()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to list complaints", err)
		return
	}
	if len(complaints) == 0 {
		response.Fail(c.Ctx, code.ErrComplaintNotFound, "No complaints found")
		return
	}
	response.Success(c.Ctx, "Complaints fetched successfully", complaints)
}

// ListByUser returns one consumer's complaints
// @Summary List a consumer's complaints
// @Tags UserComplaint
// @Produce json
// @Param userId path int true "consumer id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/usercomplaints/{userId} [get]
func (c *UserComplaintController) ListByUser() {
	userID, err := strconv.Atoi(c.Ctx.Param("userId"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrValidation, "Invalid user ID")
		return
	}

	complaints, err := c.service().GetUserComplaintsByConsumer(uint(userID))
	if err != nil {
		response.ServerError(c.Ctx, "Failed to list complaints", err)
		return
	}
	if len(complaints) == 0 {
		response.Fail(c.Ctx, code.ErrComplaintNotFound, "No complaints found for this user")
		return
	}
	response.Success(c.Ctx, "Complaints fetched successfully", complaints)
}

// ListByGrampanchayat returns the consumer complaints filed under one body
// @Summary List a Grampanchayat's consumer complaints
// @Tags UserComplaint
// @Produce json
// @Param grampanchayatId path int true "grampanchayat id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/usercomplaints/gram/{grampanchayatId} [get]
func (c *UserComplaintController) ListByGrampanchayat() {
	id, err := strconv.Atoi(c.Ctx.Param("grampanchayatId"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrValidation, "Invalid Grampanchayat ID")
		return
	}

	complaints, err := c.service().GetUserComplaintsByGrampanchayat(uint(id))
	if err != nil {
		response.ServerError(c.Ctx, "Failed to list complaints", err)
		return
	}
	if len(complaints) == 0 {
		response.Fail(c.Ctx, code.ErrComplaintNotFound, "No complaints found for this Grampanchayat")
		return
	}
	response.Success(c.Ctx, "Complaints fetched successfully", complaints)
}
