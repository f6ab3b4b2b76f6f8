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

// ComplaintController handles body-level complaint requests.
type ComplaintController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewComplaintController creates a new complaint controller.
func NewComplaintController(ctx *gin.Context, container *container.ServiceContainer) *ComplaintController {
	return &ComplaintController{
		Ctx:       ctx,
		Container: container,
	}
}

// ComplaintAddRequest is the complaint payload.
type ComplaintAddRequest struct {
	Description string `json:"description" binding:"required" example:"Chlorine stock not delivered this quarter"`
	Purpose     string `json:"purpose" binding:"required" example:"Supply escalation"`
}

// HandleComplaintFunc returns a gin handler dispatching to the complaint
// controller.
func HandleComplaintFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewComplaintController(ctx, container)

		switch method {
		case "add":
			controller.Add()
		case "list":
			controller.List()
		case "listByGrampanchayat":
			controller.ListByGrampanchayat()
		default:
			response.Fail(ctx, code.ErrBind, "Invalid method")
		}
	}
}

func (c *ComplaintController) service() services.InterfaceComplaintService {
	return c.Container.GetService("complaint").(services.InterfaceComplaintService)
}

// Add files a complaint for the authenticated body
// @Summary Add a complaint
// @Tags Complaint
// @Accept json
// @Produce json
// @Param x-auth-token header string true "body token"
// @Param body body ComplaintAddRequest true "complaint payload"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /grampanchayat/complaint/add [post]
func (c *ComplaintController) Add() {
	gp := c.Ctx.MustGet(middleware.CtxGrampanchayat).(*models.Grampanchayat)

	var req ComplaintAddRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	complaint := &models.Complaint{
		Description:     req.Description,
		Purpose:         req.Purpose,
		GrampanchayatID: gp.ID,
	}
	if err := c.service().CreateComplaint(complaint); err != nil {
		if errors.Is(err, services.ErrGrampanchayatNotFound) {
			response.Fail(c.Ctx, code.ErrGrampanchayatNotFound, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to add complaint", err)
		return
	}

	response.Created(c.Ctx, "Complaint registered successfully", complaint)
}

// List returns every complaint across bodies. The route is token-gated but
// deliberately not tenant-filtered.
// @Summary List all complaints
// @Tags Complaint
// @Produce json
// @Param x-auth-token header string true "body token"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/complaint/list [get]
func (c *ComplaintController) List() {
	complaints, err := c.service().GetAllComplaints()
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

// ListByGrampanchayat returns one body's complaints
// @Summary List a Grampanchayat's complaints
// @Tags Complaint
// @Produce json
// @Param x-auth-token header string true "body token"
// @Param grampanchayatId path int true "grampanchayat id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/complaint-gram-id/{grampanchayatId} [get]
func (c *ComplaintController) ListByGrampanchayat() {
	id, err := strconv.Atoi(c.Ctx.Param("grampanchayatId"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrValidation, "Invalid Grampanchayat ID")
		return
	}

	complaints, err := c.service().GetComplaintsByGrampanchayat(uint(id))
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
