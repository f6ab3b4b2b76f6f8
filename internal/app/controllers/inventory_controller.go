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

// InventoryController handles inventory requests.
type InventoryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewInventoryController creates a new inventory controller.
func NewInventoryController(ctx *gin.Context, container *container.ServiceContainer) *InventoryController {
	return &InventoryController{
		Ctx:       ctx,
		Container: container,
	}
}

// InventoryAddRequest is the purchase record payload. Category picks which
// list the selected option lands in.
type InventoryAddRequest struct {
	Category       string  `json:"category" binding:"required" example:"chemical"`
	SelectedOption string  `json:"selectedOption" binding:"required" example:"Biocide"`
	AmountSpent    float64 `json:"amountSpent" binding:"required" example:"500"`
	Receipt        string  `json:"receipt" binding:"required" example:"receipts/2024/chem-02.jpg"`
}

// HandleInventoryFunc returns a gin handler dispatching to the inventory
// controller.
func HandleInventoryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInventoryController(ctx, container)

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

func (c *InventoryController) service() services.InterfaceInventoryService {
	return c.Container.GetService("inventory").(services.InterfaceInventoryService)
}

// Add records a purchase for the authenticated body
// @Summary Add an inventory record
// @Tags Inventory
// @Accept json
// @Produce json
// @Param x-auth-token header string true "body token"
// @Param body body InventoryAddRequest true "purchase payload"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /grampanchayat/inventory/add [post]
func (c *InventoryController) Add() {
	gp := c.Ctx.MustGet(middleware.CtxGrampanchayat).(*models.Grampanchayat)

	var req InventoryAddRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	inv, err := c.service().AddInventory(gp.ID, req.Category, req.SelectedOption, req.AmountSpent, req.Receipt)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			response.Fail(c.Ctx, code.ErrInvalidCategory, "")
			return
		}
		if errors.Is(err, services.ErrGrampanchayatNotFound) {
			response.Fail(c.Ctx, code.ErrGrampanchayatNotFound, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to add inventory", err)
		return
	}

	response.Created(c.Ctx, "Inventory added successfully", inv)
}

// List returns every purchase record with the owning body attached
// @Summary List all inventory records
// @Tags Inventory
// @Produce json
// @Param x-auth-token header string true "body token"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/inventory/list [get]
func (c *InventoryController) List() {
	records, err := c.service().GetAllInventories()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to list inventory", err)
		return
	}
	if len(records) == 0 {
		response.Fail(c.Ctx, code.ErrRecordNotFound, "No inventory records found")
		return
	}
	response.Success(c.Ctx, "Inventory fetched successfully", records)
}

// ListByGrampanchayat returns one body's purchase records
// @Summary List a Grampanchayat's inventory
// @Tags Inventory
// @Produce json
// @Param grampanchayatId path int true "grampanchayat id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/inventory/{grampanchayatId} [get]
func (c *InventoryController) ListByGrampanchayat() {
	id, err := strconv.Atoi(c.Ctx.Param("grampanchayatId"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrValidation, "Invalid Grampanchayat ID")
		return
	}

	records, err := c.service().GetInventoriesByGrampanchayat(uint(id))
	if err != nil {
		response.ServerError(c.Ctx, "Failed to list inventory", err)
		return
	}
	if len(records) == 0 {
		response.Fail(c.Ctx, code.ErrRecordNotFound, "No inventory records found for this Grampanchayat")
		return
	}
	response.Success(c.Ctx, "Inventory fetched successfully", records)
}
