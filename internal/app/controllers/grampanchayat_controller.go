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

// InterfaceGrampanchayatController defines the body controller interface.
type InterfaceGrampanchayatController interface {
	Create()
	List()
	Login()
	Details()
	Get()
	Update()
	Delete()
	SpendList()
	InventorySpendList()
}

// GrampanchayatController handles body (tenant) requests.
type GrampanchayatController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewGrampanchayatController creates a new body controller.
func NewGrampanchayatController(ctx *gin.Context, container *container.ServiceContainer) *GrampanchayatController {
	return &GrampanchayatController{
		Ctx:       ctx,
		Container: container,
	}
}

// GrampanchayatCreateRequest is the registration payload.
type GrampanchayatCreateRequest struct {
	Name            string `json:"name" binding:"required" example:"Rampur Gram Panchayat"`
	GrampanchayatID string `json:"grampanchayatId" binding:"required" example:"GP-100"`
	Address         string `json:"address" binding:"required" example:"Block Road, Rampur"`
	VillageName     string `json:"villageName" binding:"required" example:"Rampur"`
	Password        string `json:"password" binding:"required" example:"secret123"`
}

// GrampanchayatLoginRequest is the login payload.
type GrampanchayatLoginRequest struct {
	GrampanchayatID string `json:"grampanchayatId" binding:"required" example:"GP-100"`
	Password        string `json:"password" binding:"required" example:"secret123"`
}

// GrampanchayatUpdateRequest is the partial update payload.
type GrampanchayatUpdateRequest struct {
	Name        string `json:"name" example:"Rampur Gram Panchayat"`
	Address     string `json:"address" example:"New Block Road"`
	VillageName string `json:"villageName" example:"Rampur"`
	Password    string `json:"password" example:"newpass"`
	Status      *int   `json:"status" example:"1"`
}

// HandleGrampanchayatFunc returns a gin handler dispatching to the body
// controller.
func HandleGrampanchayatFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewGrampanchayatController(ctx, container)

		switch method {
		case "create":
			controller.Create()
		case "list":
			controller.List()
		case "login":
			controller.Login()
		case "details":
			controller.Details()
		case "get":
			controller.Get()
		case "update":
			controller.Update()
		case "delete":
			controller.Delete()
		case "spendList":
			controller.SpendList()
		case "inventorySpendList":
			controller.InventorySpendList()
		default:
			response.Fail(ctx, code.ErrBind, "Invalid method")
		}
	}
}

func (c *GrampanchayatController) service() services.InterfaceGrampanchayatService {
	return c.Container.GetService("grampanchayat").(services.InterfaceGrampanchayatService)
}

// sanitize strips the password digest before writing a body to the wire.
func sanitizeGrampanchayat(gp *models.Grampanchayat) gin.H {
	return gin.H{
		"id":              gp.ID,
		"name":            gp.Name,
		"grampanchayatId": gp.GrampanchayatID,
		"address":         gp.Address,
		"villageName":     gp.VillageName,
		"status":          gp.Status,
		"createdAt":       gp.CreatedAt,
		"updatedAt":       gp.UpdatedAt,
	}
}

// Create registers a new body
// @Summary Register a Grampanchayat
// @Tags Grampanchayat
// @Accept json
// @Produce json
// @Param body body GrampanchayatCreateRequest true "registration payload"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /grampanchayat/ [post]
func (c *GrampanchayatController) Create() {
	var req GrampanchayatCreateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	gp := &models.Grampanchayat{
		Name:            req.Name,
		GrampanchayatID: req.GrampanchayatID,
		Address:         req.Address,
		VillageName:     req.VillageName,
		Password:        req.Password,
	}
	if err := c.service().CreateGrampanchayat(gp); err != nil {
		if errors.Is(err, services.ErrGrampanchayatExists) {
			response.Fail(c.Ctx, code.ErrGrampanchayatExists, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to register Grampanchayat", err)
		return
	}

	response.Created(c.Ctx, "Grampanchayat registered successfully", sanitizeGrampanchayat(gp))
}

// List returns every body, passwords excluded
// @Summary List all Grampanchayats
// @Tags Grampanchayat
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/list [get]
func (c *GrampanchayatController) List() {
	gps, err := c.service().GetAllGrampanchayats()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to list Grampanchayats", err)
		return
	}
	if len(gps) == 0 {
		response.Fail(c.Ctx, code.ErrGrampanchayatNotFound, "No Grampanchayats found")
		return
	}

	sanitized := make([]gin.H, 0, len(gps))
	for i := range gps {
		sanitized = append(sanitized, sanitizeGrampanchayat(&gps[i]))
	}
	response.Success(c.Ctx, "Grampanchayats fetched successfully", sanitized)
}

// Login issues a body token
// @Summary Grampanchayat login
// @Tags Grampanchayat
// @Accept json
// @Produce json
// @Param body body GrampanchayatLoginRequest true "login payload"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/login [post]
func (c *GrampanchayatController) Login() {
	var req GrampanchayatLoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	gp, err := c.service().Authenticate(req.GrampanchayatID, req.Password)
	if err != nil {
		// unknown id and wrong password stay distinguishable
		if errors.Is(err, services.ErrGrampanchayatNotFound) {
			response.Fail(c.Ctx, code.ErrGrampanchayatNotFound, "")
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrInvalidPassword, "")
			return
		}
		response.ServerError(c.Ctx, "Login failed", err)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(gp.ID, services.RoleGrampanchayat, gp.GrampanchayatID)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to issue token", err)
		return
	}

	response.Success(c.Ctx, "Login successful", gin.H{
		"token":         token,
		"grampanchayat": sanitizeGrampanchayat(gp),
	})
}

// Details returns the authenticated body's own record
// @Summary Own Grampanchayat details
// @Tags Grampanchayat
// @Produce json
// @Param x-auth-token header string true "body token"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /grampanchayat/details [post]
func (c *GrampanchayatController) Details() {
	gp := c.Ctx.MustGet(middleware.CtxGrampanchayat).(*models.Grampanchayat)
	response.Success(c.Ctx, "Grampanchayat details fetched successfully", sanitizeGrampanchayat(gp))
}

// Get reads one body by numeric id
// @Summary Get a Grampanchayat
// @Tags Grampanchayat
// @Produce json
// @Param id path int true "grampanchayat id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/{id} [get]
func (c *GrampanchayatController) Get() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrValidation, "Invalid Grampanchayat ID")
		return
	}

	gp, err := c.service().GetGrampanchayatByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrGrampanchayatNotFound) {
			response.Fail(c.Ctx, code.ErrGrampanchayatNotFound, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to fetch Grampanchayat", err)
		return
	}
	response.Success(c.Ctx, "Grampanchayat fetched successfully", sanitizeGrampanchayat(gp))
}

// Update patches one body by numeric id
// @Summary Update a Grampanchayat
// @Tags Grampanchayat
// @Accept json
// @Produce json
// @Param id path int true "grampanchayat id"
// @Param body body GrampanchayatUpdateRequest true "fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/{id} [put]
func (c *GrampanchayatController) Update() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrValidation, "Invalid Grampanchayat ID")
		return
	}

	var req GrampanchayatUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.VillageName != "" {
		updates["village_name"] = req.VillageName
	}
	if req.Password != "" {
		updates["password"] = req.Password
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		response.Fail(c.Ctx, code.ErrValidation, "No fields to update")
		return
	}

	gp, err := c.service().UpdateGrampanchayat(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrGrampanchayatNotFound) {
			response.Fail(c.Ctx, code.ErrGrampanchayatNotFound, "")
			return
		}
		if errors.Is(err, services.ErrGrampanchayatExists) {
			response.Fail(c.Ctx, code.ErrGrampanchayatExists, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to update Grampanchayat", err)
		return
	}
	response.Success(c.Ctx, "Grampanchayat updated successfully", sanitizeGrampanchayat(gp))
}

// Delete removes one body by numeric id
// @Summary Delete a Grampanchayat
// @Tags Grampanchayat
// @Produce json
// @Param id path int true "grampanchayat id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/{id} [delete]
func (c *GrampanchayatController) Delete() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrValidation, "Invalid Grampanchayat ID")
		return
	}

	if err := c.service().DeleteGrampanchayat(uint(id)); err != nil {
		if errors.Is(err, services.ErrGrampanchayatNotFound) {
			response.Fail(c.Ctx, code.ErrGrampanchayatNotFound, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to delete Grampanchayat", err)
		return
	}
	response.Success(c.Ctx, "Grampanchayat deleted successfully", nil)
}

// SpendList returns the asset spend report
// @Summary Asset spend per Grampanchayat
// @Description Total asset spend and asset count per body, bodies without assets included with zeros
// @Tags Report
// @Produce json
// @Success 200 {object} response.Response
// @Router /grampanchayat/spend-list [get]
func (c *GrampanchayatController) SpendList() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	rows, err := reportService.AssetSpendByGrampanchayat()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to compute spend report", err)
		return
	}
	if len(rows) == 0 {
		response.Fail(c.Ctx, code.ErrGrampanchayatNotFound, "No Grampanchayats found")
		return
	}
	response.Success(c.Ctx, "Spend report fetched successfully", rows)
}

// InventorySpendList returns the inventory spend report
// @Summary Inventory spend per Grampanchayat
// @Tags Report
// @Produce json
// @Success 200 {object} response.Response
// @Router /grampanchayat/inventory/spend-list [get]
func (c *GrampanchayatController) InventorySpendList() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	rows, err := reportService.InventorySpendByGrampanchayat()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to compute inventory spend report", err)
		return
	}
	if len(rows) == 0 {
		response.Fail(c.Ctx, code.ErrRecordNotFound, "No inventory records found")
		return
	}
	response.Success(c.Ctx, "Inventory spend report fetched successfully", rows)
}
