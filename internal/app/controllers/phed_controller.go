package controllers

import (
	"errors"

	"jalseva-http-service/internal/app/middleware"
	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/domain/services"
	"jalseva-http-service/internal/domain/services/container"
	"jalseva-http-service/internal/error/code"
	"jalseva-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfacePhedController defines the PHED controller interface.
type InterfacePhedController interface {
	Register()
	Login()
	Update()
}

// PhedController handles authority account requests.
type PhedController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPhedController creates a new PHED controller.
func NewPhedController(ctx *gin.Context, container *container.ServiceContainer) *PhedController {
	return &PhedController{
		Ctx:       ctx,
		Container: container,
	}
}

// PhedRegisterRequest is the registration payload.
type PhedRegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"District Engineer"`
	PhoneNo  string `json:"phone_no" binding:"required" example:"9876543210"`
	PhedID   string `json:"phed_id" binding:"required" example:"PHED-010"`
	Password string `json:"password" binding:"required" example:"phedpass"`
}

// PhedLoginRequest is the login payload.
type PhedLoginRequest struct {
	PhedID   string `json:"phed_id" binding:"required" example:"PHED-010"`
	Password string `json:"password" binding:"required" example:"phedpass"`
}

// PhedUpdateRequest is the partial update payload.
type PhedUpdateRequest struct {
	Name     string `json:"name" example:"Chief Engineer"`
	PhoneNo  string `json:"phone_no" example:"9876543211"`
	Password string `json:"password" example:"rotated"`
}

// HandlePhedFunc returns a gin handler dispatching to the PHED controller.
func HandlePhedFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPhedController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "update":
			controller.Update()
		default:
			response.Fail(ctx, code.ErrBind, "Invalid method")
		}
	}
}

// Register creates an authority account
// @Summary Register a PHED account
// @Description Create a state authority account with a unique phed_id and phone number
// @Tags Phed
// @Accept json
// @Produce json
// @Param body body PhedRegisterRequest true "registration payload"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /phed/register [post]
func (c *PhedController) Register() {
	var req PhedRegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	phedService := c.Container.GetService("phed").(services.InterfacePhedService)
	phed := &models.Phed{
		Name:     req.Name,
		PhoneNo:  req.PhoneNo,
		PhedID:   req.PhedID,
		Password: req.Password,
	}
	if err := phedService.RegisterPhed(phed); err != nil {
		if errors.Is(err, services.ErrPhedExists) {
			response.Fail(c.Ctx, code.ErrPhedExists, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to register PHED", err)
		return
	}

	response.Created(c.Ctx, "PHED registered successfully", gin.H{
		"id":       phed.ID,
		"name":     phed.Name,
		"phed_id":  phed.PhedID,
		"phone_no": phed.PhoneNo,
	})
}

// Login issues an authority token
// @Summary PHED login
// @Description Verify phed_id and password, return a one-hour token
// @Tags Phed
// @Accept json
// @Produce json
// @Param body body PhedLoginRequest true "login payload"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /phed/login [post]
func (c *PhedController) Login() {
	var req PhedLoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	phedService := c.Container.GetService("phed").(services.InterfacePhedService)
	phed, err := phedService.Authenticate(req.PhedID, req.Password)
	if err != nil {
		// same message whether the id is unknown or the password is wrong
		if errors.Is(err, services.ErrPhedNotFound) || errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrPhedCredentials, "")
			return
		}
		response.ServerError(c.Ctx, "Login failed", err)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(phed.ID, services.RolePhed, phed.PhedID)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to issue token", err)
		return
	}

	response.Success(c.Ctx, "Login successful", gin.H{
		"token":   token,
		"phed_id": phed.PhedID,
		"name":    phed.Name,
	})
}

// Update patches the authenticated authority account
// @Summary Update PHED account
// @Description Partially update name, phone number or password of the logged-in authority
// @Tags Phed
// @Accept json
// @Produce json
// @Param x-auth-token header string true "authority token"
// @Param body body PhedUpdateRequest true "fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /phed/update [patch]
func (c *PhedController) Update() {
	phed := c.Ctx.MustGet(middleware.CtxPhed).(*models.Phed)

	var req PhedUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.PhoneNo != "" {
		updates["phone_no"] = req.PhoneNo
	}
	if req.Password != "" {
		updates["password"] = req.Password
	}
	if len(updates) == 0 {
		response.Fail(c.Ctx, code.ErrValidation, "No fields to update")
		return
	}

	phedService := c.Container.GetService("phed").(services.InterfacePhedService)
	updated, err := phedService.UpdatePhed(phed.ID, updates)
	if err != nil {
		if errors.Is(err, services.ErrPhedExists) {
			response.Fail(c.Ctx, code.ErrPhedExists, "")
			return
		}
		if errors.Is(err, services.ErrPhedNotFound) {
			response.Fail(c.Ctx, code.ErrPhedNotFound, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to update PHED", err)
		return
	}

	response.Success(c.Ctx, "PHED updated successfully", updated)
}
