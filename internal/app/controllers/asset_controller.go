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

// AssetController handles asset requests.
type AssetController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAssetController creates a new asset controller.
func NewAssetController(ctx *gin.Context, container *container.ServiceContainer) *AssetController {
	return &AssetController{
		Ctx:       ctx,
		Container: container,
	}
}

// AssetAddRequest is the asset creation payload.
type AssetAddRequest struct {
	Description string  `json:"description" binding:"required" example:"Hand pump installation"`
	AmountSpent float64 `json:"amount_spent" binding:"required" example:"12500"`
	Receipt     string  `json:"receipt" binding:"required" example:"receipts/2024/hp-114.jpg"`
}

// HandleAssetFunc returns a gin handler dispatching to the asset controller.
func HandleAssetFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAssetController(ctx, container)

		switch method {
		case "add":
			controller.Add()
		case "listAll":
			controller.ListAll()
		case "listByGrampanchayat":
			controller.ListByGrampanchayat()
		default:
			response.Fail(ctx, code.ErrBind, "Invalid method")
		}
	}
}

func (c *AssetController) service() services.InterfaceAssetService {
	return c.Container.GetService("asset").(services.InterfaceAssetService)
}

// Add records an asset for the authenticated body
// @Summary Add an asset
// @Tags Asset
// @Accept json
// @Produce json
// @Param x-auth-token header string true "body token"
// @Param body body AssetAddRequest true "asset payload"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /grampanchayat/asset/add [post]
func (c *AssetController) Add() {
	gp := c.Ctx.MustGet(middleware.CtxGrampanchayat).(*models.Grampanchayat)

	var req AssetAddRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	asset := &models.Asset{
		GrampanchayatID: gp.ID,
		Description:     req.Description,
		AmountSpent:     req.AmountSpent,
		Receipt:         req.Receipt,
	}
	if err := c.service().CreateAsset(asset); err != nil {
		if errors.Is(err, services.ErrGrampanchayatNotFound) {
			response.Fail(c.Ctx, code.ErrGrampanchayatNotFound, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to add asset", err)
		return
	}

	response.Created(c.Ctx, "Asset added successfully", asset)
}

// ListAll returns every asset with the owning body attached
// @Summary List all assets
// @Tags Asset
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/assets/list [get]
func (c *AssetController) ListAll() {
	assets, err := c.service().GetAllAssets()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to list assets", err)
		return
	}
	if len(assets) == 0 {
		response.Fail(c.Ctx, code.ErrRecordNotFound, "No assets found")
		return
	}
	response.Success(c.Ctx, "Assets fetched successfully", assets)
}

// ListByGrampanchayat returns one body's assets
// @Summary List a Grampanchayat's assets
// @Tags Asset
// @Produce json
// @Param grampanchayatId path int true "grampanchayat id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grampanchayat/assets/{grampanchayatId} [get]
func (c *AssetController) ListByGrampanchayat() {
	id, err := strconv.Atoi(c.Ctx.Param("grampanchayatId"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrValidation, "Invalid Grampanchayat ID")
		return
	}

	assets, err := c.service().GetAssetsByGrampanchayat(uint(id))
	if err != nil {
		response.ServerError(c.Ctx, "Failed to list assets", err)
		return
	}
	// empty list is a 404 here, clients depend on it
	if len(assets) == 0 {
		response.Fail(c.Ctx, code.ErrRecordNotFound, "No assets found for this Grampanchayat")
		return
	}
	response.Success(c.Ctx, "Assets fetched successfully", assets)
}
