package controllers

import (
	"errors"
	"regexp"
	"strconv"

	"jalseva-http-service/internal/app/middleware"
	"jalseva-http-service/internal/domain/models"
	"jalseva-http-service/internal/domain/services"
	"jalseva-http-service/internal/domain/services/container"
	"jalseva-http-service/internal/error/code"
	"jalseva-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

var (
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
	aadharRe = regexp.MustCompile(`^[0-9]{12}$`)
)

// ConsumerController handles consumer account requests.
type ConsumerController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewConsumerController creates a new consumer controller.
func NewConsumerController(ctx *gin.Context, container *container.ServiceContainer) *ConsumerController {
	return &ConsumerController{
		Ctx:       ctx,
		Container: container,
	}
}

// ConsumerRegisterRequest is the registration payload. The registering body
// comes from the token, not the payload.
type ConsumerRegisterRequest struct {
	Name         string `json:"name" binding:"required" example:"Ramesh Kumar"`
	Address      string `json:"address" binding:"required" example:"Ward 4, Rampur"`
	NumberAadhar string `json:"number_aadhar" binding:"required" example:"123456789012"`
	MobileNo     string `json:"mobileNo" binding:"required" example:"9876543210"`
}

// ConsumerLoginRequest is the login payload. Either identifier may match.
type ConsumerLoginRequest struct {
	MobileNo   string `json:"mobileNo" binding:"required" example:"9876543210"`
	ConsumerID string `json:"consumerId" binding:"required" example:"CP-1717000000000"`
	Password   string `json:"password" binding:"required" example:"a1b2c3d4e5f60718"`
}

// ConsumerUpdateRequest is the partial update payload.
type ConsumerUpdateRequest struct {
	Name     string `json:"name" example:"Ramesh Kumar"`
	Address  string `json:"address" example:"Ward 7, Rampur"`
	MobileNo string `json:"mobileNo" example:"9876543211"`
	Password string `json:"password" example:"newpass"`
	Status   *int   `json:"status" example:"1"`
}

// HandleConsumerFunc returns a gin handler dispatching to the consumer
// controller.
func HandleConsumerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewConsumerController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "profile":
			controller.Profile()
		case "list":
			controller.List()
		case "update":
			controller.Update()
		case "delete":
			controller.Delete()
		default:
			response.Fail(ctx, code.ErrBind, "Invalid method")
		}
	}
}

func (c *ConsumerController) service() services.InterfaceConsumerService {
	return c.Container.GetService("consumer").(services.InterfaceConsumerService)
}

func sanitizeConsumer(consumer *models.Consumer) gin.H {
	return gin.H{
		"id":              consumer.ID,
		"name":            consumer.Name,
		"address":         consumer.Address,
		"number_aadhar":   consumer.NumberAadhar,
		"mobileNo":        consumer.MobileNo,
		"consumerId":      consumer.ConsumerID,
		"status":          consumer.Status,
		"grampanchayatId": consumer.GrampanchayatID,
		"createdAt":       consumer.CreatedAt,
		"updatedAt":       consumer.UpdatedAt,
	}
}

// Register creates a consumer under the authenticated body
// @Summary Register a consumer
// @Description Create a consumer with a generated consumerId and a random password returned exactly once
// @Tags User
// @Accept json
// @Produce json
// @Param x-auth-token header string true "body token"
// @Param body body ConsumerRegisterRequest true "registration payload"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /user/register [post]
func (c *ConsumerController) Register() {
	gp := c.Ctx.MustGet(middleware.CtxGrampanchayat).(*models.Grampanchayat)

	var req ConsumerRegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}
	if !mobileRe.MatchString(req.MobileNo) {
		response.Fail(c.Ctx, code.ErrValidation, "Mobile number must be exactly 10 digits")
		return
	}
	if !aadharRe.MatchString(req.NumberAadhar) {
		response.Fail(c.Ctx, code.ErrValidation, "Aadhar number must be exactly 12 digits")
		return
	}

	consumer := &models.Consumer{
		Name:            req.Name,
		Address:         req.Address,
		NumberAadhar:    req.NumberAadhar,
		MobileNo:        req.MobileNo,
		GrampanchayatID: gp.ID,
	}
	plainPassword, err := c.service().RegisterConsumer(consumer)
	if err != nil {
		if errors.Is(err, services.ErrMobileRegistered) {
			response.Fail(c.Ctx, code.ErrMobileRegistered, "")
			return
		}
		if errors.Is(err, services.ErrAadharRegistered) {
			response.Fail(c.Ctx, code.ErrAadharRegistered, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to register user", err)
		return
	}

	// the plaintext password is shown here and never again
	response.Created(c.Ctx, "User registered successfully", gin.H{
		"user":     sanitizeConsumer(consumer),
		"password": plainPassword,
	})
}

// Login issues a consumer token
// @Summary Consumer login
// @Description Verify the password against the account matching either mobileNo or consumerId
// @Tags User
// @Accept json
// @Produce json
// @Param body body ConsumerLoginRequest true "login payload"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/login [post]
func (c *ConsumerController) Login() {
	var req ConsumerLoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}

	consumer, err := c.service().Authenticate(req.MobileNo, req.ConsumerID, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrConsumerNotFound) {
			response.Fail(c.Ctx, code.ErrConsumerNotFound, "")
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
	token, err := jwtService.GenerateToken(consumer.ID, services.RoleConsumer, consumer.ConsumerID)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to issue token", err)
		return
	}

	response.Success(c.Ctx, "Login successful", gin.H{
		"token": token,
		"user":  sanitizeConsumer(consumer),
	})
}

// Profile returns the authenticated consumer with the owning body inlined
// @Summary Consumer profile
// @Tags User
// @Produce json
// @Param x-auth-token header string true "consumer token"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /user/profile [get]
func (c *ConsumerController) Profile() {
	consumer := c.Ctx.MustGet(middleware.CtxConsumer).(*models.Consumer)

	profile := sanitizeConsumer(consumer)
	gpService := c.Container.GetService("grampanchayat").(services.InterfaceGrampanchayatService)
	if gp, err := gpService.GetGrampanchayatByID(consumer.GrampanchayatID); err == nil {
		profile["grampanchayat"] = gin.H{
			"id":          gp.ID,
			"name":        gp.Name,
			"villageName": gp.VillageName,
		}
	}

	response.Success(c.Ctx, "Profile fetched successfully", profile)
}

// List returns the authenticated body's consumers
// @Summary List own consumers
// @Tags User
// @Produce json
// @Param x-auth-token header string true "body token"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/list [get]
func (c *ConsumerController) List() {
	gp := c.Ctx.MustGet(middleware.CtxGrampanchayat).(*models.Grampanchayat)

	consumers, err := c.service().GetConsumersByGrampanchayat(gp.ID)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to list users", err)
		return
	}
	if len(consumers) == 0 {
		response.Fail(c.Ctx, code.ErrConsumerNotFound, "No users found")
		return
	}

	sanitized := make([]gin.H, 0, len(consumers))
	for i := range consumers {
		sanitized = append(sanitized, sanitizeConsumer(&consumers[i]))
	}
	response.Success(c.Ctx, "Users fetched successfully", sanitized)
}

// Update patches a consumer owned by the authenticated body
// @Summary Update a consumer
// @Tags User
// @Accept json
// @Produce json
// @Param x-auth-token header string true "body token"
// @Param id path int true "consumer id"
// @Param body body ConsumerUpdateRequest true "fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/{id} [put]
func (c *ConsumerController) Update() {
	gp := c.Ctx.MustGet(middleware.CtxGrampanchayat).(*models.Grampanchayat)

	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrValidation, "Invalid user ID")
		return
	}

	var req ConsumerUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "")
		return
	}
	if req.MobileNo != "" && !mobileRe.MatchString(req.MobileNo) {
		response.Fail(c.Ctx, code.ErrValidation, "Mobile number must be exactly 10 digits")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.MobileNo != "" {
		updates["mobile_no"] = req.MobileNo
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

	consumer, err := c.service().UpdateConsumer(uint(id), gp.ID, updates)
	if err != nil {
		if errors.Is(err, services.ErrConsumerNotFound) {
			response.Fail(c.Ctx, code.ErrConsumerNotFound, "")
			return
		}
		if errors.Is(err, services.ErrMobileRegistered) {
			response.Fail(c.Ctx, code.ErrMobileRegistered, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to update user", err)
		return
	}
	response.Success(c.Ctx, "User updated successfully", sanitizeConsumer(consumer))
}

// Delete removes a consumer owned by the authenticated body
// @Summary Delete a consumer
// @Tags User
// @Produce json
// @Param x-auth-token header string true "body token"
// @Param id path int true "consumer id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/{id} [delete]
func (c *ConsumerController) Delete() {
	gp := c.Ctx.MustGet(middleware.CtxGrampanchayat).(*models.Grampanchayat)

	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrValidation, "Invalid user ID")
		return
	}

	if err := c.service().DeleteConsumer(uint(id), gp.ID); err != nil {
		if errors.Is(err, services.ErrConsumerNotFound) {
			response.Fail(c.Ctx, code.ErrConsumerNotFound, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to delete user", err)
		return
	}
	response.Success(c.Ctx, "User deleted successfully", nil)
}
