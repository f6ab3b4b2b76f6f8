package middleware

import (
	"jalseva-http-service/internal/domain/services"
	"jalseva-http-service/internal/error/code"
	"jalseva-http-service/internal/error/response"
	"jalseva-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TokenHeader is the custom header the clients send tokens in.
const TokenHeader = "x-auth-token"

// Context keys populated by the auth middleware.
const (
	CtxGrampanchayat = "grampanchayat"
	CtxConsumer      = "consumer"
	CtxPhed          = "phed"
)

var (
	jwtService           services.InterfaceJWTService
	grampanchayatService services.InterfaceGrampanchayatService
	phedService          services.InterfacePhedService
	consumerService      services.InterfaceConsumerService
)

// InitAuthMiddleware wires the middleware to the shared services.
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	creds := services.NewCredentialService()
	jwtService = services.NewJWTService(cfg)
	grampanchayatService = services.NewGrampanchayatService(db, cfg, creds, nil)
	phedService = services.NewPhedService(db, cfg, creds)
	consumerService = services.NewConsumerService(db, cfg, creds)
}

// extractClaims reads the token header and validates it. A nil return means
// the middleware already wrote the response and aborted.
func extractClaims(c *gin.Context) *services.JWTClaims {
	tokenString := c.GetHeader(TokenHeader)
	if tokenString == "" {
		response.Unauthorized(c)
		c.Abort()
		return nil
	}

	claims, err := jwtService.ExtractClaims(tokenString)
	if err != nil {
		response.Fail(c, code.ErrTokenInvalid, "")
		c.Abort()
		return nil
	}
	return claims
}

// AuthenticateGrampanchayat requires a valid body token. The body is
// re-resolved from the database so a deleted tenant fails even with a live
// token.
func AuthenticateGrampanchayat() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := extractClaims(c)
		if claims == nil {
			return
		}
		if claims.Role != services.RoleGrampanchayat {
			response.Forbidden(c, "")
			c.Abort()
			return
		}

		gp, err := grampanchayatService.GetGrampanchayatByID(claims.UserID)
		if err != nil {
			response.Fail(c, code.ErrGrampanchayatNotFound, "")
			c.Abort()
			return
		}

		c.Set(CtxGrampanchayat, gp)
		c.Next()
	}
}

// AuthenticateConsumer requires a valid consumer token.
func AuthenticateConsumer() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := extractClaims(c)
		if claims == nil {
			return
		}
		if claims.Role != services.RoleConsumer {
			response.Forbidden(c, "")
			c.Abort()
			return
		}

		consumer, err := consumerService.GetConsumerByID(claims.UserID)
		if err != nil {
			response.Fail(c, code.ErrConsumerNotFound, "")
			c.Abort()
			return
		}

		c.Set(CtxConsumer, consumer)
		c.Next()
	}
}

// AuthenticatePhed requires a valid authority token.
func AuthenticatePhed() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := extractClaims(c)
		if claims == nil {
			return
		}
		if claims.Role != services.RolePhed {
			response.Forbidden(c, "")
			c.Abort()
			return
		}

		phed, err := phedService.GetPhedByID(claims.UserID)
		if err != nil {
			response.Fail(c, code.ErrPhedNotFound, "")
			c.Abort()
			return
		}

		c.Set(CtxPhed, phed)
		c.Next()
	}
}
