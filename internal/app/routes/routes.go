package routes

import (
	_ "jalseva-http-service/docs"
	"jalseva-http-service/internal/app/controllers"
	"jalseva-http-service/internal/app/middleware"
	"jalseva-http-service/internal/domain/services"
	"jalseva-http-service/internal/domain/services/container"
	"jalseva-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter builds the configured engine.
func SetupRouter(db *gorm.DB, cfg *config.Config, redisService services.InterfaceRedisService) *gin.Engine {
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, x-auth-token, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg, redisService)
	middleware.InitAuthMiddleware(cfg, db)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	api := r.Group("/v1/api")

	// 10 requests per second per IP, bursts of 20
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	registerPhedRoutes(api, container)
	registerGrampanchayatRoutes(api, container)
	registerUserRoutes(api, container)
}

func registerPhedRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	phed := api.Group("/phed")

	phed.POST("/register", controllers.HandlePhedFunc(container, "register"))
	phed.POST("/login", middleware.PathRateLimiter(5, 10), controllers.HandlePhedFunc(container, "login"))
	phed.PATCH("/update", middleware.AuthenticatePhed(), controllers.HandlePhedFunc(container, "update"))
}

func registerGrampanchayatRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	gp := api.Group("/grampanchayat")

	gp.POST("/", controllers.HandleGrampanchayatFunc(container, "create"))
	gp.GET("/list", controllers.HandleGrampanchayatFunc(container, "list"))
	gp.POST("/login", middleware.PathRateLimiter(5, 10), controllers.HandleGrampanchayatFunc(container, "login"))
	gp.POST("/details", middleware.AuthenticateGrampanchayat(), controllers.HandleGrampanchayatFunc(container, "details"))

	// reports
	gp.GET("/spend-list", controllers.HandleGrampanchayatFunc(container, "spendList"))
	gp.GET("/inventory/spend-list", controllers.HandleGrampanchayatFunc(container, "inventorySpendList"))

	// assets
	gp.POST("/asset/add", middleware.AuthenticateGrampanchayat(), controllers.HandleAssetFunc(container, "add"))
	gp.GET("/assets/list", controllers.HandleAssetFunc(container, "listAll"))
	gp.GET("/assets/:grampanchayatId", controllers.HandleAssetFunc(container, "listByGrampanchayat"))

	// inventory
	gp.POST("/inventory/add", middleware.AuthenticateGrampanchayat(), controllers.HandleInventoryFunc(container, "add"))
	gp.GET("/inventory/list", middleware.AuthenticateGrampanchayat(), controllers.HandleInventoryFunc(container, "list"))
	gp.GET("/inventory/:grampanchayatId", controllers.HandleInventoryFunc(container, "listByGrampanchayat"))

	// complaints towards the authority
	gp.POST("/complaint/add", middleware.AuthenticateGrampanchayat(), controllers.HandleComplaintFunc(container, "add"))
	gp.GET("/complaint/list", middleware.AuthenticateGrampanchayat(), controllers.HandleComplaintFunc(container, "list"))
	gp.GET("/complaint-gram-id/:grampanchayatId", middleware.AuthenticateGrampanchayat(), controllers.HandleComplaintFunc(container, "listByGrampanchayat"))

	// notifications
	gp.POST("/notification", middleware.AuthenticateGrampanchayat(), controllers.HandleNotificationFunc(container, "create"))
	gp.GET("/notification/list", controllers.HandleNotificationFunc(container, "list"))
	gp.GET("/notification/list/grampanchayat/:grampanchayatId", controllers.HandleNotificationFunc(container, "listByGrampanchayat"))

	// body CRUD by numeric id, registered last so the static paths win
	gp.GET("/:id", controllers.HandleGrampanchayatFunc(container, "get"))
	gp.PUT("/:id", controllers.HandleGrampanchayatFunc(container, "update"))
	gp.DELETE("/:id", controllers.HandleGrampanchayatFunc(container, "delete"))
}

func registerUserRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	user := api.Group("/user")

	user.POST("/register", middleware.AuthenticateGrampanchayat(), controllers.HandleConsumerFunc(container, "register"))
	user.POST("/login", middleware.PathRateLimiter(5, 10), controllers.HandleConsumerFunc(container, "login"))
	user.GET("/profile", middleware.AuthenticateConsumer(), controllers.HandleConsumerFunc(container, "profile"))
	user.GET("/list", middleware.AuthenticateGrampanchayat(), controllers.HandleConsumerFunc(container, "list"))

	// consumer complaints
	user.POST("/usercomplaint", middleware.AuthenticateConsumer(), controllers.HandleUserComplaintFunc(container, "create"))
	user.GET("/usercomplaints/list", controllers.HandleUserComplaintFunc(container, "list"))
	user.GET("/usercomplaints/gram/:grampanchayatId", controllers.HandleUserComplaintFunc(container, "listByGrampanchayat"))
	user.PUT("/usercomplaints/:complaintId", middleware.AuthenticateGrampanchayat(), controllers.HandleUserComplaintFunc(container, "updateStatus"))
	user.GET("/usercomplaints/:userId", controllers.HandleUserComplaintFunc(container, "listByUser"))

	// consumer management by the owning body
	user.PUT("/:id", middleware.AuthenticateGrampanchayat(), controllers.HandleConsumerFunc(container, "update"))
	user.DELETE("/:id", middleware.AuthenticateGrampanchayat(), controllers.HandleConsumerFunc(container, "delete"))
}
