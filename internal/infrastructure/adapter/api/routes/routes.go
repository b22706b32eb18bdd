package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	familyHandler *handler.FamilyHandler,
	transactionHandler *handler.TransactionHandler,
	tokens coreport.TokenProvider,
	logger coreport.Logger,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	requireAuth := middleware.RequireAuth(tokens, logger)

	familyRoutes := router.Group("/families", requireAuth)
	{
		familyRoutes.POST("", familyHandler.Create)
		familyRoutes.POST("/join", familyHandler.Join)
		familyRoutes.GET("/current", familyHandler.Current)
		familyRoutes.GET("/members", familyHandler.Members)
		familyRoutes.GET("/invitation-code", familyHandler.InvitationCode)
		familyRoutes.POST("/leave", familyHandler.Leave)
		familyRoutes.DELETE("", familyHandler.Delete)
	}

	transactionRoutes := router.Group("/transactions", requireAuth)
	{
		transactionRoutes.POST("", transactionHandler.Create)
		transactionRoutes.GET("", transactionHandler.List)
		transactionRoutes.GET("/summary", transactionHandler.Summary)
		transactionRoutes.GET("/:id", transactionHandler.Get)
		transactionRoutes.PATCH("/:id", transactionHandler.Patch)
		transactionRoutes.DELETE("/:id", transactionHandler.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
