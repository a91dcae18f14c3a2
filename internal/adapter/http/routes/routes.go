package routes

import (
	"context"
	"log"

	_ "hvac_service/docs" // swagger spec registration
	"hvac_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run will start the server
func Run() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := LoadConfig()
	app, err := buildApplication(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("failed to start the application", zap.Error(err))
	}
	defer app.close()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(app)

	logger.Info("listening", zap.String("port", cfg.Port), zap.String("storage", cfg.StorageDriver))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}

func getRoutes(app *application) {
	quoteHandler := handlers.NewQuoteHandler(app.approvals)
	inventoryHandler := handlers.NewInventoryHandler(app.inventory)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, inventoryHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.FullPath()))
		c.AbortWithStatus(500)
	}))
}
