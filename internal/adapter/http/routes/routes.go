package routes

import (
	"context"
	"log"
	"net/http"
	"strconv"

	_ "print3d_quote/docs" // This will be auto-generated
	"print3d_quote/internal/adapter/http/handlers"
	"print3d_quote/internal/adapter/persistence/repository"
	"print3d_quote/internal/infrastructure/commerce"
	"print3d_quote/internal/infrastructure/config"
	"print3d_quote/internal/infrastructure/database"
	"print3d_quote/internal/infrastructure/messaging"
	"print3d_quote/internal/infrastructure/metrics"
	"print3d_quote/internal/infrastructure/transfer"
	"print3d_quote/internal/usecase"
	"print3d_quote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	closeFn := getRoutes(cfg)
	defer closeFn()

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) func() {
	if cfg.Commerce.GraphQLEndpoint() == "" || cfg.Commerce.AccessToken == "" {
		log.Printf("[quote][routes] commerce platform not configured, remote operations will fail")
	}

	client := commerce.NewClient(cfg.Commerce, nil)
	transferer := transfer.NewHTTPTransferer(&http.Client{Timeout: cfg.Upload.StepTimeout})

	uploadUseCase := usecase.NewUploadUseCase(client, transferer, usecase.UploadOptions{
		MaxConcurrency: cfg.Upload.MaxConcurrency,
		StepTimeout:    cfg.Upload.StepTimeout,
		RemoteRPS:      cfg.Upload.RemoteRPS,
		Metrics:        metrics.NewUploadMetrics(prometheus.DefaultRegisterer),
	})

	authService := usecase.NewAuthorizationService(cfg.AdminEmails)

	var publisher interfaces.INotificationPublisher = messaging.LogNotifier{}
	closeFn := func() {}
	if cfg.Kafka.Enabled() {
		notifier := messaging.NewKafkaNotifier(cfg.Kafka)
		publisher = notifier
		closeFn = func() {
			if err := notifier.Close(); err != nil {
				log.Printf("[quote][routes] kafka writer close failed: %v", err)
			}
		}
	}

	quoteUseCase := usecase.NewQuoteUseCase(client, uploadUseCase, authService, usecase.QuoteOptions{
		Cache:     quoteCache(cfg),
		Publisher: publisher,
	})

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, authService)
	uploadHandler := handlers.NewUploadHandler(uploadUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, uploadHandler)

	return closeFn
}

// quoteCache returns nil when the snapshot cache is disabled or unreachable.
func quoteCache(cfg config.Config) interfaces.IQuoteCache {
	if !cfg.QuoteCache.Enabled {
		return nil
	}
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.DynamoDB)
	if err != nil {
		log.Printf("[quote][routes] quote cache disabled: %v", err)
		return nil
	}
	return repository.NewQuoteCacheDynamoRepository(ddb, cfg.QuoteCache.Table, cfg.QuoteCache.TTL)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.NewHTTPMetrics(prometheus.DefaultRegisterer).Middleware())
}
