package routes

import (
	"context"
	"fmt"
	"log"

	"outfitter_billing/internal/adapter/http/handlers"
	"outfitter_billing/internal/adapter/http/middleware"
	"outfitter_billing/internal/adapter/persistence/memory"
	"outfitter_billing/internal/adapter/persistence/repository"
	"outfitter_billing/internal/config"
	"outfitter_billing/internal/domain/pricing"
	"outfitter_billing/internal/infrastructure/cache"
	"outfitter_billing/internal/infrastructure/database"
	"outfitter_billing/internal/infrastructure/payments"
	"outfitter_billing/internal/infrastructure/signature"
	"outfitter_billing/internal/usecase"
	"outfitter_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	router, err := NewRouter(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to build the application: %v", err)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

type repositories struct {
	catalog   interfaces.IPricingItemRepository
	templates interfaces.IContractTemplateSource
	hunts     interfaces.IHuntRepository
	contracts interfaces.IHuntContractRepository
	payments  interfaces.IPaymentItemRepository
}

// NewRouter wires storage, collaborators, use cases and handlers into a gin
// engine.
func NewRouter(ctx context.Context, cfg *config.Config) (*gin.Engine, error) {
	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	catalog, err := cache.NewCatalogCache(repos.catalog, cfg.CatalogCacheTTL, cfg.CatalogCacheMaxCost)
	if err != nil {
		return nil, fmt.Errorf("catalog cache: %w", err)
	}

	rate, err := pricing.FeeRateFromPercent(cfg.PlatformFeePercent)
	if err != nil {
		return nil, err
	}

	signatures, err := signature.NewClient(cfg.SignatureServiceURL, cfg.SignatureServiceAPIKey, cfg.SignatureServiceTimeout, cfg.SignatureServiceMock)
	if err != nil {
		return nil, fmt.Errorf("signature service: %w", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	contractUseCase := usecase.NewContractUseCase(repos.contracts, repos.hunts, repos.payments, repos.templates, signatures, catalog, rate)
	catalogUseCase := usecase.NewCatalogUseCase(repos.hunts, catalog, rate)
	bookingUseCase := usecase.NewBookingUseCase(repos.hunts, repos.contracts, contractUseCase, catalog, rate)
	billUseCase := usecase.NewBillUseCase(repos.contracts, repos.hunts, repos.payments, catalog, rate)
	paymentUseCase := usecase.NewPaymentUseCase(repos.payments, paymentGateway, usecase.PaymentOptions{
		Mock:            cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.TestPayerEmail,
		TestPayerUserID: cfg.TestPayerUserID,
	})

	huntHandler := handlers.NewHuntHandler(catalogUseCase, bookingUseCase, contractUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	billHandler := handlers.NewBillHandler(billUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	if cfg.AuthDisabled {
		log.Printf("[http][routes] auth disabled, caller is read from X-Tenant-ID/X-Caller-Email/X-Caller-Role")
	}
	private := v1.Group("", middleware.Auth(cfg.JwtSecret, cfg.AuthDisabled))
	addHuntRoutes(private, huntHandler)
	addContractRoutes(private, contractHandler, billHandler)
	addPaymentRoutes(private, paymentHandler)

	return router, nil
}

func newRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		store := memory.NewStore()
		if cfg.MemorySeedFile != "" {
			if err := store.LoadSeed(cfg.MemorySeedFile); err != nil {
				return repositories{}, err
			}
		}
		log.Printf("[http][routes] storage=memory seed=%q", cfg.MemorySeedFile)
		return repositories{
			catalog:   memory.NewPricingItemRepository(store),
			templates: memory.NewTemplateSource(store),
			hunts:     memory.NewHuntRepository(store),
			contracts: memory.NewHuntContractRepository(store),
			payments:  memory.NewPaymentItemRepository(store),
		}, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AwsRegion,
			Endpoint:        cfg.DynamoEndpoint,
			AccessKeyID:     cfg.AwsAccessKeyID,
			SecretAccessKey: cfg.AwsSecretKey,
		})
		if err != nil {
			return repositories{}, err
		}
		log.Printf("[http][routes] storage=dynamodb region=%s endpoint=%q", cfg.AwsRegion, cfg.DynamoEndpoint)
		return repositories{
			catalog:   repository.NewPricingItemDynamoRepository(ddb),
			templates: repository.NewContractTemplateDynamoSource(ddb),
			hunts:     repository.NewHuntDynamoRepository(ddb),
			contracts: repository.NewHuntContractDynamoRepository(ddb),
			payments:  repository.NewPaymentItemDynamoRepository(ddb),
		}, nil
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
