package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "giramae/docs"
	"giramae/internal/adapter/http/dto/request"
	"giramae/internal/adapter/http/handlers"
	"giramae/internal/adapter/http/middleware"
	"giramae/internal/adapter/persistence/repository"
	"giramae/internal/adapter/ws"
	"giramae/internal/config"
	"giramae/internal/infrastructure/database"
	"giramae/internal/infrastructure/payments"
	"giramae/internal/infrastructure/push"
	"giramae/internal/infrastructure/realtime"
	"giramae/internal/infrastructure/scheduler"
	"giramae/internal/infrastructure/sitemap"
	"giramae/internal/usecase"
	"giramae/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	expirations := getRoutes()
	defer expirations.Stop()

	port := config.GetenvDefault("PORT", strconv.Itoa(PORT))
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() *scheduler.ExpirationScheduler {
	cfg := config.LoadMarketplace()
	if err := request.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	db := database.ConnectPostgres(config.GetDSN(), repository.AutoMigrateModels()...)
	ddb := database.ConnectDynamoDB()

	marketplaceStore := repository.NewMarketplaceGormStore(db)
	itemRepo := repository.NewItemGormRepository(db)
	walletRepo := repository.NewWalletGormRepository(db)
	blogRepo := repository.NewBlogGormRepository(db)
	pushRepo := repository.NewPushSubscriptionGormRepository(db)
	goalRepo := repository.NewGoalDynamoRepository(ddb)
	purchaseRepo := repository.NewGirinhaPurchaseDynamoRepository(ddb)

	broker := newChangeBroker()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	notificationUseCase := usecase.NewNotificationUseCase(newPushPublisher(), pushRepo)
	goalUseCase := usecase.NewGoalUseCase(goalRepo, marketplaceStore, walletRepo, broker, notificationUseCase, cfg.GoalTiers)
	reservationUseCase := usecase.NewReservationUseCase(marketplaceStore, marketplaceStore, broker, notificationUseCase, goalUseCase, cfg)
	queueUseCase := usecase.NewQueueUseCase(itemRepo, marketplaceStore)
	queueCache := usecase.NewQueueInfoCache(cfg.QueueCacheTTL)
	queueInfoService := usecase.NewQueueInfoService(queueUseCase, queueCache)
	itemUseCase := usecase.NewItemUseCase(itemRepo)
	walletUseCase := usecase.NewWalletUseCase(walletRepo)
	purchaseUseCase := usecase.NewGirinhaPurchaseUseCase(purchaseRepo, walletRepo, paymentGateway, cfg)
	sitemapUseCase := usecase.NewSitemapUseCase(blogRepo, newSitemapUpstream(), config.GetenvDefault("SITE_URL", "https://giramae.com.br"))

	auth := middleware.JWTAuth(os.Getenv("SUPABASE_JWT_SECRET"))
	serviceKey := middleware.ServiceKey(os.Getenv("SERVICE_ROLE_KEY"))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("")
	authed.Use(auth)
	addMarketplaceRoutes(authed,
		handlers.NewItemHandler(itemUseCase),
		handlers.NewReservationHandler(reservationUseCase, queueInfoService),
		handlers.NewQueueHandler(queueInfoService),
	)
	addRPCRoutes(v1, auth, serviceKey, handlers.NewRPCHandler(reservationUseCase, queueUseCase))
	addAccountRoutes(authed,
		handlers.NewGoalHandler(goalUseCase),
		handlers.NewWalletHandler(walletUseCase),
		handlers.NewGirinhaPurchaseHandler(purchaseUseCase),
		handlers.NewNotificationHandler(notificationUseCase),
		ws.NewHub(broker, queueCache),
	)

	addSitemapRoutes(router.Group("/api"), handlers.NewSitemapHandler(sitemapUseCase))
	addFunctionRoutes(router.Group("/functions/v1"), serviceKey, handlers.NewFunctionsHandler(reservationUseCase, sitemapUseCase))

	expirations := scheduler.NewExpirationScheduler(reservationUseCase, cfg.ExpirationBatchSize)
	if spec := strings.TrimSpace(os.Getenv("EXPIRATION_CRON")); spec != "off" {
		if err := expirations.Start(spec); err != nil {
			log.Printf("Expiration scheduler not started: %v", err)
		}
	}
	return expirations
}

// newChangeBroker uses Redis pub/sub when REDIS_URL is set so every replica sees the
// changes; otherwise events stay in process.
func newChangeBroker() interfaces.IChangeBroker {
	url := strings.TrimSpace(os.Getenv("REDIS_URL"))
	if url == "" {
		log.Printf("REDIS_URL not set, using in-memory change broker")
		return realtime.NewMemoryBroker()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := realtime.ConnectRedis(ctx, url)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	return realtime.NewRedisBroker(client)
}

func newPushPublisher() interfaces.IPushPublisher {
	arn := strings.TrimSpace(os.Getenv("SNS_PLATFORM_APPLICATION_ARN"))
	if arn == "" {
		log.Printf("SNS_PLATFORM_APPLICATION_ARN not set, push notifications are only logged")
		return push.LogPublisher{}
	}
	publisher, err := push.NewSNSPublisher(database.ConnectSNS(), arn)
	if err != nil {
		log.Printf("SNS publisher not configured: %v", err)
		return push.LogPublisher{}
	}
	return publisher
}

func newSitemapUpstream() interfaces.ISitemapUpstream {
	base := os.Getenv("SITEMAP_UPSTREAM_URL")
	if base == "" && os.Getenv("SUPABASE_URL") != "" {
		base = strings.TrimRight(os.Getenv("SUPABASE_URL"), "/") + "/functions/v1"
	}
	return sitemap.NewUpstreamClient(base, os.Getenv("SUPABASE_ANON_KEY"))
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	origins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Service-Key")
	return cfg
}
