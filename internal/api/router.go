package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/mikelm2020/estatehub/docs"
	"github.com/mikelm2020/estatehub/internal/api/handler"
	"github.com/mikelm2020/estatehub/internal/api/middleware"
	"github.com/mikelm2020/estatehub/internal/core/domain"
	"github.com/mikelm2020/estatehub/internal/core/service"
	"github.com/mikelm2020/estatehub/internal/core/token"
	mongodb "github.com/mikelm2020/estatehub/internal/infrastructure/db/mongo"
	redisdb "github.com/mikelm2020/estatehub/internal/infrastructure/db/redis"
	"github.com/mikelm2020/estatehub/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered. It returns
// the interaction dispatcher alongside so the caller can start and stop its
// workers with the process lifecycle.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *token.Codec, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("estatehub"))

	// --- Repositories ---
	agentRepo := mongodb.NewAgentRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	stateRepo := mongodb.NewStateRepository(db)
	cityRepo := mongodb.NewCityRepository(db)
	addressRepo := mongodb.NewAddressRepository(db)
	interactionRepo := mongodb.NewInteractionRepository(db)

	// --- Services ---
	cache := redisdb.NewCache(rdb)
	dedup := redisdb.NewDedupChecker(rdb)
	authService := service.NewAuthService(agentRepo, codec, log)
	propertyService := service.NewPropertyService(propertyRepo, log)
	refDataService := service.NewRefDataService(stateRepo, cityRepo, addressRepo, cache, log)
	interactionService := service.NewInteractionService(propertyRepo, interactionRepo, dedup, log)
	dispatcher := queue.NewDispatcher(0, interactionService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	agentHandler := handler.NewAgentHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	refDataHandler := handler.NewRefDataHandler(refDataService)
	interactionHandler := handler.NewInteractionHandler(dispatcher, interactionService)

	authRequired := middleware.Auth(codec)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth", authHandler.Register)
	e.POST("/token", authHandler.Login)

	// --- Agent routes ---
	agents := e.Group("/agents", authRequired)
	agents.GET("", agentHandler.Me)
	agents.PUT("/password", agentHandler.ChangePassword)

	// --- Reference data: reads public, mutations authenticated ---
	e.GET("/states", refDataHandler.ListStates)
	e.GET("/states/:id", refDataHandler.GetState)
	e.POST("/states", refDataHandler.CreateState, authRequired)
	e.PUT("/states/:id", refDataHandler.UpdateState, authRequired)
	e.DELETE("/states/:id", refDataHandler.DeleteState, authRequired)

	e.GET("/cities", refDataHandler.ListCities)
	e.GET("/cities/:id", refDataHandler.GetCity)
	e.POST("/cities", refDataHandler.CreateCity, authRequired)
	e.PUT("/cities/:id", refDataHandler.UpdateCity, authRequired)
	e.DELETE("/cities/:id", refDataHandler.DeleteCity, authRequired)

	e.GET("/addresses", refDataHandler.ListAddresses)
	e.GET("/addresses/:id", refDataHandler.GetAddress)
	e.POST("/addresses", refDataHandler.CreateAddress, authRequired)
	e.PUT("/addresses/:id", refDataHandler.UpdateAddress, authRequired)
	e.DELETE("/addresses/:id", refDataHandler.DeleteAddress, authRequired)

	// --- Properties: reads public, mutations owner-gated in the service ---
	e.GET("/properties", propertyHandler.List)
	e.GET("/properties/:id", propertyHandler.Get)
	e.POST("/properties", propertyHandler.Create, authRequired)
	e.PUT("/properties/:id", propertyHandler.Update, authRequired)
	e.DELETE("/properties/:id", propertyHandler.Delete, authRequired)

	// --- Interactions ---
	e.POST("/properties/:id/interactions", interactionHandler.Receive, authRequired)
	e.POST("/properties/:id/interactions/batch", interactionHandler.ReceiveBatch, authRequired)
	e.GET("/properties/:id/interactions", interactionHandler.List, authRequired)

	// --- Admin ---
	e.DELETE("/admin/property/:id", propertyHandler.AdminDelete, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
