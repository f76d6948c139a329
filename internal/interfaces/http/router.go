package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	carmodelUC "recallhub/internal/application/carmodel/usecases"
	manufacturerUC "recallhub/internal/application/manufacturer/usecases"
	recallUC "recallhub/internal/application/recall/usecases"
	statsUC "recallhub/internal/application/stats/usecases"
	"recallhub/internal/infrastructure/config"
	"recallhub/internal/infrastructure/repository"
	"recallhub/internal/interfaces/http/handlers"
	"recallhub/internal/interfaces/http/middleware"
	"recallhub/internal/interfaces/http/routes"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/logger"
)

// Router wires repositories, use cases, and handlers into a Gin engine.
type Router struct {
	engine              *gin.Engine
	manufacturerHandler *handlers.ManufacturerHandler
	carModelHandler     *handlers.CarModelHandler
	recallHandler       *handlers.RecallHandler
	statsHandler        *handlers.StatsHandler
	healthHandler       *handlers.HealthHandler
	logger              logger.Interface
}

// NewRouter builds the full dependency graph on top of the given database
// connection.
func NewRouter(database *gorm.DB, cfg *config.Config) *Router {
	log := logger.NewLogger().Named("http")

	txManager := db.NewTransactionManager(database)

	manufacturerRepo := repository.NewManufacturerRepository(database)
	carModelRepo := repository.NewCarModelRepository(database)
	recallRepo := repository.NewRecallRepository(database)
	statsRepo := repository.NewStatsRepository(database)

	manufacturerHandler := handlers.NewManufacturerHandler(
		manufacturerUC.NewCreateManufacturerUseCase(manufacturerRepo, log),
		manufacturerUC.NewGetManufacturerUseCase(manufacturerRepo, log),
		manufacturerUC.NewListManufacturersUseCase(manufacturerRepo, log),
		manufacturerUC.NewUpdateManufacturerUseCase(manufacturerRepo, txManager, log),
		manufacturerUC.NewDeleteManufacturerUseCase(manufacturerRepo, carModelRepo, txManager, log),
	)

	carModelHandler := handlers.NewCarModelHandler(
		carmodelUC.NewCreateCarModelUseCase(carModelRepo, manufacturerRepo, txManager, log),
		carmodelUC.NewGetCarModelUseCase(carModelRepo, log),
		carmodelUC.NewListCarModelsUseCase(carModelRepo, log),
		carmodelUC.NewUpdateCarModelUseCase(carModelRepo, txManager, log),
		carmodelUC.NewChangeCarModelIDUseCase(carModelRepo, recallRepo, txManager, log),
		carmodelUC.NewDeleteCarModelUseCase(carModelRepo, recallRepo, txManager, log),
	)

	recallHandler := handlers.NewRecallHandler(
		recallUC.NewCreateRecallUseCase(recallRepo, carModelRepo, txManager, log),
		recallUC.NewGetRecallUseCase(recallRepo, log),
		recallUC.NewListRecallsUseCase(recallRepo, log),
		recallUC.NewUpdateRecallUseCase(recallRepo, txManager, log),
		recallUC.NewDeleteRecallUseCase(recallRepo, log),
	)

	statsHandler := handlers.NewStatsHandler(
		statsUC.NewSearchRecallsUseCase(statsRepo, log),
		statsUC.NewGetRecallOverviewUseCase(statsRepo, log),
		statsUC.NewGetRecallRankingUseCase(statsRepo, log),
		statsUC.NewGetYearTrendUseCase(statsRepo, log),
		statsUC.NewGetFilterOptionsUseCase(statsRepo, log),
	)

	return &Router{
		engine:              gin.New(),
		manufacturerHandler: manufacturerHandler,
		carModelHandler:     carModelHandler,
		recallHandler:       recallHandler,
		statsHandler:        statsHandler,
		healthHandler:       handlers.NewHealthHandler(database),
		logger:              log,
	}
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthHandler.HealthCheck)

	routes.SetupManufacturerRoutes(r.engine, &routes.ManufacturerRouteConfig{
		ManufacturerHandler: r.manufacturerHandler,
	})
	routes.SetupCarModelRoutes(r.engine, &routes.CarModelRouteConfig{
		CarModelHandler: r.carModelHandler,
		RecallHandler:   r.recallHandler,
	})
	routes.SetupStatsRoutes(r.engine, &routes.StatsRouteConfig{
		StatsHandler: r.statsHandler,
	})
}

// Engine exposes the underlying Gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	r.logger.Infow("starting HTTP server", "addr", addr)
	return r.engine.Run(addr)
}
