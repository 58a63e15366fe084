package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"trialboard/docs"
	"trialboard/internal/board"
	"trialboard/internal/config"
	"trialboard/internal/events"
	"trialboard/internal/handler"
	"trialboard/internal/middleware"
	"trialboard/internal/realtime"
	"trialboard/internal/repository"
	"trialboard/internal/timeline"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Bus    *events.Bus
	Hub    *realtime.Hub
}

// Deps are the collaborators the router is built from.
type Deps struct {
	Trials  handler.TrialRepository
	Columns handler.ColumnRepository
	Tasks   handler.TaskRepository
	Boards  handler.BoardService
	Bus     *events.Bus
	Hub     *realtime.Hub
	Views   *timeline.Views
}

func Init(cfg *config.Config) (*Server, error) {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	slog.Info("connected to database", "host", cfg.DBHost, "name", cfg.DBName)

	columns := config.DefaultColumns()
	if cfg.ColumnsFile != "" {
		columns, err = config.LoadColumns(cfg.ColumnsFile)
		if err != nil {
			return nil, err
		}
	}

	// Initialize repositories
	trialRepo := repository.NewTrialRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	if err := columnRepo.Sync(context.Background(), columns); err != nil {
		return nil, fmt.Errorf("failed to sync columns: %w", err)
	}
	slog.Info("columns synced", "count", len(columns))

	bus := events.NewBus()
	hub := realtime.NewHub()
	hub.Attach(bus)

	sensor := board.PointerSensor{Distance: cfg.ActivationDistance}
	manager := board.NewManager(repository.NewBoardStore(taskRepo, columnRepo), sensor, bus)

	r := NewRouter(Deps{
		Trials:  trialRepo,
		Columns: columnRepo,
		Tasks:   taskRepo,
		Boards:  manager,
		Bus:     bus,
		Hub:     hub,
		Views:   timeline.NewViews(),
	}, timeline.Geometry{DayWidth: cfg.DayWidth, MinBarWidth: cfg.MinBarWidth})

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		Bus:    bus,
		Hub:    hub,
	}, nil
}

// NewRouter wires every route onto a fresh engine.
func NewRouter(d Deps, geometry timeline.Geometry) *gin.Engine {
	handler.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(slog.Default()))

	trialHandler := handler.NewTrialHandler(d.Trials)
	columnHandler := handler.NewColumnHandler(d.Columns)
	taskHandler := handler.NewTaskHandler(d.Tasks, d.Columns, d.Trials, d.Boards)
	boardHandler := handler.NewBoardHandler(d.Trials, d.Boards)
	timelineHandler := handler.NewTimelineHandler(d.Tasks, d.Trials, d.Views, geometry)
	sectionHandler := handler.NewSectionHandler(d.Trials, d.Bus)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws", d.Hub.ServeWS)

	// Trial routes
	r.POST("/trials", trialHandler.Create)
	r.GET("/trials", trialHandler.GetAll)
	r.GET("/trials/:id", trialHandler.GetByID)

	// Column routes
	r.GET("/columns", columnHandler.GetAll)

	// Task routes
	r.POST("/trials/:id/tasks", taskHandler.Create)
	r.GET("/trials/:id/tasks", taskHandler.GetByTrialID)
	r.GET("/tasks/:id", taskHandler.GetByID)
	r.PUT("/tasks/:id", taskHandler.Update)
	r.DELETE("/tasks/:id", taskHandler.Delete)

	// Board routes
	r.GET("/trials/:id/board", boardHandler.GetBoard)
	r.POST("/trials/:id/board/reload", boardHandler.Reload)
	r.POST("/trials/:id/drag/begin", boardHandler.BeginDrag)
	r.POST("/trials/:id/drag/over", boardHandler.DragOver)
	r.POST("/trials/:id/drag/end", boardHandler.EndDrag)
	r.POST("/trials/:id/drag/cancel", boardHandler.CancelDrag)

	// Timeline routes
	r.GET("/trials/:id/timeline", timelineHandler.GetTimeline)
	r.POST("/trials/:id/timeline/nodes/:taskId/toggle", timelineHandler.ToggleNode)

	r.POST("/trials/:id/section", sectionHandler.Publish)

	return r
}

// WithCORS answers preflight requests and adds CORS headers for the given
// origins. "*" allows any origin.
func WithCORS(h http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(h)
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go s.Hub.Run(ctx)

	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: WithCORS(s.Engine, s.Config.CORSOrigins),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "port", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	slog.Info("server exited properly")
	return nil
}
