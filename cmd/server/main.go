package main

import (
	"flag"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coursemash/coursemash/internal/config"
	"github.com/coursemash/coursemash/internal/csvio"
	"github.com/coursemash/coursemash/internal/store"
	"github.com/coursemash/coursemash/pkg/model"
)

func main() {
	configPath := flag.String("config", "./res/config.yaml", "deployment config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.String("path", *configPath), zap.Error(err))
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		logger.Fatal("load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("courses", len(catalog)))

	srv := newServer(cfg, catalog, store.New(), logger)
	r := newRouter(srv, logger)

	logger.Info("listening", zap.String("addr", cfg.Server.Addr))
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}

func newRouter(srv *server, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	r.Use(corsMiddleware())

	r.GET("/catalog", srv.handleGetCatalog)
	r.GET("/catalog/:code", srv.handleGetCourse)
	r.POST("/schedules", srv.handleCreateSchedule)
	r.GET("/schedules/:id", srv.handleGetSchedule)
	r.POST("/schedules/:id/courses", srv.handleAddCourse)
	r.DELETE("/schedules/:id/courses/:code", srv.handleRemoveCourse)
	r.GET("/schedules/:id/grid", srv.handleGetGrid)
	r.GET("/schedules/:id/conflicts", srv.handleGetConflicts)
	r.GET("/schedules/:id/stats", srv.handleGetStats)
	r.GET("/schedules/:id/calendar.ics", srv.handleGetCalendar)

	return r
}

func loadCatalog(cfg *config.Config) ([]model.Course, error) {
	if filepath.Ext(cfg.Catalog.Path) == ".json" {
		return csvio.LoadCatalogJSON(cfg.Catalog.Path)
	}
	delim := ';'
	if cfg.Catalog.Delimiter != "" {
		delim = rune(cfg.Catalog.Delimiter[0])
	}
	return csvio.LoadCatalog(cfg.Catalog.Path, delim)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
