package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/yterada/ballpark/config"
	"github.com/yterada/ballpark/db"
	"github.com/yterada/ballpark/handlers"
	applog "github.com/yterada/ballpark/logger"
	"github.com/yterada/ballpark/metrics"
	mw "github.com/yterada/ballpark/middleware"
	"github.com/yterada/ballpark/store"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	bdb := db.Setup(cfg)
	defer bdb.Close()

	if err := db.CreateTables(context.Background(), bdb); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	m, err := metrics.New()
	if err != nil {
		logger.Fatal("metrics setup failed", zap.Error(err))
	}

	repo := store.NewRepository(bdb)
	sets := store.NewSets()
	warmWorkingSets(repo, sets, logger)

	h := handlers.New(repo, sets, m, cfg.JWTKey(), cfg.AccessPasswordHash)

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	// Public
	e.POST("/bp/signin", h.Signin)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Protected – require valid JWT in Authorization header
	bp := e.Group("/bp", mw.JWT(cfg.JWTKey()))
	bp.POST("/upload/:dataset", h.Upload)
	bp.GET("/data/:dataset", h.Data)
	bp.GET("/files", h.Files)
	bp.DELETE("/files/:id", h.DeleteFile)
	bp.GET("/players/:dataset", h.Players)
	bp.GET("/pitch-types", h.PitchTypes)
	bp.GET("/analysis/:dataset", h.Analysis)
	bp.GET("/leaderboard", h.Leaderboard)
	bp.GET("/spray", h.Spray)
	bp.GET("/zone", h.Zone)
	bp.GET("/scatter", h.Scatter)
	bp.GET("/settings", h.GetSettings)
	bp.PUT("/settings", h.PutSettings)

	serveDashboard(e, cfg.StaticDir, logger)

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}

// warmWorkingSets pre-loads every dataset so the first dashboard request
// does not pay the full pagination walk. A failed load is logged and left
// for the client to retry through ?refresh=1.
func warmWorkingSets(repo *store.Repository, sets *store.Sets, logger *zap.Logger) {
	ctx := context.Background()

	if rows, err := repo.LoadSavant(ctx); err != nil {
		logger.Warn("initial savant load failed", zap.Error(err))
	} else {
		sets.Savant.ReplaceAll(rows, store.BuildHistory(rows, store.DatasetSavant))
		logger.Info("loaded savant data", zap.Int("rows", len(rows)))
	}

	if rows, err := repo.LoadRapsodoPitching(ctx); err != nil {
		logger.Warn("initial rapsodo pitching load failed", zap.Error(err))
	} else {
		sets.RapsodoPitching.ReplaceAll(rows, store.BuildHistory(rows, store.DatasetRapsodoPitching))
		logger.Info("loaded rapsodo pitching data", zap.Int("rows", len(rows)))
	}

	if rows, err := repo.LoadRapsodoBatting(ctx); err != nil {
		logger.Warn("initial rapsodo batting load failed", zap.Error(err))
	} else {
		sets.RapsodoBatting.ReplaceAll(rows, store.BuildHistory(rows, store.DatasetRapsodoBatting))
		logger.Info("loaded rapsodo batting data", zap.Int("rows", len(rows)))
	}

	if rows, err := repo.LoadBlast(ctx); err != nil {
		logger.Warn("initial blast load failed", zap.Error(err))
	} else {
		sets.Blast.ReplaceAll(rows, store.BuildHistory(rows, store.DatasetBlast))
		logger.Info("loaded blast data", zap.Int("rows", len(rows)))
	}
}

// serveDashboard serves the built SPA from disk with an index.html fallback
// for client-side routes. Skipped when the directory is absent, which is
// the usual case in development where the dashboard runs its own server.
func serveDashboard(e *echo.Echo, dir string, logger *zap.Logger) {
	if _, err := os.Stat(dir); err != nil {
		logger.Info("static dir not found, serving API only", zap.String("dir", dir))
		return
	}

	fileServer := http.FileServer(http.Dir(dir))
	e.GET("/*", func(c echo.Context) error {
		path := c.Request().URL.Path

		// Matches JS, CSS, images, etc.
		if strings.Contains(path, ".") {
			http.StripPrefix("/", fileServer).ServeHTTP(c.Response(), c.Request())
			return nil
		}
		// Serve index.html for client-side routing (SPA fallback)
		indexFile, err := os.Open(filepath.Join(dir, "index.html"))
		if err != nil {
			return c.NoContent(http.StatusNotFound)
		}
		defer indexFile.Close()

		return c.Stream(http.StatusOK, "text/html", indexFile)
	})
}
