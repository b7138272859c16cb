package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httpadapter "svw.info/mapcolor/internal/adapters/http"
	"svw.info/mapcolor/internal/coloring"
	"svw.info/mapcolor/internal/config"
	"svw.info/mapcolor/internal/generator"
	"svw.info/mapcolor/internal/hint"
	"svw.info/mapcolor/internal/infrastructure/storage"
	"svw.info/mapcolor/internal/usecase"
)

// requestLogger logs method, path, status, and duration for every request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file (optional)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	dbPath := flag.String("db", "", "sqlite database path (overrides config)")
	levelStr := flag.String("log-level", "", "debug|info|warn|error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}

	lvl := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	st, err := storage.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("storage error", "err", err)
		os.Exit(1)
	}
	defer st.Close()

	// Wire providers → use cases → HTTP adapter
	colorer := coloring.NewBacktrackingColorer()
	gen := generator.NewPuzzleGenerator(colorer)
	uc := usecase.NewService(gen, colorer, hint.NewForced(), st)
	h := httpadapter.New(uc, cfg.Board.Width, cfg.Board.Height)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestLogger(logger), gin.Recovery())
	h.Register(engine)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", cfg.Addr, "db", cfg.DBPath, "board", cfg.Board)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
