package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"whatsapp-studio/internal/api"
	"whatsapp-studio/internal/config"
	"whatsapp-studio/internal/database"
	"whatsapp-studio/internal/metrics"
	"whatsapp-studio/internal/webhook"
	"whatsapp-studio/internal/whatsapp"
	"whatsapp-studio/internal/ws"
	"whatsapp-studio/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.New(cfg.LogLevel)

	rules, err := config.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		log.Error("failed to load template policy", "file", cfg.PolicyFile, "error", err)
		os.Exit(1)
	}

	store, err := database.Open(cfg)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	store.SyncConfig(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	m := metrics.New(prometheus.DefaultRegisterer)
	whatsappClient := whatsapp.NewClient(cfg, log)
	webhookHandler := webhook.NewHandler(cfg, store, hub, log)

	handlers := &api.Handlers{
		Templates: api.NewTemplateHandler(rules, whatsappClient, store, hub, m, log),
		Wizard:    api.NewWizardHandler(rules, m.Submitter(whatsappClient), store, hub, m, cfg.SessionTTL, log),
		Media:     api.NewMediaHandler(whatsappClient),
		Limiter:   api.PerMinute(cfg.SubmitRatePerMinute),
	}

	r := gin.Default()

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Webhook Routes
	r.GET("/webhook", webhookHandler.VerifyWebhook)
	r.POST("/webhook", webhookHandler.HandleEvent)

	r.GET("/ws", gin.WrapF(hub.ServeWs))
	r.GET("/metrics", gin.WrapH(metrics.Handler(prometheus.DefaultGatherer)))

	handlers.Register(r.Group("/api"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port, "languages", len(rules.Languages))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to run server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
