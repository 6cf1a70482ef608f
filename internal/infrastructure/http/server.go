package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	input "pr-webhook-service/internal/domain/ports/input"
	"pr-webhook-service/internal/infrastructure/config"
	"pr-webhook-service/internal/infrastructure/logger"
	"pr-webhook-service/internal/infrastructure/signature"
)

type Server struct {
	address string
	log     *logger.Logger
	router  *Router
	server  *http.Server

	verifier       *signature.Verifier
	webhookService input.WebhookInputPort
	prService      input.PullRequestInputPort
}

func NewServer(address string, log *logger.Logger, verifier *signature.Verifier, webhookSvc input.WebhookInputPort, prSvc input.PullRequestInputPort) *Server {
	return &Server{
		address:        address,
		log:            log,
		verifier:       verifier,
		webhookService: webhookSvc,
		prService:      prSvc,
	}
}

func (s *Server) Run(cfg *config.Config) error {
	s.router = NewRouter(s.log, s.verifier, s.webhookService, s.prService)
	s.router.Setup(cfg)

	s.server = &http.Server{
		Addr:         s.address,
		Handler:      s.router.GetRouter(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info("Starting server", slog.String("address", s.address))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
