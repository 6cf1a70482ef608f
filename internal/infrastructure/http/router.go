package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	input "pr-webhook-service/internal/domain/ports/input"
	"pr-webhook-service/internal/infrastructure/config"
	"pr-webhook-service/internal/infrastructure/http/handlers/pullrequest"
	"pr-webhook-service/internal/infrastructure/http/handlers/webhook"
	middlewares "pr-webhook-service/internal/infrastructure/http/middleware"
	"pr-webhook-service/internal/infrastructure/logger"
	"pr-webhook-service/internal/infrastructure/signature"
)

type Router struct {
	router *chi.Mux
	log    *logger.Logger

	verifier       *signature.Verifier
	webhookService input.WebhookInputPort
	prService      input.PullRequestInputPort
}

func NewRouter(log *logger.Logger, verifier *signature.Verifier, webhookSvc input.WebhookInputPort, prSvc input.PullRequestInputPort) *Router {
	return &Router{
		router:         chi.NewRouter(),
		log:            log,
		verifier:       verifier,
		webhookService: webhookSvc,
		prService:      prSvc,
	}
}

func (r *Router) Setup(cfg *config.Config) {
	r.router.Use(chiMiddleware.RequestID)
	r.router.Use(chiMiddleware.RealIP)
	r.router.Use(chiMiddleware.Recoverer)
	r.router.Use(middlewares.RequestLoggerMiddleware(r.log))
	r.router.Use(chiMiddleware.Timeout(cfg.HTTPServer.RequestTimeout))

	r.router.Mount("/webhook", r.setupWebhookRoutes())
	r.router.Mount("/pull_requests", r.setupPullRequestRoutes())
}

func (r *Router) setupWebhookRoutes() http.Handler {
	h := webhook.NewWebhookHandler(r.webhookService, r.verifier, r.log)
	sub := chi.NewRouter()
	sub.Post("/", h.Receive)
	return sub
}

func (r *Router) setupPullRequestRoutes() http.Handler {
	h := pullrequest.NewPullRequestHandler(r.prService, r.log)
	sub := chi.NewRouter()
	sub.Get("/", h.List)
	return sub
}

func (r *Router) GetRouter() *chi.Mux { return r.router }
