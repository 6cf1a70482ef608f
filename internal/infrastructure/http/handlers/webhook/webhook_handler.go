package webhook

import (
	input "pr-webhook-service/internal/domain/ports/input"
	ports "pr-webhook-service/internal/domain/ports/output"
	"pr-webhook-service/internal/infrastructure/signature"
)

type WebhookHandler struct {
	webhookService input.WebhookInputPort
	verifier       *signature.Verifier
	log            ports.Logger
}

func NewWebhookHandler(s input.WebhookInputPort, verifier *signature.Verifier, log ports.Logger) *WebhookHandler {
	return &WebhookHandler{webhookService: s, verifier: verifier, log: log}
}
