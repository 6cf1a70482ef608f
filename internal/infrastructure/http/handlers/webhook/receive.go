package webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"pr-webhook-service/internal/domain/models"
	"pr-webhook-service/internal/utils"
)

const (
	headerEvent     = "X-GitHub-Event"
	headerSignature = "X-Hub-Signature"
	headerDelivery  = "X-GitHub-Delivery"

	maxBodySize = 1 << 20
)

// Receive runs the ingestion pipeline for one delivery: signature
// verification, event classification, then extraction and persistence
// in the application service. Each gate short-circuits, and every
// pipeline error is mapped to a transport outcome exactly once, here.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "could not read request body")
		return
	}

	// The body is untrusted until the signature gate passes; nothing
	// below parses it before this point.
	if err := h.verifier.Verify(body, r.Header.Values(headerSignature)); err != nil {
		h.writeError(w, err)
		return
	}

	event, err := models.ParseEventType(r.Header.Values(headerEvent))
	if err != nil {
		h.writeError(w, err)
		return
	}

	log := h.log
	if id, err := uuid.Parse(r.Header.Get(headerDelivery)); err == nil {
		log = log.With("delivery_id", id.String())
	}
	log.Info("Webhook received", "event", string(event))

	if _, err := h.webhookService.HandleEvent(r.Context(), event, body); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *WebhookHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, utils.ErrMissingSignature),
		errors.Is(err, utils.ErrInvalidSignature),
		errors.Is(err, utils.ErrUnknownEvent),
		errors.Is(err, utils.ErrMalformedPayload),
		errors.Is(err, utils.ErrNoRepository),
		errors.Is(err, utils.ErrNoNumber),
		errors.Is(err, utils.ErrNoSHA),
		errors.Is(err, utils.ErrUnsupportedAction):
		status = http.StatusBadRequest
	case errors.Is(err, utils.ErrEventNotImplemented):
		status = http.StatusNotImplemented
	case errors.Is(err, utils.ErrSecretNotConfigured):
		h.log.Error("Webhook rejected: secret not configured")
		status = http.StatusInternalServerError
	default:
		h.log.Error("Webhook processing failed", "err", err)
		// Storage detail stays server-side.
		err = utils.ErrCreatePullRequest
	}
	_ = utils.WriteError(w, status, utils.HTTPCodeConverter(status), err.Error())
}
