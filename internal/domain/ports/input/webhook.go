package input

import (
	"context"

	"pr-webhook-service/internal/domain/models"
)

//go:generate mockery --name WebhookInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename WebhookInputPort.go

type WebhookInputPort interface {
	HandleEvent(ctx context.Context, event models.EventType, payload []byte) (*models.PullRequest, error)
}
