package webhook

import (
	"context"
	"fmt"

	"pr-webhook-service/internal/domain/models"
	"pr-webhook-service/internal/domain/ports/input"
	ports "pr-webhook-service/internal/domain/ports/output"
	uow "pr-webhook-service/internal/domain/ports/output/uow"
	"pr-webhook-service/internal/utils"
)

type Service struct {
	uow uow.UnitOfWork
	log ports.Logger
}

func NewService(uow uow.UnitOfWork, log ports.Logger) input.WebhookInputPort {
	return &Service{uow: uow, log: log}
}

// HandleEvent runs the classified event through extraction and
// persistence. Only pull_request events have a handling path today;
// the other classified variants return a typed not-implemented error
// so the sender sees an explicit failure instead of a silent success.
func (s *Service) HandleEvent(ctx context.Context, event models.EventType, payload []byte) (*models.PullRequest, error) {
	if event != models.EventPullRequest {
		s.log.Warn("Unhandled event type", "event", string(event))
		return nil, utils.ErrEventNotImplemented
	}

	params, err := extractOpened(payload)
	if err != nil {
		return nil, err
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Begin transaction failed", "err", err)
		return nil, fmt.Errorf("%w: %w", utils.ErrCreatePullRequest, err)
	}

	pr, err := tx.PullRequestRepository().Create(ctx, params)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Commit failed", "repository", params.Repository, "number", params.Number, "err", err)
		return nil, fmt.Errorf("%w: %w", utils.ErrCreatePullRequest, err)
	}

	s.log.Info("Pull request recorded",
		"id", pr.ID,
		"repository", pr.Repository,
		"number", pr.Number,
	)
	return pr, nil
}
