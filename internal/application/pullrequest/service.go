package pullrequest

import (
	"context"

	"pr-webhook-service/internal/domain/models"
	"pr-webhook-service/internal/domain/ports/input"
	ports "pr-webhook-service/internal/domain/ports/output"
	uow "pr-webhook-service/internal/domain/ports/output/uow"
)

type Service struct {
	uow uow.UnitOfWork
	log ports.Logger
}

func NewService(uow uow.UnitOfWork, log ports.Logger) input.PullRequestInputPort {
	return &Service{uow: uow, log: log}
}

func (s *Service) ListPullRequests(ctx context.Context, limit int) ([]*models.PullRequest, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Begin transaction failed", "err", err)
		return nil, err
	}
	prs, err := tx.PullRequestRepository().List(ctx, limit)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return prs, nil
}
