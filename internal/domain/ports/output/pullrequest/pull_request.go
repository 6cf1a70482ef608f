package pullrequest

import (
	"context"

	"pr-webhook-service/internal/domain/models"
)

//go:generate mockery --name PullRequestRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename PullRequestRepository.go

type PullRequestRepository interface {
	Create(ctx context.Context, params *models.PullRequestParams) (*models.PullRequest, error)
	List(ctx context.Context, limit int) ([]*models.PullRequest, error)
}
