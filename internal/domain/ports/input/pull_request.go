package input

import (
	"context"

	"pr-webhook-service/internal/domain/models"
)

//go:generate mockery --name PullRequestInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename PullRequestInputPort.go

type PullRequestInputPort interface {
	ListPullRequests(ctx context.Context, limit int) ([]*models.PullRequest, error)
}
