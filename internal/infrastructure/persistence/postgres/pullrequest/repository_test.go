package pullrequest_repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pr-webhook-service/internal/domain/models"
	pullrequest_port "pr-webhook-service/internal/domain/ports/output/pullrequest"
	"pr-webhook-service/internal/infrastructure/logger"
	pullrequest_repository "pr-webhook-service/internal/infrastructure/persistence/postgres/pullrequest"
	"pr-webhook-service/internal/utils"
	"pr-webhook-service/mocks"
)

func newRepo(t *testing.T) (pullrequest_port.PullRequestRepository, *mocks.Querier) {
	q := mocks.NewQuerier(t)
	log := logger.New("test")
	return pullrequest_repository.NewPullRequestRepository(q, log), q
}

func validParams() *models.PullRequestParams {
	return &models.PullRequestParams{
		Repository: "octocat/spoon-knife",
		Number:     "42",
		HeadSHA:    "abcdef1234567890",
		Status:     models.StatusOpened,
	}
}

func TestPullRequestRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name      string
		params    *models.PullRequestParams
		mockSetup func(q *mocks.Querier)
		want      *models.PullRequest
		wantErr   error
	}{
		{
			name:   "success",
			params: validParams(),
			mockSetup: func(q *mocks.Querier) {
				row := mocks.NewRow(t)
				row.EXPECT().Scan(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					RunAndReturn(func(dest ...any) error {
						*dest[0].(*int64) = 7
						*dest[1].(*string) = "octocat/spoon-knife"
						*dest[2].(*string) = "42"
						*dest[3].(*string) = "abcdef1234567890"
						*dest[4].(*models.PRStatus) = models.StatusOpened
						*dest[5].(*time.Time) = now
						return nil
					})
				q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
			},
			want: &models.PullRequest{
				ID:         7,
				Repository: "octocat/spoon-knife",
				Number:     "42",
				HeadSHA:    "abcdef1234567890",
				Status:     models.StatusOpened,
				CreatedAt:  now,
			},
		},
		{
			name: "missing repository",
			params: &models.PullRequestParams{
				Number:  "42",
				HeadSHA: "abcdef1234567890",
				Status:  models.StatusOpened,
			},
			wantErr: utils.ErrInvalidArgument,
		},
		{
			name:   "db error is wrapped opaquely",
			params: validParams(),
			mockSetup: func(q *mocks.Querier) {
				row := mocks.NewRow(t)
				row.EXPECT().Scan(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("connection refused"))
				q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(row)
			},
			wantErr: utils.ErrCreatePullRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newRepo(t)
			if tt.mockSetup != nil {
				tt.mockSetup(q)
			}

			got, err := repo.Create(ctx, tt.params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
