package webhook_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	app "pr-webhook-service/internal/application/webhook"
	"pr-webhook-service/internal/domain/models"
	"pr-webhook-service/internal/infrastructure/logger"
	"pr-webhook-service/internal/utils"
	"pr-webhook-service/mocks"
)

func TestWebhookService_HandleEvent(t *testing.T) {
	ctx := context.Background()
	stored := &models.PullRequest{
		ID:         1,
		Repository: "octocat/spoon-knife",
		Number:     "42",
		HeadSHA:    "abcdef1234567890",
		Status:     models.StatusOpened,
	}

	tests := []struct {
		name    string
		event   models.EventType
		payload string
		setup   func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.PullRequestRepository)
		want    *models.PullRequest
		wantErr error
	}{
		{
			name:    "opened event creates record",
			event:   models.EventPullRequest,
			payload: `{"action":"opened","repository":"octocat/spoon-knife","number":42,"head":{"sha":"abcdef1234567890"}}`,
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.PullRequestRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().PullRequestRepository().Return(repo)
				repo.EXPECT().Create(ctx, &models.PullRequestParams{
					Repository: "octocat/spoon-knife",
					Number:     "42",
					HeadSHA:    "abcdef1234567890",
					Status:     models.StatusOpened,
				}).Return(stored, nil)
				tx.EXPECT().Commit(ctx).Return(nil)
			},
			want: stored,
		},
		{
			name:    "large number survives as text",
			event:   models.EventPullRequest,
			payload: `{"action":"opened","repository":"octocat/spoon-knife","number":9007199254740993,"head":{"sha":"abcdef1234567890"}}`,
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.PullRequestRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().PullRequestRepository().Return(repo)
				repo.EXPECT().Create(ctx, &models.PullRequestParams{
					Repository: "octocat/spoon-knife",
					Number:     "9007199254740993",
					HeadSHA:    "abcdef1234567890",
					Status:     models.StatusOpened,
				}).Return(stored, nil)
				tx.EXPECT().Commit(ctx).Return(nil)
			},
			want: stored,
		},
		{
			name:    "issue_comment not implemented",
			event:   models.EventIssueComment,
			payload: `{"action":"created"}`,
			wantErr: utils.ErrEventNotImplemented,
		},
		{
			name:    "status not implemented",
			event:   models.EventStatus,
			payload: `{}`,
			wantErr: utils.ErrEventNotImplemented,
		},
		{
			name:    "malformed payload",
			event:   models.EventPullRequest,
			payload: `{"action":`,
			wantErr: utils.ErrMalformedPayload,
		},
		{
			name:    "action closed",
			event:   models.EventPullRequest,
			payload: `{"action":"closed","repository":"octocat/spoon-knife","number":42,"head":{"sha":"abcdef1234567890"}}`,
			wantErr: utils.ErrUnsupportedAction,
		},
		{
			name:    "action missing",
			event:   models.EventPullRequest,
			payload: `{"repository":"octocat/spoon-knife","number":42,"head":{"sha":"abcdef1234567890"}}`,
			wantErr: utils.ErrUnsupportedAction,
		},
		{
			name:    "no repository",
			event:   models.EventPullRequest,
			payload: `{"action":"opened","number":42,"head":{"sha":"abcdef1234567890"}}`,
			wantErr: utils.ErrNoRepository,
		},
		{
			name:    "repository wrong type",
			event:   models.EventPullRequest,
			payload: `{"action":"opened","repository":7,"number":42,"head":{"sha":"abcdef1234567890"}}`,
			wantErr: utils.ErrNoRepository,
		},
		{
			name:    "no number",
			event:   models.EventPullRequest,
			payload: `{"action":"opened","repository":"octocat/spoon-knife","head":{"sha":"abcdef1234567890"}}`,
			wantErr: utils.ErrNoNumber,
		},
		{
			name:    "number not an integer",
			event:   models.EventPullRequest,
			payload: `{"action":"opened","repository":"octocat/spoon-knife","number":4.2,"head":{"sha":"abcdef1234567890"}}`,
			wantErr: utils.ErrNoNumber,
		},
		{
			name:    "no head object",
			event:   models.EventPullRequest,
			payload: `{"action":"opened","repository":"octocat/spoon-knife","number":42}`,
			wantErr: utils.ErrNoSHA,
		},
		{
			name:    "no sha under head",
			event:   models.EventPullRequest,
			payload: `{"action":"opened","repository":"octocat/spoon-knife","number":42,"head":{"ref":"main"}}`,
			wantErr: utils.ErrNoSHA,
		},
		{
			name:    "begin fails",
			event:   models.EventPullRequest,
			payload: `{"action":"opened","repository":"octocat/spoon-knife","number":42,"head":{"sha":"abcdef1234567890"}}`,
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.PullRequestRepository) {
				uow.EXPECT().Begin(ctx).Return(nil, errors.New("pool exhausted"))
			},
			wantErr: utils.ErrCreatePullRequest,
		},
		{
			name:    "create fails rolls back",
			event:   models.EventPullRequest,
			payload: `{"action":"opened","repository":"octocat/spoon-knife","number":42,"head":{"sha":"abcdef1234567890"}}`,
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.PullRequestRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().PullRequestRepository().Return(repo)
				repo.EXPECT().Create(ctx, &models.PullRequestParams{
					Repository: "octocat/spoon-knife",
					Number:     "42",
					HeadSHA:    "abcdef1234567890",
					Status:     models.StatusOpened,
				}).Return(nil, utils.ErrCreatePullRequest)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrCreatePullRequest,
		},
		{
			name:    "commit fails",
			event:   models.EventPullRequest,
			payload: `{"action":"opened","repository":"octocat/spoon-knife","number":42,"head":{"sha":"abcdef1234567890"}}`,
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.PullRequestRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().PullRequestRepository().Return(repo)
				repo.EXPECT().Create(ctx, &models.PullRequestParams{
					Repository: "octocat/spoon-knife",
					Number:     "42",
					HeadSHA:    "abcdef1234567890",
					Status:     models.StatusOpened,
				}).Return(stored, nil)
				tx.EXPECT().Commit(ctx).Return(errors.New("connection reset"))
			},
			wantErr: utils.ErrCreatePullRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := mocks.NewUnitOfWork(t)
			tx := mocks.NewTransaction(t)
			repo := mocks.NewPullRequestRepository(t)
			if tt.setup != nil {
				tt.setup(uow, tx, repo)
			}

			svc := app.NewService(uow, logger.New("test"))
			got, err := svc.HandleEvent(ctx, tt.event, []byte(tt.payload))
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
