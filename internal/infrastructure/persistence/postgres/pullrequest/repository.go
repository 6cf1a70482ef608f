package pullrequest_repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pr-webhook-service/internal/domain/models"
	ports "pr-webhook-service/internal/domain/ports/output"
	pullrequest_port "pr-webhook-service/internal/domain/ports/output/pullrequest"
	"pr-webhook-service/internal/infrastructure/persistence/postgres"
	"pr-webhook-service/internal/utils"
)

type PullRequestRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewPullRequestRepository(querier postgres.Querier, log ports.Logger) pullrequest_port.PullRequestRepository {
	return &PullRequestRepository{querier: querier, log: log}
}

// Create inserts a new pull-request row and returns it with the
// storage-assigned identity. Every "opened" event produces a new row;
// deduplication on (repository, number) is deliberately not performed
// here (see the schema for the matching absence of a unique index).
func (r *PullRequestRepository) Create(ctx context.Context, params *models.PullRequestParams) (*models.PullRequest, error) {
	if params.Repository == "" || params.Number == "" || params.HeadSHA == "" {
		return nil, utils.ErrInvalidArgument
	}
	const insertPR = `
		INSERT INTO pull_requests (repository, number, head_sha, status)
		VALUES (@repository, @number, @head_sha, @status)
		RETURNING id, repository, number, head_sha, status, created_at;
	`
	row := r.querier.QueryRow(ctx, insertPR, pgx.NamedArgs{
		"repository": params.Repository,
		"number":     params.Number,
		"head_sha":   params.HeadSHA,
		"status":     string(params.Status),
	})
	var pr models.PullRequest
	if err := row.Scan(&pr.ID, &pr.Repository, &pr.Number, &pr.HeadSHA, &pr.Status, &pr.CreatedAt); err != nil {
		// The caller sees an opaque failure; the cause stays in the log
		// for operators.
		r.log.Error("Create pull request failed", "repository", params.Repository, "number", params.Number, "err", err)
		return nil, fmt.Errorf("%w: %w", utils.ErrCreatePullRequest, err)
	}
	return &pr, nil
}

func (r *PullRequestRepository) List(ctx context.Context, limit int) ([]*models.PullRequest, error) {
	const q = `
		SELECT id, repository, number, head_sha, status, created_at
		FROM pull_requests
		ORDER BY id
		LIMIT @limit;
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		r.log.Error("List pull requests query failed", "err", err)
		return nil, fmt.Errorf("%w: %w", utils.ErrListPullRequests, err)
	}
	defer rows.Close()

	var prs []*models.PullRequest
	for rows.Next() {
		var pr models.PullRequest
		if err := rows.Scan(&pr.ID, &pr.Repository, &pr.Number, &pr.HeadSHA, &pr.Status, &pr.CreatedAt); err != nil {
			r.log.Error("List pull requests scan failed", "err", err)
			return nil, fmt.Errorf("%w: %w", utils.ErrListPullRequests, err)
		}
		prs = append(prs, &pr)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrListPullRequests, rows.Err())
	}
	return prs, nil
}
