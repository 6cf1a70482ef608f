package dto

import (
	"time"

	"pr-webhook-service/internal/domain/models"
)

type PullRequestDTO struct {
	ID         int64     `json:"id"`
	Repository string    `json:"repository"`
	Number     string    `json:"number"`
	HeadSHA    string    `json:"head_sha"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

func ToPullRequestDTO(pr *models.PullRequest) PullRequestDTO {
	return PullRequestDTO{
		ID:         pr.ID,
		Repository: pr.Repository,
		Number:     pr.Number,
		HeadSHA:    pr.HeadSHA,
		Status:     string(pr.Status),
		CreatedAt:  pr.CreatedAt,
	}
}
