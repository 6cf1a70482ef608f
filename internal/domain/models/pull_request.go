package models

import (
	"time"
)

type PRStatus string

const (
	StatusOpened PRStatus = "opened"
)

// PullRequest is a persisted record of a pull-request lifecycle event.
// Number is stored as text: the provider may send numbers wider than
// any fixed-size integer we would pick.
type PullRequest struct {
	ID         int64
	Repository string
	Number     string
	HeadSHA    string
	Status     PRStatus
	CreatedAt  time.Time
}

// PullRequestParams carries extracted webhook fields into the store.
// It is built from untrusted input and validated field by field before
// it is ever handed to a repository.
type PullRequestParams struct {
	Repository string
	Number     string
	HeadSHA    string
	Status     PRStatus
}
