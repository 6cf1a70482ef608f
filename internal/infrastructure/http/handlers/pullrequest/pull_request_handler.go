package pullrequest

import (
	input "pr-webhook-service/internal/domain/ports/input"
	ports "pr-webhook-service/internal/domain/ports/output"
)

type PullRequestHandler struct {
	prService input.PullRequestInputPort
	log       ports.Logger
}

func NewPullRequestHandler(s input.PullRequestInputPort, log ports.Logger) *PullRequestHandler {
	return &PullRequestHandler{prService: s, log: log}
}
