package pullrequest

import (
	"net/http"

	"pr-webhook-service/internal/infrastructure/http/handlers/dto"
	"pr-webhook-service/internal/utils"
)

const listLimit = 100

type ListResponse struct {
	PullRequests []dto.PullRequestDTO `json:"pull_requests"`
}

func (h *PullRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	prs, err := h.prService.ListPullRequests(r.Context(), listLimit)
	if err != nil {
		h.log.Error("List pull requests failed", "err", err)
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrListPullRequests.Error())
		return
	}

	resp := ListResponse{PullRequests: make([]dto.PullRequestDTO, 0, len(prs))}
	for _, pr := range prs {
		resp.PullRequests = append(resp.PullRequests, dto.ToPullRequestDTO(pr))
	}
	_ = utils.WriteJSON(w, http.StatusOK, resp)
}
