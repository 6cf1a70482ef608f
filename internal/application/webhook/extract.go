package webhook

import (
	"bytes"
	"encoding/json"
	"strconv"

	"pr-webhook-service/internal/domain/models"
	"pr-webhook-service/internal/utils"
)

// extractOpened pulls the pull-request fields out of an untrusted
// payload. Every field access is fallible and yields its own error so
// the sender can tell which field was missing or mistyped. Extraction
// is all or nothing; no partial params ever reach the store.
func extractOpened(payload []byte) (*models.PullRequestParams, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	// Numbers stay json.Number so 64-bit pull-request numbers survive
	// the trip into their text representation.
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, utils.ErrMalformedPayload
	}

	action, ok := root["action"].(string)
	if !ok || action != "opened" {
		return nil, utils.ErrUnsupportedAction
	}

	repository, ok := root["repository"].(string)
	if !ok {
		return nil, utils.ErrNoRepository
	}

	number, ok := root["number"].(json.Number)
	if !ok {
		return nil, utils.ErrNoNumber
	}
	n, err := number.Int64()
	if err != nil {
		return nil, utils.ErrNoNumber
	}

	head, ok := root["head"].(map[string]any)
	if !ok {
		return nil, utils.ErrNoSHA
	}
	sha, ok := head["sha"].(string)
	if !ok {
		return nil, utils.ErrNoSHA
	}

	return &models.PullRequestParams{
		Repository: repository,
		Number:     strconv.FormatInt(n, 10),
		HeadSHA:    sha,
		Status:     models.StatusOpened,
	}, nil
}
