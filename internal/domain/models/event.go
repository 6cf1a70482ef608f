package models

import (
	"pr-webhook-service/internal/utils"
)

// EventType is the closed set of webhook event kinds this service
// recognizes from the X-GitHub-Event header.
type EventType string

const (
	EventPullRequest  EventType = "pull_request"
	EventIssueComment EventType = "issue_comment"
	EventStatus       EventType = "status"
)

// ParseEventType classifies the event header values. Exactly one value
// must be present and match a known event name case-sensitively; the
// header being absent, repeated, or carrying anything else is a
// classification failure, never a silent no-op.
func ParseEventType(values []string) (EventType, error) {
	if len(values) != 1 {
		return "", utils.ErrUnknownEvent
	}
	switch EventType(values[0]) {
	case EventPullRequest:
		return EventPullRequest, nil
	case EventIssueComment:
		return EventIssueComment, nil
	case EventStatus:
		return EventStatus, nil
	default:
		return "", utils.ErrUnknownEvent
	}
}
