package utils

import "errors"

var (
	ErrMissingSignature    = errors.New("missing or repeated signature header")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrSecretNotConfigured = errors.New("webhook secret is not configured")
	ErrUnknownEvent        = errors.New("unknown event type")
	ErrMalformedPayload    = errors.New("could not decode request body")
	ErrNoRepository        = errors.New("no repository")
	ErrNoNumber            = errors.New("no number")
	ErrNoSHA               = errors.New("no SHA")
	ErrUnsupportedAction   = errors.New("can't handle action")
	ErrEventNotImplemented = errors.New("event type not implemented")
	ErrCreatePullRequest   = errors.New("could not create pull request")
	ErrListPullRequests    = errors.New("could not query pull requests")
	ErrInvalidArgument     = errors.New("invalid argument")
)
