package services

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidLink         = errors.New("invalid YouTube URL format")
	ErrCreatorNotFound     = errors.New("creator not found")
	ErrStreamNotFound      = errors.New("stream not found")
	ErrDuplicateRecent     = errors.New("this song was already added in the last 10 minutes")
	ErrQueueFull           = errors.New("queue is already at its limit")
	ErrMetadataUnavailable = errors.New("could not fetch video details")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrProviderDisabled    = errors.New("sign-in provider is not configured")

	// ErrQueueEmpty signals that Advance found nothing left to play.
	ErrQueueEmpty = errors.New("no more streams in queue")
)
