package errors

import "errors"

var (
	ErrInvalidRequest           = errors.New("invalid request")
	ErrPackNotFound             = errors.New("campaign pack not found")
	ErrTemplateNotFound         = errors.New("template not found")
	ErrPageNotFound             = errors.New("page not found")
	ErrKitNotFound              = errors.New("kit not found")
	ErrIDGeneratorRequired      = errors.New("id generator required")
	ErrSlugConflict             = errors.New("page slug already exists")
	ErrIdempotencyKeyRequired   = errors.New("idempotency key required")
	ErrIdempotencyConflict      = errors.New("idempotency key reused with different request")
	ErrRepositoryInvariantBroke = errors.New("repository invariant violated")
)
