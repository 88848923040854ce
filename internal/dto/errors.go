package dto

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateIdentity   = errors.New("account already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNotVerified         = errors.New("account not verified")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrFederatedAuthFailed = errors.New("federated authentication failed")
	ErrInvalidCode         = errors.New("invalid or expired code")
	ErrUnknownCandidate    = errors.New("unknown candidate")
	ErrAlreadyVoted        = errors.New("already voted")
	ErrInternalFailure     = errors.New("internal failure")
)
