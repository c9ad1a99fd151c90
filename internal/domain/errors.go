package domain

import "errors"

var (
	ErrValidation            = errors.New("validation failed")
	ErrNotFound              = errors.New("not found")
	ErrUnauthorized          = errors.New("not authorized")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrStateConflict         = errors.New("state conflict")
	ErrReuploadWindowExpired = errors.New("reupload window expired")
	ErrEscrowNotHeld         = errors.New("escrow is not held")
	ErrExternalRail          = errors.New("payment rail call failed")
)
