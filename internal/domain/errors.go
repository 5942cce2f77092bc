package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUnknownEra      = errors.New("unknown era")
	ErrAlreadyPending  = errors.New("generation already pending")
	ErrIncompleteSet   = errors.New("incomplete image set")
	ErrAssetLoad       = errors.New("asset load failed")
	ErrEmptySource     = errors.New("source image is empty")
	ErrProviderFailure = errors.New("provider failure")
)

// IncompleteSetError wraps ErrIncompleteSet naming the eras still missing.
func IncompleteSetError(missing []Era) error {
	return fmt.Errorf("%w: missing %v", ErrIncompleteSet, missing)
}

// AssetLoadError wraps ErrAssetLoad naming the offending era.
func AssetLoadError(era Era, cause error) error {
	return fmt.Errorf("%w for era %q: %v", ErrAssetLoad, era, cause)
}
