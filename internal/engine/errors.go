package engine

import "errors"

// Error kinds surfaced to the host. The first two carry the exact wording
// the host renamer displays for a skipped file.
var (
	ErrEmptyFileName       = errors.New("Filename is empty")
	ErrDestinationNotFound = errors.New("Destination is empty")
	ErrNoEpisodeTitle      = errors.New("episode has no titles")
	ErrUnknownEpisodeType  = errors.New("unhandled episode type")
	ErrInvalidContext      = errors.New("relocation context is incomplete")
)
