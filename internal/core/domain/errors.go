package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingSetting is returned when a required configuration setting is absent.
	ErrMissingSetting = zerr.New("required setting missing")

	// ErrGenerationFailed marks a failed generator run whose details have
	// already been reported through the logger.
	ErrGenerationFailed = zerr.New("generation failed")
)
