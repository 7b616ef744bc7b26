package render

import "errors"

var (
	// ErrEmptyProfile is returned when there is nothing to draw.
	ErrEmptyProfile = errors.New("render: empty motion profile")

	// ErrBadFrameIndex is returned for a frame index outside the profile.
	ErrBadFrameIndex = errors.New("render: frame index out of range")
)
