package richtext

import "errors"

// Sentinel errors for run production.
var (
	// ErrImageResolution indicates an image reference could not be opened or decoded.
	ErrImageResolution = errors.New("image resolution failed")

	// ErrInvalidImageSource indicates an image reference has no usable file name.
	ErrInvalidImageSource = errors.New("invalid image source")
)
