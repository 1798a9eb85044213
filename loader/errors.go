package loader

import "errors"

// ErrMalformedWeight indicates a weight field that is neither a number nor
// one of the recognized sentinel strings.
var ErrMalformedWeight = errors.New("loader: malformed weight value")
