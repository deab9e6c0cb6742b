package snapkit

import (
	"errors"
	"fmt"
)

// ErrSinkUnavailable reports that no external share sink is present.
// This is a capability result, not a pipeline failure: the artifact is
// still valid and the caller may fall back to a plain download.
var ErrSinkUnavailable = errors.New("snapkit: share sink unavailable")

// ErrNoBaseRaster reports a composition request without a base image.
var ErrNoBaseRaster = errors.New("snapkit: composition request has no base raster")

// FilterError reports that a pixel transform faulted mid-buffer.
// The engine restores the pre-filter bytes before returning it, so the
// caller never observes a half-filtered image.
type FilterError struct {
	Kind FilterKind
	Err  error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("snapkit: filter %q failed: %v", e.Kind, e.Err)
}

func (e *FilterError) Unwrap() error { return e.Err }

// ElementError reports a malformed overlay element. During composition
// such elements are skipped rather than aborting the export; the type
// exists so callers that validate snapshots up front get a useful error.
type ElementError struct {
	ID     string
	Reason string
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("snapkit: element %q: %s", e.ID, e.Reason)
}

// EncodingError reports that the final raster could not be serialized.
// Unlike skipped layers this is fatal to the export call: there is no
// degraded artifact to hand to the sink.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("snapkit: encoding composed raster: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
