package ospath

import (
	"errors"
	"fmt"
)

// These are the failures shared by path construction and composition.
// All of them surface immediately at the call that caused them; nothing
// in this package retries or defaults.
var (
	// ErrAbsolutePathOutsideRoot is returned when a construction or join
	// would need to ascend above the root of an absolute path.
	ErrAbsolutePathOutsideRoot = errors.New("path would ascend above the filesystem root")

	// ErrNotAbsolute is returned when a caller supplies a relative
	// representation where an absolute one is required.
	ErrNotAbsolute = errors.New("path is not absolute")

	// ErrNotRelative is returned when a caller supplies an absolute
	// representation where a relative one is required.
	ErrNotRelative = errors.New("path is not relative")

	// ErrEmptyPath is returned when asking for the last segment of a
	// path that has none.
	ErrEmptyPath = errors.New("path has no segments")
)

// An InvalidSegmentError is returned when a literal segment violates the
// segment grammar. Reason is kept for error messages, not control flow.
type InvalidSegmentError struct {
	Segment string // the rejected segment
	Reason  string // human-readable rejection reason
}

// Error renders the rejected segment alongside its reason.
func (e *InvalidSegmentError) Error() string {
	return fmt.Sprintf("invalid path segment %q: %s", e.Segment, e.Reason)
}

// A NoRelativePathError is returned when no relative path can express
// Path starting from Base: the base ascends further than the target, and
// with an unknown anchor there is no general way to climb back down.
type NoRelativePathError struct {
	Path RelativePath
	Base RelativePath
}

// Error names the pair of paths that could not be relativized.
func (e *NoRelativePathError) Error() string {
	return fmt.Sprintf("cannot express %q relative to %q: the base ascends further than the target", e.Path, e.Base)
}
