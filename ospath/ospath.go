// Package ospath teaches the Go type system about two kinds of
// filesystem-style paths:
// - AbsolutePath
// - RelativePath
//
// Both are pure, immutable values that are normalized at construction
// time: segment lists never contain empty entries or the literal "."
// and ".." names. A relative path folds its traversal steps into an
// up-count; an absolute path cannot ascend at all and reports an error
// rather than climbing above its root.
//
// Keeping the two kinds as separate types lets the compiler catch the
// mistakes that otherwise surface at runtime: handing a relative
// location to something that needs an anchored one, or comparing paths
// whose representations were never normalized the same way.
//
// Nothing in this package touches the filesystem. Conversions from
// native string representations live here; obtaining a real file handle
// for a path is the osfs package's concern.
package ospath

import (
	"path/filepath"
	"sort"
	"strings"
)

// FilePath is the union of the two path kinds, produced when a caller
// does not know up front whether an input denotes an absolute location.
// The only implementations are AbsolutePath and RelativePath;
// discriminate with a type switch at the conversion boundary.
type FilePath interface {
	filePathStamp()

	// String renders the path using the platform separator.
	String() string
	// Last returns the final named segment.
	Last() (Segment, error)
	// Ext returns the extension of the final segment.
	Ext() string
	// BaseName returns the final segment with its extension removed.
	BaseName() string
	// SegmentStrings returns a copy of the named segments in order.
	SegmentStrings() []string
}

// CheckedToFilePath converts a native representation to whichever path
// kind it denotes, dispatching on whether the input is absolute.
func CheckedToFilePath(s string) (FilePath, error) {
	if filepath.IsAbs(s) {
		return CheckedToAbsolutePath(s)
	}
	return CheckedToRelativePath(s)
}

// AbsolutePaths is a sortable collection of absolute paths.
type AbsolutePaths []AbsolutePath

// RelativePaths is a sortable collection of relative paths.
type RelativePaths []RelativePath

// Sort orders the collection by the total path order.
func (ps AbsolutePaths) Sort() {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
}

// Strings renders every path in order.
// Used for interfacing with APIs that require strings.
func (ps AbsolutePaths) Strings() []string {
	output := make([]string, len(ps))
	for index, path := range ps {
		output[index] = path.String()
	}
	return output
}

// Sort orders the collection by the total path order.
func (ps RelativePaths) Sort() {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
}

// Strings renders every path in order.
// Used for interfacing with APIs that require strings.
func (ps RelativePaths) Strings() []string {
	output := make([]string, len(ps))
	for index, path := range ps {
		output[index] = path.String()
	}
	return output
}

// hasSegmentPrefix reports whether prefix is a literal element-wise
// prefix of segments.
func hasSegmentPrefix(segments, prefix []string) bool {
	if len(prefix) > len(segments) {
		return false
	}
	for i, seg := range prefix {
		if segments[i] != seg {
			return false
		}
	}
	return true
}

// hasSegmentSuffix reports whether suffix is a literal element-wise
// suffix of segments.
func hasSegmentSuffix(segments, suffix []string) bool {
	offset := len(segments) - len(suffix)
	if offset < 0 {
		return false
	}
	for i, seg := range suffix {
		if segments[offset+i] != seg {
			return false
		}
	}
	return true
}

// commonPrefixLen scans left to right and returns the length of the
// longest shared prefix, stopping at the first mismatch.
func commonPrefixLen(a, b []string) int {
	k := 0
	for k < len(a) && k < len(b) && a[k] == b[k] {
		k++
	}
	return k
}

// compareSegments orders two segment lists by length first, then
// element-wise lexicographically. The result is -1, 0, or +1.
func compareSegments(a, b []string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// copySegments returns a fresh slice owning the same entries.
func copySegments(segments []string) []string {
	return append([]string(nil), segments...)
}
