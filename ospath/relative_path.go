package ospath

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// RelativePath is a normalized relative path: a count of leading
// "go up one level" steps followed by a descent through named segments.
// The zero value is the empty relative path.
//
// The segment list never contains "", ".", or ".."; traversal folds into
// the up-count at construction time. Values are immutable, every
// operation returns a fresh value.
type RelativePath struct {
	ups      int
	segments []string
}

// For interface reasons, we need a way to distinguish the two path kinds
// so we stamp them.
func (RelativePath) filePathStamp() {}

// Rel returns the empty relative path: no ups, no segments.
func Rel() RelativePath {
	return RelativePath{}
}

// Up returns a relative path that only ascends. Levels at or below zero
// yield the empty path.
func Up(levels int) RelativePath {
	if levels < 0 {
		levels = 0
	}
	return RelativePath{ups: levels}
}

// CheckedToRelativePath converts a native representation that must not
// denote an absolute location. The input is chunked and folded: every
// ".." component contributes to the up-count and everything else becomes
// a segment, keeping only the relative order within each group. A mixed
// input like "a/b/../c" therefore folds to one up and segments a, b, c,
// the same as "../a/b/c" would.
func CheckedToRelativePath(s string) (RelativePath, error) {
	if filepath.IsAbs(s) {
		return RelativePath{}, errors.Wrapf(ErrNotRelative, "converting %q", s)
	}
	return relativePathFromChunks(chunk(s)), nil
}

// relativePathFromChunks partitions raw chunks into the canonical
// (ups, segments) form. The fold is a partition, not a stack: a ".."
// counts toward ups no matter where it appears in the sequence.
func relativePathFromChunks(chunks []string) RelativePath {
	ups := 0
	var segments []string
	for _, c := range chunks {
		if c == ".." {
			ups++
			continue
		}
		segments = append(segments, c)
	}
	return RelativePath{ups: ups, segments: segments}
}

// Ups reports how many levels above its anchor the path begins.
func (p RelativePath) Ups() int {
	return p.ups
}

// NumSegments reports the number of named segments.
func (p RelativePath) NumSegments() int {
	return len(p.segments)
}

// SegmentStrings returns a copy of the named segments in order.
// Used for interfacing with APIs that require strings.
func (p RelativePath) SegmentStrings() []string {
	return copySegments(p.segments)
}

// Join resolves sub against this path. The up-steps of sub consume this
// path's trailing segments; whatever cannot be consumed carries over
// into the up-count of the result. Join never fails.
func (p RelativePath) Join(sub RelativePath) RelativePath {
	kept := len(p.segments) - sub.ups
	carried := 0
	if kept < 0 {
		carried = -kept
		kept = 0
	}
	segments := make([]string, 0, kept+len(sub.segments))
	segments = append(segments, p.segments[:kept]...)
	segments = append(segments, sub.segments...)
	return RelativePath{ups: p.ups + carried, segments: segments}
}

// JoinSegments descends through already-validated segments.
func (p RelativePath) JoinSegments(segs ...Segment) RelativePath {
	segments := make([]string, 0, len(p.segments)+len(segs))
	segments = append(segments, p.segments...)
	for _, seg := range segs {
		segments = append(segments, string(seg))
	}
	return RelativePath{ups: p.ups, segments: segments}
}

// UntypedJoin descends through raw string parts. Every part passes
// through the segment validator; this is the entry point for callers
// starting from plain strings, and it does not interpret "..".
func (p RelativePath) UntypedJoin(parts ...string) (RelativePath, error) {
	checked, err := checkSegments(parts)
	if err != nil {
		return RelativePath{}, err
	}
	return RelativePath{ups: p.ups, segments: append(copySegments(p.segments), checked...)}, nil
}

// RelativeTo computes the path that reaches this path when joined onto
// base: base.Join(result) equals the receiver whenever the result is
// defined. When base ascends further than this path does, no relative
// path can bridge the two and a NoRelativePathError is returned.
func (p RelativePath) RelativeTo(base RelativePath) (RelativePath, error) {
	switch {
	case base.ups < p.ups:
		// The base must first climb out of its own segments before it
		// can take the extra up-steps this path needs.
		return RelativePath{
			ups:      p.ups + len(base.segments),
			segments: copySegments(p.segments),
		}, nil
	case base.ups == p.ups:
		k := commonPrefixLen(p.segments, base.segments)
		return RelativePath{
			ups:      len(base.segments) - k,
			segments: copySegments(p.segments[k:]),
		}, nil
	default:
		return RelativePath{}, &NoRelativePathError{Path: p, Base: base}
	}
}

// StartsWith reports whether target is a literal prefix of this path.
// The up-counts must match exactly; they are not prefix-compared.
func (p RelativePath) StartsWith(target RelativePath) bool {
	return p.ups == target.ups && hasSegmentPrefix(p.segments, target.segments)
}

// EndsWith reports whether this path descends through target's segments
// as its final steps. A target that ascends cannot be a suffix.
func (p RelativePath) EndsWith(target RelativePath) bool {
	return target.ups == 0 && hasSegmentSuffix(p.segments, target.segments)
}

// Last returns the final named segment, or ErrEmptyPath when the path
// has none.
func (p RelativePath) Last() (Segment, error) {
	return lastSegment(p.segments)
}

// Ext returns the extension of the final segment: the piece after its
// last ".", or "" when the segment is dotless or the path is empty.
func (p RelativePath) Ext() string {
	return segmentExt(p.segments)
}

// BaseName returns the final segment with its extension removed.
func (p RelativePath) BaseName() string {
	return segmentBaseName(p.segments)
}

// Equal reports structural equality: both the up-count and every
// segment must match.
func (p RelativePath) Equal(other RelativePath) bool {
	return p.ups == other.ups && compareSegments(p.segments, other.segments) == 0
}

// Compare orders relative paths by up-count, then segment count, then
// element-wise segment comparison. The result is -1, 0, or +1.
func (p RelativePath) Compare(other RelativePath) int {
	if p.ups != other.ups {
		if p.ups < other.ups {
			return -1
		}
		return 1
	}
	return compareSegments(p.segments, other.segments)
}

// Less reports whether p sorts before other.
func (p RelativePath) Less(other RelativePath) bool {
	return p.Compare(other) < 0
}

// String renders the up-steps first, then the segments, joined by the
// platform separator. The empty path renders as "".
func (p RelativePath) String() string {
	parts := make([]string, 0, p.ups+len(p.segments))
	for i := 0; i < p.ups; i++ {
		parts = append(parts, "..")
	}
	parts = append(parts, p.segments...)
	return strings.Join(parts, string(os.PathSeparator))
}

// MarshalText implements encoding.TextMarshaler. Paths serialize as
// their String form.
func (p RelativePath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *RelativePath) UnmarshalText(text []byte) error {
	parsed, err := CheckedToRelativePath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
