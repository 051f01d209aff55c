package ospath

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// AbsolutePath is a normalized absolute path: an opaque root token and a
// descent through named segments. There is no up-count; nothing above
// the root is representable, and operations that would need to climb
// past it fail with ErrAbsolutePathOutsideRoot.
//
// The root token is carried from the native representation and never
// interpreted: "/" on Unix, a drive or UNC share root on Windows.
// Equality and ordering consider segments only.
type AbsolutePath struct {
	root     string
	segments []string
}

// For interface reasons, we need a way to distinguish the two path kinds
// so we stamp them.
func (AbsolutePath) filePathStamp() {}

// CheckedToAbsolutePath converts a native representation that must
// denote an absolute location. Inputs whose chunks are more than half
// ".." entries are rejected outright as malformed escaping paths; the
// remaining traversal steps then cancel the segment immediately before
// them, and cancelling past the first segment is an error rather than a
// silent clamp to the root.
func CheckedToAbsolutePath(s string) (AbsolutePath, error) {
	if !filepath.IsAbs(s) {
		return AbsolutePath{}, errors.Wrapf(ErrNotAbsolute, "converting %q", s)
	}
	root, rest := splitRoot(s)
	chunks := chunk(rest)
	upCount := 0
	for _, c := range chunks {
		if c == ".." {
			upCount++
		}
	}
	if upCount*2 > len(chunks) {
		return AbsolutePath{}, errors.Wrapf(ErrAbsolutePathOutsideRoot, "converting %q", s)
	}
	segments, err := foldAbsoluteChunks(chunks)
	if err != nil {
		return AbsolutePath{}, errors.Wrapf(err, "converting %q", s)
	}
	return AbsolutePath{root: root, segments: segments}, nil
}

// foldAbsoluteChunks normalizes chunks positionally: each ".." cancels
// the segment accumulated immediately before it. There is no up-count
// to absorb leftovers here, so cancelling on an empty list fails.
func foldAbsoluteChunks(chunks []string) ([]string, error) {
	var segments []string
	for _, c := range chunks {
		if c != ".." {
			segments = append(segments, c)
			continue
		}
		if len(segments) == 0 {
			return nil, ErrAbsolutePathOutsideRoot
		}
		segments = segments[:len(segments)-1]
	}
	return segments, nil
}

// Root returns the opaque root token this path was constructed with.
func (p AbsolutePath) Root() string {
	return p.root
}

// NumSegments reports the number of named segments.
func (p AbsolutePath) NumSegments() int {
	return len(p.segments)
}

// SegmentStrings returns a copy of the named segments in order.
// Used for interfacing with APIs that require strings.
func (p AbsolutePath) SegmentStrings() []string {
	return copySegments(p.segments)
}

// Join resolves sub against this path. The up-steps of sub consume this
// path's trailing segments; consuming more segments than exist would
// climb above the root and fails.
func (p AbsolutePath) Join(sub RelativePath) (AbsolutePath, error) {
	if sub.ups > len(p.segments) {
		return AbsolutePath{}, ErrAbsolutePathOutsideRoot
	}
	kept := len(p.segments) - sub.ups
	segments := make([]string, 0, kept+len(sub.segments))
	segments = append(segments, p.segments[:kept]...)
	segments = append(segments, sub.segments...)
	return AbsolutePath{root: p.root, segments: segments}, nil
}

// JoinSegments descends through already-validated segments.
func (p AbsolutePath) JoinSegments(segs ...Segment) AbsolutePath {
	segments := make([]string, 0, len(p.segments)+len(segs))
	segments = append(segments, p.segments...)
	for _, seg := range segs {
		segments = append(segments, string(seg))
	}
	return AbsolutePath{root: p.root, segments: segments}
}

// UntypedJoin descends through raw string parts. Every part passes
// through the segment validator; it does not interpret "..".
func (p AbsolutePath) UntypedJoin(parts ...string) (AbsolutePath, error) {
	checked, err := checkSegments(parts)
	if err != nil {
		return AbsolutePath{}, err
	}
	return AbsolutePath{root: p.root, segments: append(copySegments(p.segments), checked...)}, nil
}

// Resolve converts a native representation against this path as the
// base: relative input joins onto this path, absolute input converts on
// its own and the base is discarded.
func (p AbsolutePath) Resolve(s string) (AbsolutePath, error) {
	if filepath.IsAbs(s) {
		return CheckedToAbsolutePath(s)
	}
	sub, err := CheckedToRelativePath(s)
	if err != nil {
		return AbsolutePath{}, err
	}
	return p.Join(sub)
}

// RelativeTo computes the relative path from base to this path: base's
// trailing segments are trimmed one at a time, each trim counting as an
// up-step, until what remains is a prefix of this path. Trimming always
// terminates because the empty list is a prefix of everything. Roots
// are not compared.
func (p AbsolutePath) RelativeTo(base AbsolutePath) RelativePath {
	trimmed := base.segments
	ups := 0
	for !hasSegmentPrefix(p.segments, trimmed) {
		trimmed = trimmed[:len(trimmed)-1]
		ups++
	}
	return RelativePath{ups: ups, segments: copySegments(p.segments[len(trimmed):])}
}

// StartsWith reports whether target's segments are a literal prefix of
// this path's segments. Roots are not compared.
func (p AbsolutePath) StartsWith(target AbsolutePath) bool {
	return hasSegmentPrefix(p.segments, target.segments)
}

// EndsWith reports whether this path descends through target's segments
// as its final steps. A target that ascends cannot be a suffix.
func (p AbsolutePath) EndsWith(target RelativePath) bool {
	return target.ups == 0 && hasSegmentSuffix(p.segments, target.segments)
}

// Last returns the final named segment, or ErrEmptyPath for a bare
// root.
func (p AbsolutePath) Last() (Segment, error) {
	return lastSegment(p.segments)
}

// Ext returns the extension of the final segment: the piece after its
// last ".", or "" when the segment is dotless or the path is a bare
// root.
func (p AbsolutePath) Ext() string {
	return segmentExt(p.segments)
}

// BaseName returns the final segment with its extension removed.
func (p AbsolutePath) BaseName() string {
	return segmentBaseName(p.segments)
}

// Equal reports whether both paths descend through the same segments.
// The root tokens do not participate: two paths on different roots with
// identical segments compare equal.
func (p AbsolutePath) Equal(other AbsolutePath) bool {
	return compareSegments(p.segments, other.segments) == 0
}

// Compare orders absolute paths by segment count, then element-wise
// segment comparison; the root does not participate. The result is -1,
// 0, or +1.
func (p AbsolutePath) Compare(other AbsolutePath) int {
	return compareSegments(p.segments, other.segments)
}

// Less reports whether p sorts before other.
func (p AbsolutePath) Less(other AbsolutePath) bool {
	return p.Compare(other) < 0
}

// String renders the root token followed by the segments joined with
// the platform separator.
func (p AbsolutePath) String() string {
	return p.root + strings.Join(p.segments, string(os.PathSeparator))
}

// MarshalText implements encoding.TextMarshaler. Paths serialize as
// their String form.
func (p AbsolutePath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *AbsolutePath) UnmarshalText(text []byte) error {
	parsed, err := CheckedToAbsolutePath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
