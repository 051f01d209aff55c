package ospath

import (
	"os"
	"strings"
)

// A Segment is one validated path component, the atomic unit both path
// kinds descend through. The grammar is enforced by CheckSegment; a
// Segment never holds a separator or a reserved traversal name.
type Segment string

// CheckSegment validates a single literal path component. It is invoked
// wherever a caller supplies a raw string as a segment; values produced
// by the package itself arrive pre-validated and skip this.
func CheckSegment(s string) (Segment, error) {
	if err := checkSegment(s); err != nil {
		return "", err
	}
	return Segment(s), nil
}

func checkSegment(s string) error {
	switch {
	case s == "":
		return &InvalidSegmentError{Segment: s, Reason: "a segment cannot be empty"}
	case s == ".":
		return &InvalidSegmentError{Segment: s, Reason: `"." is a reserved name`}
	case s == "..":
		return &InvalidSegmentError{Segment: s, Reason: `".." is a reserved name`}
	case strings.ContainsRune(s, '/') || strings.ContainsRune(s, os.PathSeparator):
		return &InvalidSegmentError{Segment: s, Reason: "a segment cannot contain a path separator"}
	}
	return nil
}

// checkSegments validates every part in order, returning the first
// violation encountered.
func checkSegments(parts []string) ([]string, error) {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if err := checkSegment(part); err != nil {
			return nil, err
		}
		out = append(out, part)
	}
	return out, nil
}

// lastSegment returns the final entry of a segment list.
func lastSegment(segments []string) (Segment, error) {
	if len(segments) == 0 {
		return "", ErrEmptyPath
	}
	return Segment(segments[len(segments)-1]), nil
}

// segmentExt splits the final segment on "." and returns the last piece.
// A dotless final segment, or an empty list, yields "". Note that this
// reports an extension for dot-led names: ".gitignore" has extension
// "gitignore".
func segmentExt(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	last := segments[len(segments)-1]
	if !strings.Contains(last, ".") {
		return ""
	}
	pieces := strings.Split(last, ".")
	return pieces[len(pieces)-1]
}

// segmentBaseName returns the final segment up to its final ".", or the
// whole segment when dotless. An empty list yields "".
func segmentBaseName(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	last := segments[len(segments)-1]
	if i := strings.LastIndex(last, "."); i != -1 {
		return last[:i]
	}
	return last
}
