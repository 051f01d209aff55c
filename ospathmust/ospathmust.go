// Package ospathmust wraps the ospath constructors with panic-based
// error handling.
//
// It provides the same conversions as the ospath package, but instead
// of returning errors, all exported functions panic on failure. This
// suits tests and short programs where a malformed path literal is a
// programming mistake rather than an input to handle.
package ospathmust

import (
	"github.com/coreyoconnor/os-lib/ospath"
)

func must1[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}

// Abs converts an absolute native representation.
//
// It panics if the input is not absolute or would ascend above its root.
func Abs(s string) ospath.AbsolutePath {
	return must1(ospath.CheckedToAbsolutePath(s))
}

// Rel converts a relative native representation.
//
// It panics if the input is absolute.
func Rel(s string) ospath.RelativePath {
	return must1(ospath.CheckedToRelativePath(s))
}

// File converts a native representation to whichever path kind it
// denotes.
//
// It panics if the conversion fails.
func File(s string) ospath.FilePath {
	return must1(ospath.CheckedToFilePath(s))
}

// Resolve converts a native representation against base: relative input
// joins onto base, absolute input stands alone.
//
// It panics if the conversion or the join fails.
func Resolve(base ospath.AbsolutePath, s string) ospath.AbsolutePath {
	return must1(base.Resolve(s))
}

// Segment validates a single literal path component.
//
// It panics if the component violates the segment grammar.
func Segment(s string) ospath.Segment {
	return must1(ospath.CheckSegment(s))
}

// JoinAbs descends from base through raw string parts, validating each
// one as a literal segment.
//
// It panics if any part violates the segment grammar.
func JoinAbs(base ospath.AbsolutePath, parts ...string) ospath.AbsolutePath {
	return must1(base.UntypedJoin(parts...))
}

// JoinRel descends from base through raw string parts, validating each
// one as a literal segment.
//
// It panics if any part violates the segment grammar.
func JoinRel(base ospath.RelativePath, parts ...string) ospath.RelativePath {
	return must1(base.UntypedJoin(parts...))
}

// Last returns the final named segment of any path kind.
//
// It panics if the path has no segments.
func Last(p ospath.FilePath) ospath.Segment {
	return must1(p.Last())
}
