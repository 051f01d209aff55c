package ospath

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestCheckedToAbsolutePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		segments []string
	}{
		{name: "plain descent", input: "a/b", segments: []string{"a", "b"}},
		{name: "bare root", input: "", segments: nil},
		{name: "dot and doubled separators collapse away", input: "a//./b", segments: []string{"a", "b"}},
		{name: "traversal cancels the preceding segment", input: "a/b/../c", segments: []string{"a", "c"}},
		{name: "cancelling down to the root is fine", input: "a/..", segments: nil},
		{name: "trailing separator", input: "a/b/", segments: []string{"a", "b"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CheckedToAbsolutePath(absInput(tc.input))
			assert.NilError(t, err)
			assert.Equal(t, got.NumSegments(), len(tc.segments))
			for i, seg := range tc.segments {
				assert.Equal(t, got.segments[i], seg)
			}
			assert.Equal(t, got.Root(), absInput(""))
		})
	}
}

func TestCheckedToAbsolutePathRejectsEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "bare traversal", input: ".."},
		{name: "mostly traversal", input: "a/../.."},
		{name: "leading traversal underflows despite ballast", input: "../a"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CheckedToAbsolutePath(absInput(tc.input))
			assert.Assert(t, errors.Is(err, ErrAbsolutePathOutsideRoot), "input %q: got %v", tc.input, err)
		})
	}
}

func TestCheckedToAbsolutePathRejectsRelative(t *testing.T) {
	_, err := CheckedToAbsolutePath(filepath.FromSlash("a/b"))
	assert.Assert(t, errors.Is(err, ErrNotAbsolute))
}

func TestAbsolutePathJoin(t *testing.T) {
	base := mustAbs(t, "a/b")

	got, err := base.Join(mustRel(t, "c/d"))
	assert.NilError(t, err)
	assert.Assert(t, got.Equal(mustAbs(t, "a/b/c/d")))

	got, err = base.Join(mustRel(t, "../c"))
	assert.NilError(t, err)
	assert.Assert(t, got.Equal(mustAbs(t, "a/c")))

	got, err = base.Join(Rel())
	assert.NilError(t, err)
	assert.Assert(t, got.Equal(base))

	root := mustAbs(t, "")
	got, err = root.Join(mustRel(t, "x"))
	assert.NilError(t, err)
	assert.Assert(t, got.Equal(mustAbs(t, "x")))
}

func TestAbsolutePathJoinCannotClimbAboveRoot(t *testing.T) {
	_, err := mustAbs(t, "a/b").Join(Up(3))
	assert.Assert(t, errors.Is(err, ErrAbsolutePathOutsideRoot))

	_, err = mustAbs(t, "").Join(Up(1))
	assert.Assert(t, errors.Is(err, ErrAbsolutePathOutsideRoot))
}

func TestAbsolutePathUntypedJoinValidatesEveryPart(t *testing.T) {
	got, err := mustAbs(t, "a").UntypedJoin("b", "c")
	assert.NilError(t, err)
	assert.Assert(t, got.Equal(mustAbs(t, "a/b/c")))

	invalid := &InvalidSegmentError{}
	_, err = got.UntypedJoin("d/e")
	assert.Assert(t, errors.As(err, &invalid))
	_, err = got.UntypedJoin("..")
	assert.Assert(t, errors.As(err, &invalid))
}

func TestAbsolutePathJoinSegments(t *testing.T) {
	seg, err := CheckSegment("kept")
	assert.NilError(t, err)
	got := mustAbs(t, "a").JoinSegments(seg)
	assert.Assert(t, got.Equal(mustAbs(t, "a/kept")))
}

func TestAbsolutePathResolve(t *testing.T) {
	base := mustAbs(t, "base/dir")

	got, err := base.Resolve(filepath.FromSlash("x/y"))
	assert.NilError(t, err)
	assert.Assert(t, got.Equal(mustAbs(t, "base/dir/x/y")))

	got, err = base.Resolve(absInput("other"))
	assert.NilError(t, err)
	assert.Assert(t, got.Equal(mustAbs(t, "other")))

	got, err = base.Resolve("")
	assert.NilError(t, err)
	assert.Assert(t, got.Equal(base))

	_, err = base.Resolve(filepath.FromSlash("../../../x"))
	assert.Assert(t, errors.Is(err, ErrAbsolutePathOutsideRoot))
}

func TestAbsolutePathRelativeTo(t *testing.T) {
	tests := []struct {
		name string
		path string
		base string
		want string
	}{
		{name: "self is empty", path: "a/b", base: "a/b", want: ""},
		{name: "deeper target descends", path: "a/b/c", base: "a/b", want: "c"},
		{name: "shallower target ascends", path: "a", base: "a/b/c", want: "../.."},
		{name: "sibling branch", path: "a/x", base: "a/b/c", want: "../../x"},
		{name: "disjoint", path: "x", base: "a", want: "../x"},
		{name: "from the bare root", path: "a/b", base: "", want: "a/b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := mustAbs(t, tc.path)
			base := mustAbs(t, tc.base)
			got := path.RelativeTo(base)
			assert.Assert(t, got.Equal(mustRel(t, tc.want)), "got %q, want %q", got, tc.want)
			// The result must always lead from base back to path.
			back, err := base.Join(got)
			assert.NilError(t, err)
			assert.Assert(t, back.Equal(path))
		})
	}
}

func TestAbsolutePathStartsWith(t *testing.T) {
	assert.Assert(t, mustAbs(t, "a/b").StartsWith(mustAbs(t, "a/b")))
	assert.Assert(t, mustAbs(t, "a/b").StartsWith(mustAbs(t, "a")))
	assert.Assert(t, mustAbs(t, "a/b").StartsWith(mustAbs(t, "")))
	assert.Assert(t, !mustAbs(t, "a").StartsWith(mustAbs(t, "a/b")))
	assert.Assert(t, !mustAbs(t, "a/b").StartsWith(mustAbs(t, "b")))
}

func TestAbsolutePathEndsWith(t *testing.T) {
	assert.Assert(t, mustAbs(t, "a/b/c").EndsWith(mustRel(t, "a/b/c")))
	assert.Assert(t, mustAbs(t, "a/b/c").EndsWith(mustRel(t, "b/c")))
	assert.Assert(t, mustAbs(t, "a/b/c").EndsWith(Rel()))
	assert.Assert(t, !mustAbs(t, "a/b/c").EndsWith(mustRel(t, "a/b")))
	assert.Assert(t, !mustAbs(t, "a/b/c").EndsWith(mustRel(t, "../c")))
}

func TestAbsolutePathLastExtBaseName(t *testing.T) {
	p := mustAbs(t, "d/archive.tar.gz")
	last, err := p.Last()
	assert.NilError(t, err)
	assert.Equal(t, string(last), "archive.tar.gz")
	assert.Equal(t, p.Ext(), "gz")
	assert.Equal(t, p.BaseName(), "archive.tar")

	root := mustAbs(t, "")
	_, err = root.Last()
	assert.Assert(t, errors.Is(err, ErrEmptyPath))
	assert.Equal(t, root.Ext(), "")
	assert.Equal(t, root.BaseName(), "")
}

func TestAbsolutePathOrdering(t *testing.T) {
	want := []string{"", "a", "b", "a/a", "a/b"}
	paths := AbsolutePaths{}
	for _, s := range []string{"a/b", "b", "", "a/a", "a"} {
		paths = append(paths, mustAbs(t, s))
	}
	paths.Sort()

	wantRendered := make([]string, len(want))
	for i, s := range want {
		wantRendered[i] = absInput(s)
	}
	if diff := cmp.Diff(wantRendered, paths.Strings()); diff != "" {
		t.Errorf("sorted order mismatch (-want +got):\n%s", diff)
	}
}

func TestAbsolutePathString(t *testing.T) {
	assert.Equal(t, mustAbs(t, "").String(), absInput(""))
	assert.Equal(t, mustAbs(t, "a/b").String(), absInput("a/b"))
}

func TestAbsolutePathTextRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a/b", "x"} {
		original := mustAbs(t, s)
		text, err := original.MarshalText()
		assert.NilError(t, err)
		var parsed AbsolutePath
		assert.NilError(t, parsed.UnmarshalText(text))
		assert.Assert(t, parsed.Equal(original))
		assert.Equal(t, parsed.Root(), original.Root())
	}

	var parsed AbsolutePath
	err := parsed.UnmarshalText([]byte(filepath.FromSlash("a/b")))
	assert.Assert(t, errors.Is(err, ErrNotAbsolute))
}

// absInput renders a slash-separated descent as a native absolute path
// rooted at "/" or, on Windows, at the C drive.
func absInput(slashed string) string {
	root := "/"
	if runtime.GOOS == "windows" {
		root = `C:\`
	}
	if slashed == "" {
		return root
	}
	return root + filepath.FromSlash(slashed)
}

func mustAbs(t *testing.T, slashed string) AbsolutePath {
	t.Helper()
	p, err := CheckedToAbsolutePath(absInput(slashed))
	assert.NilError(t, err)
	return p
}
