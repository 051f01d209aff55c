package ospath

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestEqualityIgnoresDriveLetter(t *testing.T) {
	onC, err := CheckedToAbsolutePath(`C:\a\b`)
	assert.NilError(t, err)
	onD, err := CheckedToAbsolutePath(`D:\a\b`)
	assert.NilError(t, err)

	assert.Assert(t, onC.Equal(onD))
	assert.Equal(t, onC.Compare(onD), 0)
	assert.Equal(t, onC.Root(), `C:\`)
	assert.Equal(t, onD.Root(), `D:\`)
}

func TestRelativeToIgnoresDriveLetter(t *testing.T) {
	target, err := CheckedToAbsolutePath(`C:\a\b\c`)
	assert.NilError(t, err)
	base, err := CheckedToAbsolutePath(`D:\a\b`)
	assert.NilError(t, err)

	got := target.RelativeTo(base)
	assert.Equal(t, got.String(), "c")
	assert.Assert(t, target.StartsWith(base))
}

func TestUNCRoot(t *testing.T) {
	p, err := CheckedToAbsolutePath(`\\host\share\dir\file.txt`)
	assert.NilError(t, err)
	assert.Equal(t, p.Root(), `\\host\share\`)
	assert.DeepEqual(t, p.SegmentStrings(), []string{"dir", "file.txt"})
	assert.Equal(t, p.String(), `\\host\share\dir\file.txt`)
}
