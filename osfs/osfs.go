// Package osfs is the boundary between ospath values and a real
// filesystem. It hands out byte-level seekable handles for absolute
// paths and discovers the process anchors (working directory, home
// directory) as typed paths.
//
// All path logic stays in ospath; this package only passes validated
// paths through to an afero filesystem, which defaults to the host OS.
package osfs

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/coreyoconnor/os-lib/ospath"
)

var _osFs = afero.NewOsFs()

// Open returns a read-only seekable handle for the filesystem entry the
// path denotes.
func Open(path ospath.AbsolutePath) (afero.File, error) {
	return openFs(_osFs, path)
}

// Create truncates or creates the filesystem entry the path denotes and
// returns a writable seekable handle.
func Create(path ospath.AbsolutePath) (afero.File, error) {
	return createFs(_osFs, path)
}

// OpenFile generalizes Open with explicit flags and mode.
func OpenFile(path ospath.AbsolutePath, flag int, perm os.FileMode) (afero.File, error) {
	return openFileFs(_osFs, path, flag, perm)
}

// FromFile converts an open handle back into a typed path using the
// name the handle was opened with.
func FromFile(f afero.File) (ospath.FilePath, error) {
	return fromFileFs(f)
}

// GetCwd returns the process working directory as an absolute path.
func GetCwd() (ospath.AbsolutePath, error) {
	cwdRaw, err := os.Getwd()
	if err != nil {
		return ospath.AbsolutePath{}, errors.Wrap(err, "invalid working directory")
	}
	cwd, err := ospath.CheckedToAbsolutePath(cwdRaw)
	if err != nil {
		return ospath.AbsolutePath{}, errors.Wrapf(err, "cwd is not an absolute path %v", cwdRaw)
	}
	return cwd, nil
}

// GetHomeDir returns the current user's home directory as an absolute
// path.
func GetHomeDir() (ospath.AbsolutePath, error) {
	dir, err := homedir.Dir()
	if err != nil {
		return ospath.AbsolutePath{}, errors.Wrap(err, "could not find home directory")
	}
	home, err := ospath.CheckedToAbsolutePath(dir)
	if err != nil {
		return ospath.AbsolutePath{}, errors.Wrapf(err, "home is not an absolute path %v", dir)
	}
	return home, nil
}

func openFs(fs afero.Fs, path ospath.AbsolutePath) (afero.File, error) {
	return fs.Open(path.String())
}

func createFs(fs afero.Fs, path ospath.AbsolutePath) (afero.File, error) {
	return fs.Create(path.String())
}

func openFileFs(fs afero.Fs, path ospath.AbsolutePath, flag int, perm os.FileMode) (afero.File, error) {
	return fs.OpenFile(path.String(), flag, perm)
}

func fromFileFs(f afero.File) (ospath.FilePath, error) {
	return ospath.CheckedToFilePath(f.Name())
}
