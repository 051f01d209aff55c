// Package pathflag binds ospath values to pflag flag sets, so that
// command-line arguments arrive in the rest of a program already parsed
// and normalized.
package pathflag

import (
	"github.com/spf13/pflag"

	"github.com/coreyoconnor/os-lib/ospath"
)

// AbsolutePathVar defines a flag whose value parses into an absolute
// path. Relative arguments resolve against base; absolute arguments
// stand alone. A non-empty defaultValue resolves the same way and
// panics when it cannot, since a broken default is a misconfigured
// flag set.
func AbsolutePathVar(flags *pflag.FlagSet, target *ospath.AbsolutePath, name string, base ospath.AbsolutePath, usage string, defaultValue string) {
	if defaultValue != "" {
		resolved, err := base.Resolve(defaultValue)
		if err != nil {
			// fail fast if we've misconfigured our flags
			panic(err)
		}
		*target = resolved
	}
	flags.Var(&absolutePathValue{base: base, target: target}, name, usage)
}

// RelativePathVar defines a flag whose value parses into a relative
// path; absolute arguments are rejected at parse time.
func RelativePathVar(flags *pflag.FlagSet, target *ospath.RelativePath, name string, usage string, defaultValue string) {
	if defaultValue != "" {
		parsed, err := ospath.CheckedToRelativePath(defaultValue)
		if err != nil {
			// fail fast if we've misconfigured our flags
			panic(err)
		}
		*target = parsed
	}
	flags.Var(&relativePathValue{target: target}, name, usage)
}

type absolutePathValue struct {
	base   ospath.AbsolutePath
	target *ospath.AbsolutePath
}

func (v *absolutePathValue) String() string {
	return v.target.String()
}

func (v *absolutePathValue) Set(value string) error {
	resolved, err := v.base.Resolve(value)
	if err != nil {
		return err
	}
	*v.target = resolved
	return nil
}

func (v *absolutePathValue) Type() string {
	return "path"
}

var _ pflag.Value = &absolutePathValue{}

type relativePathValue struct {
	target *ospath.RelativePath
}

func (v *relativePathValue) String() string {
	return v.target.String()
}

func (v *relativePathValue) Set(value string) error {
	parsed, err := ospath.CheckedToRelativePath(value)
	if err != nil {
		return err
	}
	*v.target = parsed
	return nil
}

func (v *relativePathValue) Type() string {
	return "relative-path"
}

var _ pflag.Value = &relativePathValue{}
