package compat

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// File is the parsed compatibility table.
type File struct {
	Default Scalar             `yaml:"default"`
	Targets map[string]*Target `yaml:"targets"`

	path string
}

// Target bundles the toolchain versions a Stellarium build is pinned to.
// Every field is optional.
type Target struct {
	StellariumVersion Scalar `yaml:"stellarium_version"`
	Qt                *Qt    `yaml:"qt"`
	MSVC              *MSVC  `yaml:"msvc"`
}

type Qt struct {
	Major   Scalar `yaml:"major"`
	Version Scalar `yaml:"version"`
}

type MSVC struct {
	Year    Scalar `yaml:"year"`
	Toolset Scalar `yaml:"toolset"`
}

// Scalar holds the literal text of a YAML scalar, so 5.10 stays "5.10" and
// 2022 becomes "2022". Null decodes to the empty string.
type Scalar string

func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	*s = Scalar(node.Value)
	return nil
}

func (s Scalar) String() string {
	return string(s)
}

// Names returns the target names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Targets))
	for name := range f.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named target. A target declared with an empty body is
// found and returned as a zero Target.
func (f *File) Lookup(name string) (Target, bool) {
	t, ok := f.Targets[name]
	if !ok {
		return Target{}, false
	}
	if t == nil {
		return Target{}, true
	}
	return *t, true
}

func (t Target) QtMajor() string {
	if t.Qt == nil {
		return ""
	}
	return t.Qt.Major.String()
}

func (t Target) QtVersion() string {
	if t.Qt == nil {
		return ""
	}
	return t.Qt.Version.String()
}

func (t Target) MSVCYear() string {
	if t.MSVC == nil {
		return ""
	}
	return t.MSVC.Year.String()
}

func (t Target) MSVCToolset() string {
	if t.MSVC == nil {
		return ""
	}
	return t.MSVC.Toolset.String()
}

// Exports returns the variables written to the environment export file, in
// write order.
func (t Target) Exports(name string) []Export {
	return []Export{
		{Key: "STELLARIUM_TARGET", Value: name},
		{Key: "STELLARIUM_VERSION", Value: t.StellariumVersion.String()},
		{Key: "QT_MAJOR", Value: t.QtMajor()},
		{Key: "QT_VERSION", Value: t.QtVersion()},
		{Key: "MSVC_YEAR", Value: t.MSVCYear()},
		{Key: "MSVC_TOOLSET", Value: t.MSVCToolset()},
	}
}

// Summary is the one-line confirmation printed after a successful export.
func (t Target) Summary(name string) string {
	return fmt.Sprintf("Using Stellarium target: %s (Stellarium %s, Qt %s, MSVC %s)",
		name, t.StellariumVersion, t.QtVersion(), t.MSVCYear())
}
