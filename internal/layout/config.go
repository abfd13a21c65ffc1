package layout

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// StructDesc is one [[struct]] entry in a layout description file. Fields are
// type strings in the form accepted by types.Parse; a field may name any
// struct declared earlier in the same file.
type StructDesc struct {
	Name   string   `toml:"name"`
	Fields []string `toml:"fields"`
}

// File is a parsed layout description: an optional inline target override
// plus the structs to place.
type File struct {
	Target  *Target      `toml:"target"`
	Structs []StructDesc `toml:"struct"`
}

// LoadFile parses a layout description from TOML.
func LoadFile(path string) (File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if f.Target != nil {
		if err := f.Target.Validate(); err != nil {
			return File{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	for i, s := range f.Structs {
		if s.Name == "" {
			return File{}, fmt.Errorf("%s: struct %d: missing name", path, i)
		}
	}
	return f, nil
}

// LoadTarget parses a standalone target description from TOML.
func LoadTarget(path string) (Target, error) {
	var t Target
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Target{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Target{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
