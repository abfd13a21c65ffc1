package types

import (
	"fmt"
	"strings"

	"drift/internal/hir"
)

// Parse reads a type from its textual form: primitives ("void", "bool",
// "i32", "u8", "f64", ...), pointers ("*T", "*mut T") and named structs,
// which are resolved through the supplied callback. Used for tool input, not
// for source programs.
func Parse(s string, resolve func(name string) (hir.StructID, bool)) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Type{}, fmt.Errorf("empty type")
	}

	if rest, ok := strings.CutPrefix(s, "*mut "); ok {
		elem, err := Parse(rest, resolve)
		if err != nil {
			return Type{}, err
		}
		return MakePointer(elem, true), nil
	}
	if rest, ok := strings.CutPrefix(s, "*"); ok {
		elem, err := Parse(rest, resolve)
		if err != nil {
			return Type{}, err
		}
		return MakePointer(elem, false), nil
	}

	switch s {
	case "void":
		return Void(), nil
	case "bool":
		return Bool(), nil
	case "ty":
		return Ty(), nil
	case "mod":
		return Mod(), nil
	case "i8":
		return MakeInt(Width8), nil
	case "i16":
		return MakeInt(Width16), nil
	case "i32":
		return MakeInt(Width32), nil
	case "i64":
		return MakeInt(Width64), nil
	case "u8":
		return MakeUint(Width8), nil
	case "u16":
		return MakeUint(Width16), nil
	case "u32":
		return MakeUint(Width32), nil
	case "u64":
		return MakeUint(Width64), nil
	case "f32":
		return MakeFloat(Width32), nil
	case "f64":
		return MakeFloat(Width64), nil
	}

	if resolve != nil {
		if id, ok := resolve(s); ok {
			return MakeStruct(id), nil
		}
	}
	return Type{}, fmt.Errorf("unknown type %q", s)
}
