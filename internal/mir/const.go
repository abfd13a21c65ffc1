package mir

import (
	"fmt"

	"drift/internal/hir"
	"drift/internal/types"
)

// ConstKind distinguishes constant kinds.
type ConstKind uint8

const (
	// ConstInt represents an integer constant.
	ConstInt ConstKind = iota
	// ConstFloat represents a float constant.
	ConstFloat
	// ConstStr represents an interned string constant.
	ConstStr
	// ConstBool represents a boolean constant.
	ConstBool
	// ConstTy represents a compile-time type value.
	ConstTy
	// ConstMod represents a module-scope reference.
	ConstMod
	// ConstStructLit represents a struct literal built from constants.
	ConstStructLit
)

// Const represents a compile-time value. Every constant carries enough payload
// to compute its own type locally; see Ty.
type Const struct {
	Kind ConstKind

	// Type is the carried type for ConstInt, ConstFloat and ConstStr, and the
	// embedded type payload for ConstTy.
	Type types.Type

	IntValue   uint64 // raw bits of the integer literal
	FloatValue float64
	Str        StrID
	BoolValue  bool
	Mod        hir.ModScopeID
	Fields     []Const // for ConstStructLit, in field order
	Struct     hir.StructID
}

// Ty returns the type of the constant. The result depends only on the
// constant's own payload.
func (c Const) Ty() types.Type {
	switch c.Kind {
	case ConstInt, ConstFloat, ConstStr:
		return c.Type
	case ConstBool:
		return types.Bool()
	case ConstTy:
		return types.Ty()
	case ConstMod:
		return types.Mod()
	case ConstStructLit:
		return types.MakeStruct(c.Struct)
	default:
		panic(fmt.Sprintf("mir: constant with unknown kind %d", c.Kind))
	}
}
