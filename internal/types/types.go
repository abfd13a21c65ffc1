package types

import (
	"fmt"

	"drift/internal/hir"
)

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	// KindTy is the type of compile-time type values.
	KindTy
	// KindMod is the type of module-scope references.
	KindMod
	KindInt
	KindUint
	KindFloat
	KindPointer
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindTy:
		return "ty"
	case KindMod:
		return "mod"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindPointer:
		return "pointer"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width captures the precision of integers/floats.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// Type is a compact value descriptor for any supported type. Types are plain
// values; compare them with Equal rather than ==, pointer types carry their
// pointee by reference.
type Type struct {
	Kind    Kind
	Width   Width        // for numeric primitives
	Mutable bool         // for pointers
	Elem    *Type        // for pointers
	Struct  hir.StructID // for structs
}

// Descriptor helpers ---------------------------------------------------------

// Void describes the empty type.
func Void() Type { return Type{Kind: KindVoid} }

// Bool describes the boolean type.
func Bool() Type { return Type{Kind: KindBool} }

// Ty describes the type of types.
func Ty() Type { return Type{Kind: KindTy} }

// Mod describes the type of module references.
func Mod() Type { return Type{Kind: KindMod} }

// MakeInt describes a signed integer of the given width.
func MakeInt(width Width) Type {
	return Type{Kind: KindInt, Width: width}
}

// MakeUint describes an unsigned integer type.
func MakeUint(width Width) Type {
	return Type{Kind: KindUint, Width: width}
}

// MakeFloat describes a floating-point type.
func MakeFloat(width Width) Type {
	return Type{Kind: KindFloat, Width: width}
}

// MakePointer describes *T or *mut T depending on the mutable flag.
func MakePointer(elem Type, mutable bool) Type {
	return Type{Kind: KindPointer, Elem: &elem, Mutable: mutable}
}

// MakeStruct describes the nominal struct with the given ID.
func MakeStruct(id hir.StructID) Type {
	return Type{Kind: KindStruct, Struct: id}
}

// Equal reports structural equality, following pointee types.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindInt, KindUint, KindFloat:
		return t.Width == o.Width
	case KindPointer:
		if t.Mutable != o.Mutable {
			return false
		}
		if t.Elem == nil || o.Elem == nil {
			return t.Elem == o.Elem
		}
		return t.Elem.Equal(*o.Elem)
	case KindStruct:
		return t.Struct == o.Struct
	default:
		return true
	}
}

func (t Type) String() string {
	switch t.Kind {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindTy:
		return "ty"
	case KindMod:
		return "mod"
	case KindInt:
		return fmt.Sprintf("i%d", t.Width)
	case KindUint:
		return fmt.Sprintf("u%d", t.Width)
	case KindFloat:
		return fmt.Sprintf("f%d", t.Width)
	case KindPointer:
		elem := "?"
		if t.Elem != nil {
			elem = t.Elem.String()
		}
		if t.Mutable {
			return fmt.Sprintf("*mut %s", elem)
		}
		return fmt.Sprintf("*%s", elem)
	case KindStruct:
		return fmt.Sprintf("struct#%d", t.Struct)
	default:
		return "invalid"
	}
}
