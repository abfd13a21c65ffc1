package layout

import (
	"fmt"

	"drift/internal/hir"
	"drift/internal/mir"
	"drift/internal/types"
)

// Engine computes memory layout for types against one ABI target. Struct
// fields that are themselves structs resolve through the MIR arena, so nested
// structs must be defined in dependency order.
type Engine struct {
	Target Target
	Code   *mir.MirCode
}

// New creates an engine for the given target.
func New(target Target, code *mir.MirCode) *Engine {
	return &Engine{Target: target, Code: code}
}

// SizeAlign returns the size and alignment of a type in bytes.
func (e *Engine) SizeAlign(t types.Type) (size, align int) {
	switch t.Kind {
	case types.KindVoid, types.KindTy, types.KindMod:
		// Compile-time only values occupy no storage.
		return 0, 1
	case types.KindBool:
		return 1, 1
	case types.KindInt, types.KindUint, types.KindFloat:
		return scalarBytes(int(t.Width) / 8)
	case types.KindPointer:
		return e.ptrSizeAlign()
	case types.KindStruct:
		s, ok := e.Code.Structs[t.Struct]
		if !ok {
			panic(fmt.Sprintf("layout: struct %d queried before its layout was computed", t.Struct))
		}
		return s.Layout.Size, s.Layout.Alignment
	default:
		panic(fmt.Sprintf("layout: no layout for %s type", t.Kind))
	}
}

// StructLayout places the fields in declaration order: each field is aligned
// to its own alignment, the struct to the maximum field alignment, and the
// stride is the size rounded up to that alignment.
func (e *Engine) StructLayout(fieldTys []types.Type) mir.StructLayout {
	offsets := make([]int, len(fieldTys))
	size := 0
	align := 1
	for i, ft := range fieldTys {
		fSize, fAlign := e.SizeAlign(ft)
		size = roundUp(size, fAlign)
		offsets[i] = size
		size += fSize
		align = maxInt(align, fAlign)
	}
	return mir.StructLayout{
		FieldOffsets: offsets,
		Alignment:    align,
		Size:         size,
		Stride:       roundUp(size, align),
	}
}

// DefineStruct computes the layout for the field types and records the
// descriptor in the MIR arena under the given struct ID.
func (e *Engine) DefineStruct(id hir.StructID, fieldTys []types.Type) mir.Struct {
	s := mir.Struct{
		FieldTys: fieldTys,
		Layout:   e.StructLayout(fieldTys),
	}
	e.Code.DefineStruct(id, s)
	return s
}

func (e *Engine) ptrSizeAlign() (int, int) {
	size := e.Target.PtrSize
	align := e.Target.PtrAlign
	if size <= 0 {
		size = 8
	}
	if align <= 0 {
		align = size
	}
	return size, align
}

func scalarBytes(size int) (int, int) {
	if size <= 0 {
		return 0, 1
	}
	return size, size
}

func roundUp(n, align int) int {
	if align <= 1 {
		return n
	}
	r := n % align
	if r == 0 {
		return n
	}
	return n + (align - r)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
