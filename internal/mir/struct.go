package mir

import "drift/internal/types"

// Struct is the per-struct descriptor: ordered field types plus the computed
// layout. The front end populates both before MIR consumers read them; they
// are immutable afterwards.
type Struct struct {
	FieldTys []types.Type
	Layout   StructLayout
}

// StructLayout is the byte-level placement of a struct for one ABI target.
type StructLayout struct {
	FieldOffsets []int
	Alignment    int
	Size         int
	// Stride is the size rounded up to the alignment.
	Stride int
}
