package mir

import (
	"fmt"

	"fortio.org/safecast"

	"drift/internal/hir"
)

// MirCode is the MIR arena: five append-only containers plus the transient
// block-state ledger used only during construction. Records are created
// during lowering and never mutated or removed afterwards; IDs are stable for
// the lifetime of the arena.
type MirCode struct {
	// Strings holds interned C-compatible strings: null-terminated, and the
	// emitter must not intern contents with interior nulls. Duplicate
	// contents are not deduplicated here.
	Strings   [][]byte
	Functions []Function
	Statics   []Const
	Structs   map[hir.StructID]Struct
	Instrs    []Instr

	blockStates map[BlockID]BlockState
}

// NewMirCode creates an empty MIR arena.
func NewMirCode() *MirCode {
	return &MirCode{
		Structs:     make(map[hir.StructID]Struct),
		blockStates: make(map[BlockID]BlockState),
	}
}

func arenaIndex[ID ~int32](what string, n int) ID {
	value, err := safecast.Conv[int32](n)
	if err != nil {
		panic(fmt.Errorf("%s arena overflow: %w", what, err))
	}
	return ID(value)
}

// InternString appends the string as a null-terminated byte sequence and
// returns its ID.
func (m *MirCode) InternString(s string) StrID {
	id := arenaIndex[StrID]("string", len(m.Strings))
	buf := make([]byte, 0, len(s)+1)
	buf = append(buf, s...)
	buf = append(buf, 0)
	m.Strings = append(m.Strings, buf)
	return id
}

// NewFunction appends a function record and returns its ID.
func (m *MirCode) NewFunction(f Function) FuncID {
	id := arenaIndex[FuncID]("function", len(m.Functions))
	m.Functions = append(m.Functions, f)
	return id
}

// NewStatic appends a static and returns its ID.
func (m *MirCode) NewStatic(c Const) StaticID {
	id := arenaIndex[StaticID]("static", len(m.Statics))
	m.Statics = append(m.Statics, c)
	return id
}

// NewInstr appends an instruction and returns its ID.
func (m *MirCode) NewInstr(ins Instr) InstrID {
	id := arenaIndex[InstrID]("instruction", len(m.Instrs))
	m.Instrs = append(m.Instrs, ins)
	return id
}

// DefineStruct records the descriptor for a struct ID.
func (m *MirCode) DefineStruct(id hir.StructID, s Struct) {
	m.Structs[id] = s
}

// Function returns the function record, or nil for an invalid ID.
func (m *MirCode) Function(id FuncID) *Function {
	if !id.IsValid() || int(id) >= len(m.Functions) {
		return nil
	}
	return &m.Functions[id]
}

// Instr returns the instruction, or nil for an invalid ID.
func (m *MirCode) Instr(id InstrID) *Instr {
	if !id.IsValid() || int(id) >= len(m.Instrs) {
		return nil
	}
	return &m.Instrs[id]
}

// Static returns the static constant, or nil for an invalid ID.
func (m *MirCode) Static(id StaticID) *Const {
	if !id.IsValid() || int(id) >= len(m.Statics) {
		return nil
	}
	return &m.Statics[id]
}

// CString returns the interned bytes including the trailing null, or nil for
// an invalid ID.
func (m *MirCode) CString(id StrID) []byte {
	if !id.IsValid() || int(id) >= len(m.Strings) {
		return nil
	}
	return m.Strings[id]
}
