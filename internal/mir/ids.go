package mir

// Dense arena indices. Each ID type indexes its own append-only container and
// stays valid for the lifetime of the arena.

// FuncID identifies a function in the MIR arena.
type FuncID int32

// InstrID identifies an instruction in the MIR arena.
type InstrID int32

// StaticID identifies a module-scope static in the MIR arena.
type StaticID int32

// StrID identifies an interned C string in the MIR arena.
type StrID int32

// BlockID identifies a block in the code arena.
type BlockID int32

// OpID identifies an op slot local to one block.
type OpID int32

const (
	NoFuncID   FuncID   = -1
	NoInstrID  InstrID  = -1
	NoStaticID StaticID = -1
	NoStrID    StrID    = -1
	NoBlockID  BlockID  = -1
	NoOpID     OpID     = -1
)

// IsValid reports whether the ID refers to an allocated function.
func (id FuncID) IsValid() bool { return id >= 0 }

// IsValid reports whether the ID refers to an allocated instruction.
func (id InstrID) IsValid() bool { return id >= 0 }

// IsValid reports whether the ID refers to an allocated static.
func (id StaticID) IsValid() bool { return id >= 0 }

// IsValid reports whether the ID refers to an interned string.
func (id StrID) IsValid() bool { return id >= 0 }

// IsValid reports whether the ID refers to an allocated block.
func (id BlockID) IsValid() bool { return id >= 0 }

// IsValid reports whether the ID refers to an op slot.
func (id OpID) IsValid() bool { return id >= 0 }
