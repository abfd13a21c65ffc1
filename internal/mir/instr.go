package mir

import (
	"drift/internal/hir"
	"drift/internal/types"
)

// InstrKind enumerates instruction kinds in MIR.
type InstrKind uint8

const (
	// InstrVoid is the sentinel placed at op 0 of every entry block.
	InstrVoid InstrKind = iota
	// InstrConst materializes a compile-time constant.
	InstrConst
	// InstrAlloca reserves stack storage and yields a pointer to it.
	InstrAlloca
	// InstrLogicalNot negates a boolean value.
	InstrLogicalNot
	// InstrCall is a direct call to a known function.
	InstrCall
	// InstrIntrinsic invokes a named builtin.
	InstrIntrinsic
	// InstrReinterpret reinterprets the bits of a value as another type.
	InstrReinterpret
	// InstrTruncate discards the high bits of an integer.
	InstrTruncate
	// InstrSignExtend widens an integer preserving its sign.
	InstrSignExtend
	// InstrZeroExtend widens an integer filling with zeros.
	InstrZeroExtend
	// InstrFloatCast widens or narrows a float.
	InstrFloatCast
	// InstrFloatToInt converts a float to an integer.
	InstrFloatToInt
	// InstrIntToFloat converts an integer to a float.
	InstrIntToFloat
	// InstrLoad dereferences a pointer.
	InstrLoad
	// InstrStore writes a value through a pointer.
	InstrStore
	// InstrAddressOfStatic yields a pointer to a named static.
	InstrAddressOfStatic
	// InstrPointer constructs a pointer type instance from a pointee type.
	InstrPointer
	// InstrStruct builds a runtime aggregate from field values.
	InstrStruct
	// InstrStructLit builds an aggregate literal treated as a value.
	InstrStructLit
	// InstrDirectFieldAccess projects a field out of a by-value aggregate.
	InstrDirectFieldAccess
	// InstrIndirectFieldAccess computes a pointer to a field.
	InstrIndirectFieldAccess
	// InstrRet returns a value from the function. Terminator.
	InstrRet
	// InstrBr branches unconditionally. Terminator.
	InstrBr
	// InstrCondBr branches on a boolean condition. Terminator.
	InstrCondBr
	// InstrParameter is a formal parameter slot. Only valid in the entry
	// block, in the contiguous run right after the void instruction.
	InstrParameter
)

// Instr represents a MIR instruction.
type Instr struct {
	Kind InstrKind

	Const       Const
	Alloca      AllocaInstr
	LogicalNot  LogicalNotInstr
	Call        CallInstr
	Intrinsic   IntrinsicInstr
	Conv        ConvInstr
	Load        LoadInstr
	Store       StoreInstr
	Static      AddressOfStaticInstr
	Pointer     PointerInstr
	Struct      StructInstr
	FieldAccess FieldAccessInstr
	Ret         RetInstr
	Br          BrInstr
	CondBr      CondBrInstr
	Parameter   ParameterInstr
}

// IsTerminator reports whether the instruction transfers control out of its
// block.
func (i *Instr) IsTerminator() bool {
	switch i.Kind {
	case InstrRet, InstrBr, InstrCondBr:
		return true
	default:
		return false
	}
}

// AllocaInstr reserves storage of the given type.
type AllocaInstr struct {
	Ty types.Type
}

// LogicalNotInstr negates a boolean operand.
type LogicalNotInstr struct {
	Value InstrID
}

// CallInstr calls a known function.
type CallInstr struct {
	Args []InstrID
	Func FuncID
}

// IntrinsicInstr invokes a builtin identified by its tag.
type IntrinsicInstr struct {
	Args []InstrID
	Ty   types.Type
	Intr hir.Intrinsic
}

// ConvInstr is the shared payload of the seven conversion kinds. The kind of
// cast is never inferred from operand types; it is the instruction kind.
type ConvInstr struct {
	Value InstrID
	Ty    types.Type
}

// LoadInstr dereferences a pointer operand.
type LoadInstr struct {
	Pointer InstrID
}

// StoreInstr writes a value through a pointer.
type StoreInstr struct {
	Location InstrID
	Value    InstrID
}

// AddressOfStaticInstr yields a pointer to a static.
type AddressOfStaticInstr struct {
	Static StaticID
}

// PointerInstr constructs a pointer type instance.
type PointerInstr struct {
	Pointee InstrID
	IsMut   bool
}

// StructInstr is the shared payload of InstrStruct and InstrStructLit.
type StructInstr struct {
	Fields []InstrID
	ID     hir.StructID
}

// FieldAccessInstr is the shared payload of the direct and indirect field
// access kinds. Index bounds are the emitter's responsibility.
type FieldAccessInstr struct {
	Val   InstrID
	Index int
}

// RetInstr returns a value.
type RetInstr struct {
	Value InstrID
}

// BrInstr branches unconditionally.
type BrInstr struct {
	Target BlockID
}

// CondBrInstr branches on a condition.
type CondBrInstr struct {
	Condition InstrID
	TrueBB    BlockID
	FalseBB   BlockID
}

// ParameterInstr is a formal parameter slot.
type ParameterInstr struct {
	Ty types.Type
}
