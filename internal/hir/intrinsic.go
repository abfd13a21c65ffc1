package hir

import "fmt"

// Intrinsic enumerates builtin operations that the backend lowers directly
// instead of emitting an ordinary call.
type Intrinsic uint8

const (
	IntrinsicInvalid Intrinsic = iota
	IntrinsicAdd
	IntrinsicSub
	IntrinsicMult
	IntrinsicDiv
	IntrinsicMod
	IntrinsicEq
	IntrinsicNotEq
	IntrinsicLess
	IntrinsicLessOrEq
	IntrinsicGreater
	IntrinsicGreaterOrEq
	IntrinsicNeg
	IntrinsicBitwiseAnd
	IntrinsicBitwiseOr
	IntrinsicBitwiseXor
	IntrinsicMalloc
	IntrinsicFree
	IntrinsicMemcpy
	IntrinsicPrint
	IntrinsicPanic
)

func (i Intrinsic) String() string {
	switch i {
	case IntrinsicAdd:
		return "add"
	case IntrinsicSub:
		return "sub"
	case IntrinsicMult:
		return "mult"
	case IntrinsicDiv:
		return "div"
	case IntrinsicMod:
		return "mod"
	case IntrinsicEq:
		return "eq"
	case IntrinsicNotEq:
		return "not_eq"
	case IntrinsicLess:
		return "less"
	case IntrinsicLessOrEq:
		return "less_or_eq"
	case IntrinsicGreater:
		return "greater"
	case IntrinsicGreaterOrEq:
		return "greater_or_eq"
	case IntrinsicNeg:
		return "neg"
	case IntrinsicBitwiseAnd:
		return "bitwise_and"
	case IntrinsicBitwiseOr:
		return "bitwise_or"
	case IntrinsicBitwiseXor:
		return "bitwise_xor"
	case IntrinsicMalloc:
		return "malloc"
	case IntrinsicFree:
		return "free"
	case IntrinsicMemcpy:
		return "memcpy"
	case IntrinsicPrint:
		return "print"
	case IntrinsicPanic:
		return "panic"
	default:
		return fmt.Sprintf("Intrinsic(%d)", i)
	}
}
