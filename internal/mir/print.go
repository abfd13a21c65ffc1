package mir

import (
	"fmt"
	"io"
	"strings"

	"drift/internal/source"
)

// DumpModule writes a human-readable representation of the arena's functions,
// statics and structs. Intended for debugging and golden output, not for
// machine consumption.
func DumpModule(w io.Writer, c *Code, names *source.Interner) error {
	if w == nil || c == nil || c.MIR == nil {
		return nil
	}
	m := c.MIR

	if len(m.Statics) > 0 {
		fmt.Fprintf(w, "statics=%d\n", len(m.Statics))
		for i := range m.Statics {
			fmt.Fprintf(w, "  S%d: %s\n", i, formatConst(&m.Statics[i]))
		}
	}

	if len(m.Structs) > 0 {
		fmt.Fprintf(w, "structs=%d\n", len(m.Structs))
	}

	fmt.Fprintf(w, "funcs=%d\n", len(m.Functions))
	for i := range m.Functions {
		if err := dumpFunc(w, c, &m.Functions[i], names); err != nil {
			return err
		}
	}
	return nil
}

func dumpFunc(w io.Writer, c *Code, f *Function, names *source.Interner) error {
	name := "_"
	if f.Name.IsValid() && names != nil {
		if s, ok := names.Lookup(f.Name); ok {
			name = s
		}
	}
	fmt.Fprintf(w, "\nfn %s -> %s:\n", name, f.RetTy)

	for _, blockID := range f.Blocks {
		bb := c.Block(blockID)
		if bb == nil {
			fmt.Fprintf(w, "  bb%d: <missing>\n", blockID)
			continue
		}
		fmt.Fprintf(w, "  bb%d:\n", bb.ID)
		for i := range bb.Ops {
			op := bb.Ops[i]
			id, ok := op.AsMirInstr()
			if !ok {
				fmt.Fprintf(w, "    hir item#%d\n", op.Hir)
				continue
			}
			fmt.Fprintf(w, "    %%%d = %s\n", id, formatInstr(c.MIR.Instr(id)))
		}
	}
	return nil
}

func formatInstr(ins *Instr) string {
	if ins == nil {
		return "<instr?>"
	}
	switch ins.Kind {
	case InstrVoid:
		return "void"
	case InstrConst:
		return formatConst(&ins.Const)
	case InstrAlloca:
		return fmt.Sprintf("alloca %s", ins.Alloca.Ty)
	case InstrLogicalNot:
		return fmt.Sprintf("not %%%d", ins.LogicalNot.Value)
	case InstrCall:
		return fmt.Sprintf("call fn#%d(%s)", ins.Call.Func, formatArgs(ins.Call.Args))
	case InstrIntrinsic:
		return fmt.Sprintf("intrinsic %s(%s) : %s", ins.Intrinsic.Intr, formatArgs(ins.Intrinsic.Args), ins.Intrinsic.Ty)
	case InstrReinterpret:
		return formatConv("reinterpret", ins)
	case InstrTruncate:
		return formatConv("truncate", ins)
	case InstrSignExtend:
		return formatConv("sign_extend", ins)
	case InstrZeroExtend:
		return formatConv("zero_extend", ins)
	case InstrFloatCast:
		return formatConv("float_cast", ins)
	case InstrFloatToInt:
		return formatConv("float_to_int", ins)
	case InstrIntToFloat:
		return formatConv("int_to_float", ins)
	case InstrLoad:
		return fmt.Sprintf("load %%%d", ins.Load.Pointer)
	case InstrStore:
		return fmt.Sprintf("store %%%d -> %%%d", ins.Store.Value, ins.Store.Location)
	case InstrAddressOfStatic:
		return fmt.Sprintf("addr_of S%d", ins.Static.Static)
	case InstrPointer:
		if ins.Pointer.IsMut {
			return fmt.Sprintf("pointer mut %%%d", ins.Pointer.Pointee)
		}
		return fmt.Sprintf("pointer %%%d", ins.Pointer.Pointee)
	case InstrStruct:
		return fmt.Sprintf("struct struct#%d {%s}", ins.Struct.ID, formatArgs(ins.Struct.Fields))
	case InstrStructLit:
		return fmt.Sprintf("struct_lit struct#%d {%s}", ins.Struct.ID, formatArgs(ins.Struct.Fields))
	case InstrDirectFieldAccess:
		return fmt.Sprintf("field %%%d.#%d", ins.FieldAccess.Val, ins.FieldAccess.Index)
	case InstrIndirectFieldAccess:
		return fmt.Sprintf("field_ptr %%%d.#%d", ins.FieldAccess.Val, ins.FieldAccess.Index)
	case InstrRet:
		return fmt.Sprintf("ret %%%d", ins.Ret.Value)
	case InstrBr:
		return fmt.Sprintf("br bb%d", ins.Br.Target)
	case InstrCondBr:
		return fmt.Sprintf("cond_br %%%d ? bb%d : bb%d", ins.CondBr.Condition, ins.CondBr.TrueBB, ins.CondBr.FalseBB)
	case InstrParameter:
		return fmt.Sprintf("parameter %s", ins.Parameter.Ty)
	default:
		return "<instr?>"
	}
}

func formatConv(verb string, ins *Instr) string {
	return fmt.Sprintf("%s %%%d to %s", verb, ins.Conv.Value, ins.Conv.Ty)
}

func formatArgs(args []InstrID) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%%%d", a)
	}
	return strings.Join(parts, ", ")
}

func formatConst(c *Const) string {
	if c == nil {
		return "const ?"
	}
	switch c.Kind {
	case ConstInt:
		return fmt.Sprintf("const %d:%s", c.IntValue, c.Type)
	case ConstFloat:
		return fmt.Sprintf("const %g:%s", c.FloatValue, c.Type)
	case ConstStr:
		return fmt.Sprintf("const str#%d:%s", c.Str, c.Type)
	case ConstBool:
		if c.BoolValue {
			return "const true"
		}
		return "const false"
	case ConstTy:
		return fmt.Sprintf("const ty %s", c.Type)
	case ConstMod:
		return fmt.Sprintf("const mod#%d", c.Mod)
	case ConstStructLit:
		parts := make([]string, len(c.Fields))
		for i := range c.Fields {
			parts[i] = formatConst(&c.Fields[i])
		}
		return fmt.Sprintf("const struct#%d {%s}", c.Struct, strings.Join(parts, ", "))
	default:
		return "const ?"
	}
}
