package mir_test

import (
	"strings"
	"testing"

	"drift/internal/mir"
	"drift/internal/source"
	"drift/internal/types"
)

func i32Const(v uint64) mir.Instr {
	return mir.Instr{
		Kind:  mir.InstrConst,
		Const: mir.Const{Kind: mir.ConstInt, IntValue: v, Type: types.MakeInt(types.Width32)},
	}
}

// buildEntry starts a block, emits the given instructions and ends it.
func buildEntry(c *mir.Code, block mir.BlockID, instrs ...mir.Instr) {
	c.MIR.StartBlock(block)
	for _, ins := range instrs {
		c.PushInstr(block, ins)
	}
	c.MIR.EndBlock(block)
}

func TestEmptyFunction(t *testing.T) {
	c := mir.NewCode()
	names := source.NewInterner()

	entry := c.NewBlock()
	c.MIR.StartBlock(entry)
	c.PushInstr(entry, mir.Instr{Kind: mir.InstrVoid})
	v := c.PushInstr(entry, i32Const(0))
	c.PushInstr(entry, mir.Instr{Kind: mir.InstrRet, Ret: mir.RetInstr{Value: v}})
	c.MIR.EndBlock(entry)

	f := mir.Function{
		Name:   names.Intern("main"),
		RetTy:  types.MakeInt(types.Width32),
		Blocks: []mir.BlockID{entry},
	}
	id := c.MIR.NewFunction(f)

	c.MIR.CheckAllBlocksEnded(c.MIR.Function(id))

	if n := c.NumParameters(c.MIR.Function(id)); n != 0 {
		t.Errorf("NumParameters = %d, want 0", n)
	}
}

func TestNumParameters(t *testing.T) {
	i32 := types.MakeInt(types.Width32)
	param := func(ty types.Type) mir.Instr {
		return mir.Instr{Kind: mir.InstrParameter, Parameter: mir.ParameterInstr{Ty: ty}}
	}

	t.Run("parameters counted", func(t *testing.T) {
		c := mir.NewCode()
		entry := c.NewBlock()
		buildEntry(c, entry,
			mir.Instr{Kind: mir.InstrVoid},
			param(i32),
			param(types.Bool()),
			i32Const(7),
			mir.Instr{Kind: mir.InstrRet, Ret: mir.RetInstr{Value: 3}},
		)
		f := mir.Function{RetTy: i32, Blocks: []mir.BlockID{entry}}
		if n := c.NumParameters(&f); n != 2 {
			t.Errorf("NumParameters = %d, want 2", n)
		}
	})

	t.Run("parameter outside the prefix is not counted", func(t *testing.T) {
		c := mir.NewCode()
		entry := c.NewBlock()
		buildEntry(c, entry,
			mir.Instr{Kind: mir.InstrVoid},
			param(i32),
			mir.Instr{Kind: mir.InstrConst, Const: mir.Const{Kind: mir.ConstBool, BoolValue: true}},
			param(i32),
			mir.Instr{Kind: mir.InstrRet, Ret: mir.RetInstr{Value: 2}},
		)
		f := mir.Function{RetTy: i32, Blocks: []mir.BlockID{entry}}
		if n := c.NumParameters(&f); n != 1 {
			t.Errorf("NumParameters = %d, want 1", n)
		}
	})

	t.Run("missing void sentinel panics", func(t *testing.T) {
		c := mir.NewCode()
		entry := c.NewBlock()
		buildEntry(c, entry,
			param(i32),
			mir.Instr{Kind: mir.InstrRet, Ret: mir.RetInstr{Value: 0}},
		)
		f := mir.Function{RetTy: i32, Blocks: []mir.BlockID{entry}}

		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("NumParameters should panic when op 0 is not void")
			}
			if msg, ok := r.(string); !ok || !strings.Contains(msg, "void") {
				t.Errorf("panic message should mention the void invariant, got %v", r)
			}
		}()
		c.NumParameters(&f)
	})
}

func TestMIRInstrBlockForms(t *testing.T) {
	c := mir.NewCode()
	entry := c.NewBlock()
	c.MIR.StartBlock(entry)
	c.PushInstr(entry, mir.Instr{Kind: mir.InstrVoid})
	c.PushInstr(entry, i32Const(9))
	c.MIR.EndBlock(entry)

	// Lookup through the block ID.
	byID, ok := c.MIRInstr(entry, 1)
	if !ok || byID.Kind != mir.InstrConst {
		t.Fatalf("lookup by block ID failed: ok=%v", ok)
	}

	// Lookup through an already borrowed block.
	byPtr, ok := c.MIRInstr(c.Block(entry), 1)
	if !ok || byPtr != byID {
		t.Errorf("lookup by borrowed block should resolve to the same instruction")
	}
}

func TestMIRInstrNonMIRSlot(t *testing.T) {
	c := mir.NewCode()
	b := c.NewBlock()
	c.MIR.StartBlock(b)
	c.PushOp(b, mir.Op{Kind: mir.OpHirItem, Hir: 4})
	c.MIR.EndBlock(b)

	if ins, ok := c.MIRInstr(b, 0); ok || ins != nil {
		t.Errorf("op slot holding a HIR item should report no MIR instruction")
	}
	if _, ok := c.MIRInstr(b, 10); ok {
		t.Errorf("out-of-range op slot should report no MIR instruction")
	}
}

func TestIdentifierStability(t *testing.T) {
	c := mir.NewCode()
	m := c.MIR

	var instrIDs []mir.InstrID
	for i := 0; i < 100; i++ {
		instrIDs = append(instrIDs, m.NewInstr(i32Const(uint64(i))))
	}
	var strIDs []mir.StrID
	for _, s := range []string{"a", "b", "a", "c"} {
		strIDs = append(strIDs, m.InternString(s))
	}
	staticID := m.NewStatic(mir.Const{Kind: mir.ConstBool, BoolValue: true})
	funcID := m.NewFunction(mir.Function{RetTy: types.Void()})

	// Keep appending and re-check every earlier ID.
	for i := 0; i < 50; i++ {
		m.NewInstr(mir.Instr{Kind: mir.InstrVoid})
		m.InternString("filler")
	}

	for i, id := range instrIDs {
		ins := m.Instr(id)
		if ins == nil || ins.Const.IntValue != uint64(i) {
			t.Fatalf("instr %d no longer resolves to its record", id)
		}
	}
	// The string pool does not deduplicate; each intern gets its own slot.
	if strIDs[0] == strIDs[2] {
		t.Errorf("string pool should not be required to deduplicate")
	}
	if got := string(m.CString(strIDs[1])); got != "b\x00" {
		t.Errorf("interned string should be null-terminated, got %q", got)
	}
	if m.Static(staticID) == nil || m.Function(funcID) == nil {
		t.Errorf("static/function IDs should stay resolvable")
	}
}

func TestPushIntoUnallocatedBlockPanics(t *testing.T) {
	c := mir.NewCode()
	defer func() {
		if r := recover(); r == nil {
			t.Error("PushOp into an unallocated block should panic")
		}
	}()
	c.PushOp(mir.BlockID(5), mir.Op{Kind: mir.OpHirItem})
}
