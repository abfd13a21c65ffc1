package mir

import "drift/internal/hir"

// OpKind distinguishes what occupies a block's op slot.
type OpKind uint8

const (
	// OpHirItem is an op slot still owned by the front end.
	OpHirItem OpKind = iota
	// OpMirInstr is an op slot referencing a lowered MIR instruction.
	OpMirInstr
)

// Op is one operation slot in a block.
type Op struct {
	Kind OpKind

	Hir hir.ItemID
	MIR InstrID
}

// AsMirInstr returns the referenced MIR instruction ID if the slot holds one.
func (o Op) AsMirInstr() (InstrID, bool) {
	if o.Kind != OpMirInstr {
		return NoInstrID, false
	}
	return o.MIR, true
}

// Block is an ordered sequence of op slots. Op IDs are block-local indices
// into Ops.
type Block struct {
	ID  BlockID
	Ops []Op
}

// Op returns the op slot, or a zero Op and false for an out-of-range ID.
func (b *Block) Op(id OpID) (Op, bool) {
	if b == nil || !id.IsValid() || int(id) >= len(b.Ops) {
		return Op{}, false
	}
	return b.Ops[id], true
}

// Code is the shared code arena. It owns all blocks and embeds the MIR arena
// their op slots reference, mirroring the front end's view where block and op
// IDs are allocated outside the MIR layer proper.
type Code struct {
	Blocks []Block
	MIR    *MirCode
}

// NewCode creates an empty code arena with a fresh MIR arena.
func NewCode() *Code {
	return &Code{MIR: NewMirCode()}
}

// NewBlock allocates an empty block and returns its ID.
func (c *Code) NewBlock() BlockID {
	id := arenaIndex[BlockID]("block", len(c.Blocks))
	c.Blocks = append(c.Blocks, Block{ID: id})
	return id
}

// Block returns the block, or nil for an invalid ID.
func (c *Code) Block(id BlockID) *Block {
	if !id.IsValid() || int(id) >= len(c.Blocks) {
		return nil
	}
	return &c.Blocks[id]
}

// PushOp appends an op slot to the block and returns its block-local ID.
func (c *Code) PushOp(block BlockID, op Op) OpID {
	b := c.Block(block)
	if b == nil {
		panic("MIR: push into an unallocated block")
	}
	id := arenaIndex[OpID]("op", len(b.Ops))
	b.Ops = append(b.Ops, op)
	return id
}

// PushInstr appends the instruction to the MIR arena and references it from
// a new op slot at the end of the block. This is the single emission path
// the front end drives between StartBlock and EndBlock.
func (c *Code) PushInstr(block BlockID, ins Instr) InstrID {
	id := c.MIR.NewInstr(ins)
	c.PushOp(block, Op{Kind: OpMirInstr, MIR: id})
	return id
}
