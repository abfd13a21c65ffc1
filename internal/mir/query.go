package mir

// BlockRef is the sealed set of block references accepted by MIRInstr: either
// a BlockID resolved against the arena, or an already borrowed *Block. The
// unexported method keeps the set closed; admitting a third form is an
// intentional API change.
type BlockRef interface {
	getBlock(c *Code) *Block
}

func (id BlockID) getBlock(c *Code) *Block { return c.Block(id) }

func (b *Block) getBlock(*Code) *Block { return b }

// MIRInstr returns the MIR instruction held by the op slot, or false if the
// slot holds some other op kind or does not exist.
func (c *Code) MIRInstr(ref BlockRef, op OpID) (*Instr, bool) {
	block := ref.getBlock(c)
	slot, ok := block.Op(op)
	if !ok {
		return nil, false
	}
	id, ok := slot.AsMirInstr()
	if !ok {
		return nil, false
	}
	return c.MIR.Instr(id), true
}

// NumParameters derives the parameter count of a function from its entry
// block: op 0 must be the void sentinel, and the parameters are the maximal
// run of Parameter instructions starting at op 1. The count is not stored
// anywhere; a malformed entry block is detected at the first query.
func (c *Code) NumParameters(f *Function) int {
	entry := f.Blocks[0]
	block := c.Block(entry)
	void, ok := c.MIRInstr(block, 0)
	if !ok || void.Kind != InstrVoid {
		panic("MIR: entry block does not begin with the void instruction")
	}
	numParameters := 0
	for i := 1; i < len(block.Ops); i++ {
		ins, ok := c.MIRInstr(block, OpID(i))
		if !ok || ins.Kind != InstrParameter {
			break
		}
		numParameters++
	}
	return numParameters
}
