package mir

import "fmt"

// BlockState tracks how far a block has come through construction. States
// advance monotonically Created -> Started -> Ended; the ledger is consulted
// only while a function is being built.
type BlockState uint8

const (
	// BlockCreated is the implicit state of any block not yet touched.
	BlockCreated BlockState = iota
	// BlockStarted marks a block currently accepting instructions.
	BlockStarted
	// BlockEnded marks a block whose terminator region is complete.
	BlockEnded
)

func (s BlockState) String() string {
	switch s {
	case BlockCreated:
		return "Created"
	case BlockStarted:
		return "Started"
	case BlockEnded:
		return "Ended"
	default:
		return fmt.Sprintf("BlockState(%d)", s)
	}
}

func (m *MirCode) blockState(block BlockID) BlockState {
	// Created is represented by absence.
	return m.blockStates[block]
}

// StartBlock marks the block as accepting instructions. Starting an
// already-started block is permitted and has no effect beyond re-entry;
// starting an ended block is an emitter bug.
func (m *MirCode) StartBlock(block BlockID) {
	if m.blockState(block) == BlockEnded {
		panic("MIR: tried to start an ended block")
	}
	if m.blockStates == nil {
		m.blockStates = make(map[BlockID]BlockState)
	}
	m.blockStates[block] = BlockStarted
}

// EndBlock marks the block as complete. Ending a block in any state other
// than Started is an emitter bug.
func (m *MirCode) EndBlock(block BlockID) {
	if state := m.blockState(block); state != BlockStarted {
		panic(fmt.Sprintf("MIR: tried to end a block in the %s state", state))
	}
	m.blockStates[block] = BlockEnded
}

// CheckAllBlocksEnded verifies that every block listed by the function was
// ended. Called once when lowering of the function finishes.
func (m *MirCode) CheckAllBlocksEnded(f *Function) {
	for _, block := range f.Blocks {
		if m.blockState(block) != BlockEnded {
			panic(fmt.Sprintf("MIR: block %d was not ended", block))
		}
	}
}
