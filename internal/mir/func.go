package mir

import (
	"drift/internal/source"
	"drift/internal/types"
)

// Function is the per-function record: an optional symbolic name, a return
// type and an ordered list of block IDs. A function owns its block IDs; a
// block ID appears in at most one function.
type Function struct {
	// Name is NoStringID for anonymous functions.
	Name  source.StringID
	RetTy types.Type
	// Blocks lists the function's blocks. Index 0 is the entry block.
	Blocks []BlockID
}

// Entry returns the entry block ID, or NoBlockID for a function with no
// blocks yet.
func (f *Function) Entry() BlockID {
	if len(f.Blocks) == 0 {
		return NoBlockID
	}
	return f.Blocks[0]
}
