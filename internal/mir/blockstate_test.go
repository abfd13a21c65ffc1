package mir_test

import (
	"strings"
	"testing"

	"drift/internal/mir"
	"drift/internal/types"
)

func mustPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("expected a string panic, got %T: %v", r, r)
		}
		if !strings.Contains(msg, contains) {
			t.Errorf("panic %q should contain %q", msg, contains)
		}
	}()
	fn()
}

func TestBlockStateString(t *testing.T) {
	states := map[mir.BlockState]string{
		mir.BlockCreated: "Created",
		mir.BlockStarted: "Started",
		mir.BlockEnded:   "Ended",
	}
	for s, want := range states {
		if got := s.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestStartBlockIsIdempotent(t *testing.T) {
	c := mir.NewCode()
	b := c.NewBlock()

	c.MIR.StartBlock(b)
	// Re-entry into a started block is legal.
	c.MIR.StartBlock(b)
	c.MIR.EndBlock(b)
}

func TestStartEndedBlockPanics(t *testing.T) {
	c := mir.NewCode()
	b := c.NewBlock()
	c.MIR.StartBlock(b)
	c.MIR.EndBlock(b)

	mustPanic(t, "start an ended block", func() {
		c.MIR.StartBlock(b)
	})
}

func TestEndBlockRequiresStarted(t *testing.T) {
	t.Run("double end names the Ended state", func(t *testing.T) {
		c := mir.NewCode()
		b := c.NewBlock()
		c.MIR.StartBlock(b)
		c.MIR.EndBlock(b)

		mustPanic(t, "Ended", func() {
			c.MIR.EndBlock(b)
		})
	})

	t.Run("end without start names the Created state", func(t *testing.T) {
		c := mir.NewCode()
		b := c.NewBlock()

		mustPanic(t, "Created", func() {
			c.MIR.EndBlock(b)
		})
	})
}

func TestCheckAllBlocksEnded(t *testing.T) {
	t.Run("passes when every block ended", func(t *testing.T) {
		c := mir.NewCode()
		b0 := c.NewBlock()
		b1 := c.NewBlock()
		for _, b := range []mir.BlockID{b0, b1} {
			c.MIR.StartBlock(b)
			c.MIR.EndBlock(b)
		}
		f := mir.Function{RetTy: types.Void(), Blocks: []mir.BlockID{b0, b1}}
		c.MIR.CheckAllBlocksEnded(&f)
	})

	t.Run("panics naming the unfinished block", func(t *testing.T) {
		c := mir.NewCode()
		b0 := c.NewBlock()
		b1 := c.NewBlock()
		c.MIR.StartBlock(b0)
		c.MIR.EndBlock(b0)
		c.MIR.StartBlock(b1)
		// b1 never ended.
		f := mir.Function{RetTy: types.Void(), Blocks: []mir.BlockID{b0, b1}}

		mustPanic(t, "block 1 was not ended", func() {
			c.MIR.CheckAllBlocksEnded(&f)
		})
	})

	t.Run("panics for a block never touched", func(t *testing.T) {
		c := mir.NewCode()
		b0 := c.NewBlock()
		f := mir.Function{RetTy: types.Void(), Blocks: []mir.BlockID{b0}}

		mustPanic(t, "was not ended", func() {
			c.MIR.CheckAllBlocksEnded(&f)
		})
	})
}

// The observable state sequence of any block is a prefix of
// Created -> Started -> Ended.
func TestLedgerMonotonicity(t *testing.T) {
	c := mir.NewCode()
	b := c.NewBlock()

	// Created: ending now must fail.
	mustPanic(t, "Created", func() { c.MIR.EndBlock(b) })

	// Started: starting again stays Started, ending succeeds once.
	c.MIR.StartBlock(b)
	c.MIR.StartBlock(b)
	c.MIR.EndBlock(b)

	// Ended: no transition leaves it.
	mustPanic(t, "start an ended block", func() { c.MIR.StartBlock(b) })
	mustPanic(t, "Ended", func() { c.MIR.EndBlock(b) })
}
