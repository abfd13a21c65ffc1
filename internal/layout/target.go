package layout

import "fmt"

// Target describes the ABI target triple and its pointer properties.
type Target struct {
	Triple   string `toml:"triple"`
	PtrSize  int    `toml:"ptr-size"`  // bytes
	PtrAlign int    `toml:"ptr-align"` // bytes
}

func X86_64LinuxGNU() Target {
	return Target{
		Triple:   "x86_64-linux-gnu",
		PtrSize:  8,
		PtrAlign: 8,
	}
}

func Aarch64LinuxGNU() Target {
	return Target{
		Triple:   "aarch64-linux-gnu",
		PtrSize:  8,
		PtrAlign: 8,
	}
}

// Validate checks that the target is usable for layout computation.
func (t Target) Validate() error {
	if t.PtrSize <= 0 {
		return fmt.Errorf("target %q: ptr-size must be positive, got %d", t.Triple, t.PtrSize)
	}
	if t.PtrAlign <= 0 {
		return fmt.Errorf("target %q: ptr-align must be positive, got %d", t.Triple, t.PtrAlign)
	}
	return nil
}
