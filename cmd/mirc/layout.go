package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"drift/internal/hir"
	"drift/internal/layout"
	"drift/internal/mir"
	"drift/internal/types"
)

var (
	layoutTargetPath string
	layoutTriple     string
	layoutJobs       int
)

var layoutCmd = &cobra.Command{
	Use:   "layout <file.toml> [more files...]",
	Short: "Compute struct layouts from TOML descriptions",
	Long: `Each input file declares structs with typed fields. mirc places every
struct for the selected ABI target and reports field offsets, size,
alignment and stride. Files are processed in parallel, one MIR arena per
file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&layoutTargetPath, "target", "", "TOML file describing the ABI target")
	layoutCmd.Flags().StringVar(&layoutTriple, "triple", "x86_64-linux-gnu", "builtin target triple")
	layoutCmd.Flags().IntVar(&layoutJobs, "jobs", runtime.NumCPU(), "number of files to process in parallel")
}

func runLayout(cmd *cobra.Command, args []string) error {
	base, err := baseTarget()
	if err != nil {
		return err
	}
	colorize := useColor(cmd, os.Stdout)

	jobs := layoutJobs
	if jobs < 1 {
		jobs = 1
	}

	reports := make([]string, len(args))
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(args)))

	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			text, err := layoutFile(path, base, colorize)
			if err != nil {
				return err
			}
			reports[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range reports {
		fmt.Print(r)
	}
	return nil
}

func baseTarget() (layout.Target, error) {
	if layoutTargetPath != "" {
		return layout.LoadTarget(layoutTargetPath)
	}
	switch layoutTriple {
	case "x86_64-linux-gnu":
		return layout.X86_64LinuxGNU(), nil
	case "aarch64-linux-gnu":
		return layout.Aarch64LinuxGNU(), nil
	default:
		return layout.Target{}, fmt.Errorf("unknown triple %q (use --target for a custom one)", layoutTriple)
	}
}

// layoutFile places every struct in one description file inside a fresh MIR
// arena and renders the report.
func layoutFile(path string, base layout.Target, colorize bool) (string, error) {
	desc, err := layout.LoadFile(path)
	if err != nil {
		return "", err
	}
	target := base
	if desc.Target != nil {
		target = *desc.Target
	}

	code := mir.NewCode()
	eng := layout.New(target, code.MIR)

	nameColor := color.New(color.FgCyan, color.Bold)
	if !colorize {
		nameColor.DisableColor()
	}

	ids := make(map[string]hir.StructID, len(desc.Structs))
	var buf strings.Builder
	for i, s := range desc.Structs {
		id := hir.StructID(i)
		fieldTys := make([]types.Type, len(s.Fields))
		for j, fs := range s.Fields {
			t, err := types.Parse(fs, func(name string) (hir.StructID, bool) {
				sid, ok := ids[name]
				return sid, ok
			})
			if err != nil {
				return "", fmt.Errorf("%s: struct %s, field %d: %w", path, s.Name, j, err)
			}
			fieldTys[j] = t
		}
		st := eng.DefineStruct(id, fieldTys)
		ids[s.Name] = id

		fmt.Fprintf(&buf, "%s (%s):\n", nameColor.Sprint(s.Name), target.Triple)
		for j := range st.FieldTys {
			fmt.Fprintf(&buf, "  #%d %-12s offset=%d\n", j, st.FieldTys[j], st.Layout.FieldOffsets[j])
		}
		fmt.Fprintf(&buf, "  size=%d align=%d stride=%d\n", st.Layout.Size, st.Layout.Alignment, st.Layout.Stride)
	}
	return buf.String(), nil
}
