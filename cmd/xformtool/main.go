// xformtool is a CLI utility for composing geometric transform chains
// described in YAML and applying them to points, vectors, normals, and
// rays.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/radiant/internal/config"
	"github.com/Faultbox/radiant/internal/logger"
	"github.com/Faultbox/radiant/pkg/geom"
	"github.com/Faultbox/radiant/pkg/math"
)

func main() {
	config.ParseFlags()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	rest := args[1:]

	switch command {
	case "compose":
		cmdCompose(cfg, rest)
	case "apply":
		cmdApply(cfg, rest)
	case "export":
		cmdExport(rest)
	case "check":
		cmdCheck(rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`xformtool - transform chain utility

Usage:
  xformtool [flags] <command> [options]

Commands:
  compose <chain.yaml>            Print each chain's matrix and inverse-transpose
  apply <chain.yaml>              Apply each chain to the file's points/vectors/normals/rays
  export <chain.yaml> [out.yaml]  Write composed to_world matrices as YAML
  check <chain.yaml>              Report per-chain invertibility

Flags:
  -config <path>     Path to config file
  -debug             Enable debug logging
  -log-file <path>   Write logs to this file
  -precision <n>     Fractional digits in printed output
  -format <fmt>      Output format: table or yaml

Examples:
  xformtool compose scene.yaml
  xformtool -precision 3 apply scene.yaml
  xformtool export scene.yaml matrices.yaml`)
}

func loadChains(args []string, usage string) *ChainFile {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	cf, err := LoadChainFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Log.Debug("loaded chain file",
		zap.String("path", args[0]),
		zap.Int("transforms", len(cf.Transforms)))

	return cf
}

func buildAll(cf *ChainFile) map[string]geom.Projective {
	built := make(map[string]geom.Projective, len(cf.Transforms))
	for _, spec := range cf.Transforms {
		tr, err := spec.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		built[spec.Name] = tr
	}
	return built
}

func cmdCompose(cfg *config.Config, args []string) {
	cf := loadChains(args, "Usage: xformtool compose <chain.yaml>")
	built := buildAll(cf)

	if cfg.Output.Format == "yaml" {
		writeEntries(os.Stdout, cf, built)
		return
	}

	for _, spec := range cf.Transforms {
		tr := built[spec.Name]
		fmt.Printf("%s (%d steps)\n", spec.Name, len(spec.Steps))
		fmt.Println("  matrix:")
		printMat(cfg, tr.Matrix())
		fmt.Println("  inverse-transpose:")
		printMat(cfg, tr.InverseTranspose())
	}
}

func cmdApply(cfg *config.Config, args []string) {
	cf := loadChains(args, "Usage: xformtool apply <chain.yaml>")
	built := buildAll(cf)

	p := cfg.Output.Precision
	for _, spec := range cf.Transforms {
		tr := built[spec.Name]
		fmt.Printf("%s\n", spec.Name)

		for _, pt := range cf.Points {
			fmt.Printf("  point  %s -> %s\n", fmtVec(p, vec3(pt)), fmtVec(p, tr.ApplyToPoint(vec3(pt))))
		}
		for _, v := range cf.Vectors {
			fmt.Printf("  vector %s -> %s\n", fmtVec(p, vec3(v)), fmtVec(p, tr.ApplyToVector(vec3(v))))
		}
		for _, n := range cf.Normals {
			fmt.Printf("  normal %s -> %s\n", fmtVec(p, vec3(n)), fmtVec(p, tr.ApplyToNormal(vec3(n))))
		}
		for _, r := range cf.Rays {
			out := tr.ApplyToRay(geom.Ray{Origin: vec3(r.Origin), Dir: vec3(r.Dir)})
			fmt.Printf("  ray    o=%s d=%s -> o=%s d=%s\n",
				fmtVec(p, vec3(r.Origin)), fmtVec(p, vec3(r.Dir)),
				fmtVec(p, out.Origin), fmtVec(p, out.Dir))
		}
	}
}

// exportEntry is one named to_world matrix in the export output.
type exportEntry struct {
	Name             string        `yaml:"name"`
	ToWorld          [4][4]float32 `yaml:"to_world"`
	InverseTranspose [4][4]float32 `yaml:"inverse_transpose"`
}

func cmdExport(args []string) {
	cf := loadChains(args, "Usage: xformtool export <chain.yaml> [out.yaml]")
	built := buildAll(cf)

	if len(args) > 1 {
		f, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		writeEntries(f, cf, built)
		logger.Log.Info("exported transforms",
			zap.String("path", args[1]),
			zap.Int("count", len(cf.Transforms)))
		return
	}

	writeEntries(os.Stdout, cf, built)
}

// writeEntries marshals the composed to_world matrices as YAML in the
// file's declaration order.
func writeEntries(w io.Writer, cf *ChainFile, built map[string]geom.Projective) {
	entries := make([]exportEntry, 0, len(cf.Transforms))
	for _, spec := range cf.Transforms {
		tr := built[spec.Name]
		entries = append(entries, exportEntry{
			Name:             spec.Name,
			ToWorld:          matRows(tr.Matrix()),
			InverseTranspose: matRows(tr.InverseTranspose()),
		})
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	w.Write(data)
}

func cmdCheck(args []string) {
	cf := loadChains(args, "Usage: xformtool check <chain.yaml>")
	built := buildAll(cf)

	ok := true
	for _, spec := range cf.Transforms {
		tr := built[spec.Name]
		if tr.Invertible() {
			fmt.Printf("%s: invertible\n", spec.Name)
		} else {
			fmt.Printf("%s: SINGULAR (inverse-transpose is NaN)\n", spec.Name)
			ok = false
		}
	}

	if !ok {
		os.Exit(1)
	}
}

func fmtVec(precision int, v math.Vec3) string {
	return fmt.Sprintf("[% .*f % .*f % .*f]", precision, v.X, precision, v.Y, precision, v.Z)
}

func printMat(cfg *config.Config, m math.Mat4) {
	p := cfg.Output.Precision
	for _, row := range matRows(m) {
		fmt.Printf("    [% .*f % .*f % .*f % .*f]\n", p, row[0], p, row[1], p, row[2], p, row[3])
	}
}
