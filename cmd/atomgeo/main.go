// atomgeo - geometry report for molecules and triangle meshes.
//
// Input is chosen by extension:
//
//	.yaml, .yml - molecule description (atoms with positions)
//	.glb, .gltf - triangle mesh
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/atomgeo/pkg/atom"
	"github.com/taigrr/atomgeo/pkg/logging"
	"github.com/taigrr/atomgeo/pkg/models"
)

var (
	configPath = flag.String("config", "", "Path to YAML config file")
	logLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error, silent)")
	flat       = flag.Bool("flat", false, "Use flat instead of smooth mesh normals")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "atomgeo - geometry report for molecules and meshes\n\n")
		fmt.Fprintf(os.Stderr, "Usage: atomgeo [options] <molecule.yaml|model.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := LoadConfigFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(level)
	logging.SetDefault(logger)

	err = run(flag.Arg(0), cfg, os.Stdout)
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides config values with flags given on the command line.
func applyFlags(cfg *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = *logLevel
		case "flat":
			cfg.Mesh.SmoothNormals = !*flat
		}
	})
}

func run(path string, cfg Config, w io.Writer) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open molecule: %w", err)
		}
		defer f.Close()

		m, err := atom.LoadYAML(f)
		if err != nil {
			return err
		}
		return reportMolecule(w, m)

	case ".glb", ".gltf":
		loader := models.NewGLTFLoader()
		loader.CalculateNormals = cfg.Mesh.CalculateNormals
		loader.SmoothNormals = cfg.Mesh.SmoothNormals

		mesh, err := loader.Load(path)
		if err != nil {
			return err
		}
		return reportMesh(w, mesh)

	default:
		return fmt.Errorf("unsupported file type %q", ext)
	}
}
