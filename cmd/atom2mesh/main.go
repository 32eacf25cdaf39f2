// SPDX-License-Identifier: MIT

// Command atom2mesh converts an XYZ atomic structure into an OBJ triangle
// mesh whose faces span the 3- to 7-membered rings of the bond graph.
//
//	atom2mesh -in input.xyz -out output.obj -mn 1.0 -mx 1.7
//
// Settings resolve as built-in defaults, then the optional -config TOML
// file, then explicit flags. Exit status is 0 on success, 1 when the
// structure cannot be bonded (overlapping atoms or a fifth bond) and 2 on
// configuration, input or output errors.
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/plan-systems/klog"
	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/atommesh"
	"github.com/katalvlaran/atommesh/bond"
	"github.com/katalvlaran/atommesh/config"
	"github.com/katalvlaran/atommesh/mesh"
	"github.com/katalvlaran/atommesh/xyz"
)

const cmdName = "atom2mesh"

// Exit statuses.
const (
	exitOK       = 0
	exitGeometry = 1
	exitUsage    = 2
)

func main() {
	code := run(os.Args[1:], os.Stdout)
	klog.Flush()
	os.Exit(code)
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout io.Writer) int {
	cfg, printConfig, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		klog.Errorf("%s: %v", cmdName, err)
		return exitUsage
	}
	if printConfig {
		if err := config.Write(stdout, cfg); err != nil {
			klog.Errorf("%s: %v", cmdName, err)
			return exitUsage
		}
		return exitOK
	}

	s, err := xyz.ReadFile(cfg.Input)
	if err != nil {
		klog.Errorf("%s: %v", cmdName, err)
		return exitUsage
	}
	klog.Infof("Read in %d atoms", s.Len())

	opts := []atommesh.Option{
		atommesh.WithBondBounds(cfg.Bond.MinLength, cfg.Bond.MaxLength),
		atommesh.WithScale(cfg.Mesh.Scale),
	}
	if cfg.Mesh.Heptagons {
		opts = append(opts, atommesh.WithHeptagons())
	}
	res, err := atommesh.Run(s, opts...)
	if err != nil {
		klog.Errorf("%s: %v", cmdName, err)
		if errors.Is(err, bond.ErrOverlap) || errors.Is(err, bond.ErrOverflow) {
			return exitGeometry
		}
		return exitUsage
	}
	report(res.Stats)

	if err := writeFile(cfg.Output, func(w io.Writer) error {
		return mesh.WriteOBJ(w, res.Mesh, cfg.Mesh.Name)
	}); err != nil {
		klog.Errorf("%s: %v", cmdName, err)
		return exitUsage
	}
	if cfg.Mesh.Preview != "" {
		if err := writeFile(cfg.Mesh.Preview, func(w io.Writer) error {
			return mesh.RenderPNG(w, res.Mesh, mesh.DefaultRenderOptions())
		}); err != nil {
			klog.Errorf("%s: %v", cmdName, err)
			return exitUsage
		}
	}

	return exitOK
}

// parseFlags resolves defaults < TOML file < explicit flags.
func parseFlags(args []string) (config.Config, bool, error) {
	cfg := config.Default()

	fset := flag.NewFlagSet(cmdName, flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var (
		path        string
		printConfig bool
	)
	fset.StringVar(&path, "config", "", "TOML configuration file")
	fset.BoolVar(&printConfig, "print-config", false, "print the effective configuration as TOML and exit")
	config.BindFlags(fset, &cfg)

	if err := fset.Parse(args); err != nil {
		return cfg, false, err
	}
	if path == "" {
		return cfg, printConfig, cfg.Validate()
	}

	// Remember what was given explicitly, load the file over everything,
	// then put the explicit values back on top.
	explicit := map[string]string{}
	fset.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := config.Load(path, &cfg); err != nil {
		return cfg, false, err
	}
	for name, val := range explicit {
		if err := fset.Set(name, val); err != nil {
			return cfg, false, pkgerrors.Wrapf(err, "reapply -%s", name)
		}
	}

	return cfg, printConfig, cfg.Validate()
}

// report logs the stage counts.
func report(st atommesh.Stats) {
	klog.Infof("No. bonds: %d", st.Bonds)
	for size := 2; size <= 5; size++ {
		klog.Infof("No. %d-body: %d", size, st.Walks[size])
	}
	for size := 3; size <= 7; size++ {
		klog.Infof("No. %d-fold rings: %d", size, st.Rings[size])
	}
	klog.Infof("Total triangles: %d", st.Triangles)
	if st.Fragments > 1 {
		klog.Infof("Fragments: %d", st.Fragments)
	}
}

// writeFile creates path and hands it to emit.
func writeFile(path string, emit func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = pkgerrors.Wrapf(cerr, "close %s", path)
		}
	}()
	if err = emit(f); err != nil {
		return pkgerrors.Wrapf(err, "write %s", path)
	}

	return nil
}
