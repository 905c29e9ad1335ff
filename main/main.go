package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/phil-mansfield/tabulated"
	"github.com/phil-mansfield/tabulated/io"
	"github.com/phil-mansfield/tabulated/plot"
	"github.com/phil-mansfield/tabulated/registry"
)

var (
	verbose bool
	outDir  string
	slice   int
	noExec  bool
)

func main() {
	root := &cobra.Command{
		Use:           "tabfn",
		Short:         "Validate and inspect tabulated function definitions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "Log at debug level.",
	)

	checkCmd := &cobra.Command{
		Use:   "check config_file...",
		Short: "Load config files and report every invalid function.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}

	plotCmd := &cobra.Command{
		Use:   "plot config_file...",
		Short: "Plot the samples of every function to one PNG each.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory.")
	plotCmd.Flags().IntVar(
		&slice, "slice", 0, "First-axis index drawn for 3D functions.",
	)
	plotCmd.Flags().BoolVar(
		&noExec, "no-exec", false, "Build the figures but do not run python.",
	)

	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "Print an example configuration file to stdout.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(io.ExampleConfig)
		},
	}

	root.AddCommand(checkCmd, plotCmd, exampleCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// loadAll reads every config file into its own registry. Files which fail
// are still returned with whatever sections were valid.
func loadAll(log *zap.Logger, fnames []string) ([]*registry.Registry, error) {
	loader := io.NewLoader(log)
	regs := make([]*registry.Registry, len(fnames))

	var errs error
	for i, fname := range fnames {
		regs[i] = registry.New(registry.WithLogger(log))
		err := loader.ReadConfig(fname, regs[i])
		for _, e := range multierr.Errors(err) {
			log.Error("invalid tabulated function",
				zap.String("file", fname), zap.Error(e))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", fname, e))
		}
	}
	return regs, errs
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer log.Sync()

	regs, errs := loadAll(log, args)

	seen := registry.New(registry.WithLogger(log))
	for i, reg := range regs {
		for j := 0; j < reg.Len(); j++ {
			name, fn := reg.Name(j), reg.Get(j)
			fmt.Println(summary(args[i], name, fn))

			if dup, ok := seen.Dedup(fn); ok {
				log.Warn("duplicate tabulated function",
					zap.String("function", args[i]+":"+name),
					zap.String("duplicate_of", dup))
				continue
			}
			if _, err := seen.Add(args[i]+":"+name, fn); err != nil {
				return err
			}
		}
	}

	if errs != nil {
		n := len(multierr.Errors(errs))
		return fmt.Errorf("%d invalid function definition(s):\n%s",
			n, errs.Error())
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer log.Sync()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	regs, errs := loadAll(log, args)
	opts := plot.Options{Slice: slice}

	plot.Reset()
	figures := 0
	for i, reg := range regs {
		for j := 0; j < reg.Len(); j++ {
			name, fn := reg.Name(j), reg.Get(j)
			if err := plot.Function(name, fn, opts); err != nil {
				log.Warn("skipping plot",
					zap.String("function", name), zap.Error(err))
				continue
			}
			fname := filepath.Join(outDir, plotName(args[i], name))
			plot.Save(fname)
			figures++
			log.Info("queued plot",
				zap.String("function", name), zap.String("file", fname))
		}
	}

	if figures > 0 && !noExec {
		plot.Execute()
	}
	return errs
}

// plotName returns the PNG name for a function, prefixed by the base name of
// its config file so that functions from different files don't collide.
func plotName(file, name string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%s.png", base, name)
}

func summary(file, name string, fn tabulated.Function) string {
	g := fn.Grid()
	sizes := make([]string, g.Dim)
	for i := range sizes {
		sizes[i] = fmt.Sprint(g.Width[i])
	}
	return fmt.Sprintf(
		"%s:%s\t%s\t[%s]\tperiodic=%v\tfingerprint=%016x",
		file, name, fn.Kind(), strings.Join(sizes, "x"),
		fn.Periodic(), fn.Fingerprint(),
	)
}
