package io

import (
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/tabulated/registry"
)

// Loader turns configuration files into registered functions.
type Loader struct {
	log *zap.Logger
}

// NewLoader returns a Loader which logs to log. A nil logger discards
// everything.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// ReadConfig parses fname and adds every function it defines to reg in name
// order. Every invalid section is reported, not just the first one; the
// returned error can be split with multierr.Errors. Valid sections are still
// added when others fail.
func (l *Loader) ReadConfig(fname string, reg *registry.Registry) error {
	fc := FunctionsConfig{}
	if err := gcfg.ReadFileInto(&fc, fname); err != nil {
		return err
	}
	return l.load(&fc, filepath.Dir(fname), reg)
}

// ReadConfigString is the same as ReadConfig, but parses str. Relative
// ValuesFile paths are resolved against dir.
func (l *Loader) ReadConfigString(
	str, dir string, reg *registry.Registry,
) error {
	fc := FunctionsConfig{}
	if err := gcfg.ReadStringInto(&fc, str); err != nil {
		return err
	}
	return l.load(&fc, dir, reg)
}

func (l *Loader) load(
	fc *FunctionsConfig, dir string, reg *registry.Registry,
) error {
	secs := fc.sections()
	sort.Slice(secs, func(i, j int) bool {
		if secs[i].name != secs[j].name {
			return secs[i].name < secs[j].name
		}
		return secs[i].kind < secs[j].kind
	})

	var errs error
	for _, sec := range secs {
		if err := l.loadSection(sec, dir, reg); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func (l *Loader) loadSection(
	sec section, dir string, reg *registry.Registry,
) error {
	if err := sec.samples.CheckInit(sec.kind, sec.name); err != nil {
		return err
	}

	vals, err := sec.samples.Samples(dir)
	if err != nil {
		return fmt.Errorf("%s '%s': %w", sec.kind, sec.name, err)
	}
	fn, err := sec.build(vals)
	if err != nil {
		return fmt.Errorf("%s '%s': %w", sec.kind, sec.name, err)
	}
	if _, err := reg.Add(sec.name, fn); err != nil {
		return fmt.Errorf("%s '%s': %w", sec.kind, sec.name, err)
	}

	l.log.Debug("loaded tabulated function",
		zap.String("name", sec.name),
		zap.String("section", sec.kind),
		zap.Int("samples", len(vals)),
	)
	return nil
}

// ReadConfig loads fname into a new registry without logging.
func ReadConfig(fname string) (*registry.Registry, error) {
	reg := registry.New()
	err := NewLoader(nil).ReadConfig(fname, reg)
	return reg, err
}
