package main

import (
	"github.com/charmbracelet/log"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/internal/config"
	"github.com/nozzle/mt19937/internal/statefile"
)

// SourceFlags select the generator a command draws from.
type SourceFlags struct {
	Seed   *uint32  `xor:"source" help:"Seed with a single 32-bit value (init_genrand)"`
	Key    []uint32 `xor:"source" help:"Seed with a key of 32-bit words (init_by_array), comma separated"`
	Resume string   `xor:"source" type:"existingfile" help:"Resume from a saved state file"`
	Skip   int      `help:"Discard this many words before output"`
	Save   string   `type:"path" help:"Save the generator state to this file afterwards"`
}

func (f *SourceFlags) stream() config.StreamConfig {
	s := config.StreamConfig{
		Name:      "cli",
		StateFile: f.Resume,
		Skip:      f.Skip,
	}
	if f.Seed != nil {
		seed := int64(*f.Seed)
		s.Seed = &seed
	}
	if f.Key != nil {
		key := make([]int64, len(f.Key))
		for i, w := range f.Key {
			key[i] = int64(w)
		}
		s.Key = &key
	}
	return s
}

// open builds the selected generator. An unseeded generator is used when
// no source is given.
func (f *SourceFlags) open(logger *log.Logger) (*mt19937.MT19937, error) {
	s := f.stream()
	g, err := s.Open("")
	if err != nil {
		return nil, err
	}
	logger.Debug("Opened generator", "index", g.Index(), "skip", f.Skip)
	return g, nil
}

// finish persists the generator when --save was given.
func (f *SourceFlags) finish(g *mt19937.MT19937, logger *log.Logger) error {
	if f.Save == "" {
		return nil
	}
	if err := statefile.Save(f.Save, g); err != nil {
		return err
	}
	logger.Info("Saved state", "path", f.Save, "index", g.Index())
	return nil
}
