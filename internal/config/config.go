// Package config loads stream profiles: HCL files naming generator
// sources and how many samples to draw from each.
package config

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/internal/statefile"
)

const (
	DefaultSamples = 100000
	DefaultBuckets = 64
)

// Profile is the top level of a profile file.
type Profile struct {
	Samples int            `hcl:"samples,optional"`
	Buckets int            `hcl:"buckets,optional"`
	Workers int            `hcl:"workers,optional"`
	Streams []StreamConfig `hcl:"stream,block"`

	// Dir is the directory of the profile file; relative state files are
	// resolved against it.
	Dir string
}

// StreamConfig describes where a generator comes from. At most one of
// Seed, Key and StateFile may be set; none means an unseeded generator.
type StreamConfig struct {
	Name      string   `hcl:"name,label"`
	Seed      *int64   `hcl:"seed,optional"`
	Key       *[]int64 `hcl:"key,optional"`
	StateFile string   `hcl:"state_file,optional"`
	Skip      int      `hcl:"skip,optional"`
}

// Load parses and validates a profile file.
func Load(filename string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var p Profile
	diags = gohcl.DecodeBody(file.Body, nil, &p)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	p.Dir = filepath.Dir(filename)
	if p.Samples == 0 {
		p.Samples = DefaultSamples
	}
	if p.Buckets == 0 {
		p.Buckets = DefaultBuckets
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &p, nil
}

// Validate checks the profile for values the generator cannot accept.
func (p *Profile) Validate() error {
	if p.Samples < 1 {
		return fmt.Errorf("samples must be positive, got %d", p.Samples)
	}
	if p.Buckets < 2 {
		return fmt.Errorf("buckets must be at least 2, got %d", p.Buckets)
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", p.Workers)
	}
	if len(p.Streams) == 0 {
		return fmt.Errorf("at least one stream must be configured")
	}

	seen := make(map[string]bool, len(p.Streams))
	for _, s := range p.Streams {
		if seen[s.Name] {
			return fmt.Errorf("stream %s: defined more than once", s.Name)
		}
		seen[s.Name] = true
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single stream.
func (s *StreamConfig) Validate() error {
	set := 0
	if s.Seed != nil {
		set++
		if *s.Seed < 0 || *s.Seed > math.MaxUint32 {
			return fmt.Errorf("stream %s: seed %d does not fit in 32 bits", s.Name, *s.Seed)
		}
	}
	if s.Key != nil {
		set++
		for i, w := range *s.Key {
			if w < 0 || w > math.MaxUint32 {
				return fmt.Errorf("stream %s: key word %d (%d) does not fit in 32 bits", s.Name, i, w)
			}
		}
	}
	if s.StateFile != "" {
		set++
	}
	if set > 1 {
		return fmt.Errorf("stream %s: only one of seed, key and state_file may be set", s.Name)
	}
	if s.Skip < 0 {
		return fmt.Errorf("stream %s: skip must not be negative, got %d", s.Name, s.Skip)
	}
	return nil
}

// Open builds the stream's generator and advances it past Skip words.
// Relative state files are resolved against dir.
func (s *StreamConfig) Open(dir string) (*mt19937.MT19937, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var g *mt19937.MT19937
	switch {
	case s.Seed != nil:
		g = mt19937.NewWithSeed(uint32(*s.Seed))
	case s.Key != nil:
		key := make([]uint32, len(*s.Key))
		for i, w := range *s.Key {
			key[i] = uint32(w)
		}
		g = mt19937.NewFromKeys(key)
	case s.StateFile != "":
		path := s.StateFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		var err error
		g, err = statefile.Load(path)
		if err != nil {
			return nil, fmt.Errorf("stream %s: %w", s.Name, err)
		}
	default:
		g = mt19937.New()
	}

	for range s.Skip {
		g.Uint32()
	}
	return g, nil
}
