package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/internal/statefile"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, `
samples = 5000

stream "default" {}

stream "py12345" {
  key = [12345]
}

stream "empty" {
  key = []
}

stream "scalar" {
  seed = 42
  skip = 3
}
`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, p.Samples)
	assert.Equal(t, DefaultBuckets, p.Buckets)
	assert.Equal(t, filepath.Dir(path), p.Dir)
	require.Len(t, p.Streams, 4)

	names := make([]string, len(p.Streams))
	for i, s := range p.Streams {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"default", "py12345", "empty", "scalar"}, names)

	g, err := p.Streams[0].Open(p.Dir)
	require.NoError(t, err)
	assert.Equal(t, mt19937.N+1, g.Index())

	g, err = p.Streams[1].Open(p.Dir)
	require.NoError(t, err)
	assert.Equal(t, 0.416619872545341163316834354191087186336517333984375, g.Float64())

	require.NotNil(t, p.Streams[2].Key)
	assert.Empty(t, *p.Streams[2].Key)
	g, err = p.Streams[2].Open(p.Dir)
	require.NoError(t, err)
	assert.Equal(t, mt19937.NewFromKeys(nil).State(), g.State())

	g, err = p.Streams[3].Open(p.Dir)
	require.NoError(t, err)
	ref := mt19937.NewWithSeed(42)
	for range 3 {
		ref.Uint32()
	}
	assert.Equal(t, ref.Uint32(), g.Uint32())
}

func TestLoadDefaults(t *testing.T) {
	p, err := Load(writeProfile(t, `stream "only" {}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultSamples, p.Samples)
	assert.Equal(t, DefaultBuckets, p.Buckets)
	assert.Zero(t, p.Workers)
}

func TestStateFileRelativeToProfile(t *testing.T) {
	path := writeProfile(t, `
stream "resumed" {
  state_file = "gen.state"
}
`)
	saved := mt19937.NewWithSeed(7)
	for range 10 {
		saved.Uint32()
	}
	require.NoError(t, statefile.Save(filepath.Join(filepath.Dir(path), "gen.state"), saved))

	p, err := Load(path)
	require.NoError(t, err)
	g, err := p.Streams[0].Open(p.Dir)
	require.NoError(t, err)
	assert.Equal(t, saved.Uint32(), g.Uint32())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "syntax",
			body:    `stream "x" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown attribute",
			body:    `colour = "red"`,
			wantErr: "failed to decode HCL",
		},
		{
			name:    "no streams",
			body:    `samples = 10`,
			wantErr: "at least one stream",
		},
		{
			name:    "duplicate",
			body:    "stream \"a\" {}\nstream \"a\" {}",
			wantErr: "defined more than once",
		},
		{
			name:    "two sources",
			body:    "stream \"a\" {\n  seed = 1\n  key = [2]\n}",
			wantErr: "only one of seed, key and state_file",
		},
		{
			name:    "seed too large",
			body:    "stream \"a\" {\n  seed = 4294967296\n}",
			wantErr: "does not fit in 32 bits",
		},
		{
			name:    "negative key word",
			body:    "stream \"a\" {\n  key = [1, -1]\n}",
			wantErr: "key word 1",
		},
		{
			name:    "one bucket",
			body:    "buckets = 1\nstream \"a\" {}",
			wantErr: "buckets must be at least 2",
		},
		{
			name:    "negative skip",
			body:    "stream \"a\" {\n  skip = -1\n}",
			wantErr: "skip must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeProfile(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOpenMissingStateFile(t *testing.T) {
	s := StreamConfig{Name: "gone", StateFile: "missing.state"}
	_, err := s.Open(t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "stream gone")
}

func TestValidateRejectsZeroSamples(t *testing.T) {
	p := &Profile{
		Buckets: DefaultBuckets,
		Streams: []StreamConfig{{Name: "default"}},
	}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "samples must be positive, got 0")

	p.Samples = 1
	assert.NoError(t, p.Validate())
}
