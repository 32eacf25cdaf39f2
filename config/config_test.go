// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atommesh/config"
)

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atom2mesh.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "input.xyz", cfg.Input)
	assert.Equal(t, "output.obj", cfg.Output)
	assert.Equal(t, 1.0, cfg.Bond.MinLength)
	assert.Equal(t, 1.7, cfg.Bond.MaxLength)
	assert.Equal(t, 0.1, cfg.Mesh.Scale)
	assert.Equal(t, "gmesh", cfg.Mesh.Name)
	assert.False(t, cfg.Mesh.Heptagons)
	assert.Empty(t, cfg.Mesh.Preview)
	require.NoError(t, cfg.Validate())
}

func TestLoad_OverlaysOnlyPresentKeys(t *testing.T) {
	path := writeTOML(t, `
input = "graphene.xyz"

[bond]
max_length = 1.6

[mesh]
scale = 1
heptagons = true
`)
	cfg := config.Default()
	require.NoError(t, config.Load(path, &cfg))

	assert.Equal(t, "graphene.xyz", cfg.Input)
	assert.Equal(t, "output.obj", cfg.Output)
	assert.Equal(t, 1.0, cfg.Bond.MinLength)
	assert.Equal(t, 1.6, cfg.Bond.MaxLength)
	assert.Equal(t, 1.0, cfg.Mesh.Scale, "integer literal accepted")
	assert.True(t, cfg.Mesh.Heptagons)
	assert.Equal(t, "gmesh", cfg.Mesh.Name)
}

func TestLoad_Errors(t *testing.T) {
	cfg := config.Default()

	err := config.Load(filepath.Join(t.TempDir(), "nope.toml"), &cfg)
	require.ErrorIs(t, err, os.ErrNotExist)

	err = config.Load(writeTOML(t, "input = "), &cfg)
	require.Error(t, err)

	err = config.Load(writeTOML(t, "[bond]\nmin_length = \"short\"\n"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bond.min_length")

	err = config.Load(writeTOML(t, "[mesh]\nheptagons = 1\n"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mesh.heptagons")

	err = config.Load(writeTOML(t, "output = 3\n"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
}

func TestWrite_LoadRoundTrip(t *testing.T) {
	want := config.Default()
	want.Input = "in.xyz"
	want.Bond.MaxLength = 1.65
	want.Mesh.Preview = "preview.png"
	want.Mesh.Heptagons = true

	var buf bytes.Buffer
	require.NoError(t, config.Write(&buf, want))

	got := config.Config{}
	require.NoError(t, config.Load(writeTOML(t, buf.String()), &got))
	assert.Equal(t, want, got)
}

func TestBindFlags(t *testing.T) {
	cfg := config.Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	config.BindFlags(fs, &cfg)

	require.NoError(t, fs.Parse([]string{"-mn", "0.9", "-mx", "1.8", "-in", "a.xyz", "-heptagons", "-png", "p.png"}))
	assert.Equal(t, 0.9, cfg.Bond.MinLength)
	assert.Equal(t, 1.8, cfg.Bond.MaxLength)
	assert.Equal(t, "a.xyz", cfg.Input)
	assert.True(t, cfg.Mesh.Heptagons)
	assert.Equal(t, "p.png", cfg.Mesh.Preview)
	assert.Equal(t, "output.obj", cfg.Output)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"zero min", func(c *config.Config) { c.Bond.MinLength = 0 }, config.ErrInvalidBounds},
		{"min above max", func(c *config.Config) { c.Bond.MinLength = 2 }, config.ErrInvalidBounds},
		{"min equals max", func(c *config.Config) { c.Bond.MaxLength = 1 }, config.ErrInvalidBounds},
		{"zero scale", func(c *config.Config) { c.Mesh.Scale = 0 }, config.ErrInvalidScale},
		{"negative scale", func(c *config.Config) { c.Mesh.Scale = -1 }, config.ErrInvalidScale},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}
