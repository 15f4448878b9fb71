package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexlace/generator"
	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/level"
	"github.com/katalvlaran/hexlace/pathset"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestResolveParams_FlagsOverride(t *testing.T) {
	cli := cliFlags{
		seed: "0x2a", radius: 4, symmetry: "rotate3", colors: "green",
		set: map[string]bool{"seed": true, "radius": true, "symmetry": true, "colors": true},
	}
	p, err := resolveParams(quiet(), cli)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), p.Seed)
	assert.Equal(t, 4, p.Radius)
	assert.Equal(t, hexgrid.SymmetryRotate3, p.Symmetry)
	assert.Equal(t, pathset.NewColorSet(pathset.Green), p.Colors)
}

func TestResolveParams_MalformedSeedFallsBack(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	_, err := resolveParams(logger, cliFlags{seed: "forty-two", set: map[string]bool{"seed": true}})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "malformed seed")
}

func TestResolveParams_BadValues(t *testing.T) {
	_, err := resolveParams(quiet(), cliFlags{symmetry: "spiral", set: map[string]bool{"symmetry": true}})
	require.Error(t, err)
	_, err = resolveParams(quiet(), cliFlags{colors: "red,teal", set: map[string]bool{"colors": true}})
	require.Error(t, err)
}

func TestResolveParams_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\nradius: 2\n"), 0o600))

	p, err := resolveParams(quiet(), cliFlags{configPath: path, set: map[string]bool{}})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), p.Seed, "config seed is kept without -seed")
	assert.Equal(t, 2, p.Radius)
}

func TestRun_JSONAndYAML(t *testing.T) {
	ctx := context.Background()
	base := cliFlags{
		seed: "5", colors: "green",
		set: map[string]bool{"seed": true, "colors": true},
	}

	var js bytes.Buffer
	base.format = "json"
	require.NoError(t, run(ctx, quiet(), &js, base))
	var fromJSON level.Level
	require.NoError(t, json.Unmarshal(js.Bytes(), &fromJSON))
	assert.Len(t, fromJSON.Tiles, 37)
	assert.Equal(t, uint64(5), fromJSON.Seed)

	var ys bytes.Buffer
	base.format = "yaml"
	require.NoError(t, run(ctx, quiet(), &ys, base))
	var fromYAML level.Level
	require.NoError(t, yaml.Unmarshal(ys.Bytes(), &fromYAML))
	assert.Equal(t, fromJSON.ID, fromYAML.ID)
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	err := run(ctx, quiet(), io.Discard, cliFlags{format: "xml", set: map[string]bool{}})
	require.Error(t, err)

	err = run(ctx, quiet(), io.Discard, cliFlags{
		format: "json", radius: 2, symmetry: "dihedral6",
		set: map[string]bool{"radius": true, "symmetry": true},
	})
	require.ErrorIs(t, err, generator.ErrSymmetryInfeasible)
}

func TestRun_Blank(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), quiet(), &out, cliFlags{
		format: "json", blank: true, radius: 1, set: map[string]bool{"radius": true},
	}))
	var lv level.Level
	require.NoError(t, json.Unmarshal(out.Bytes(), &lv))
	_, _, blank := lv.Counts()
	assert.Equal(t, 7, blank)
}
