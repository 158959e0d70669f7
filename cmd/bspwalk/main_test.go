package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setFlags(t *testing.T, level string, sweep int, dump bool) {
	oldLevel, oldSweep, oldDump := *flagLevel, *flagSweep, *flagDump
	oldX, oldY := *flagX, *flagY
	t.Cleanup(func() {
		*flagLevel, *flagSweep, *flagDump = oldLevel, oldSweep, oldDump
		*flagX, *flagY = oldX, oldY
	})
	*flagLevel, *flagSweep, *flagDump = level, sweep, dump
	*flagX, *flagY = 5, 5
}

func TestRun(t *testing.T) {

	setFlags(t, "../../testdata/tworooms.gltf", 0, false)

	out := &bytes.Buffer{}
	require.NoError(t, run(out))
	assert.Equal(t, "RoomA > RoomB (2/2 rendered)\n", out.String())

}

func TestRunSweep(t *testing.T) {

	setFlags(t, "../../testdata/tworooms.gltf", 4, false)

	out := &bytes.Buffer{}
	require.NoError(t, run(out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.Contains(t, line, "RoomA")
	}

}

func TestRunDumpConfig(t *testing.T) {

	setFlags(t, "", 0, true)

	out := &bytes.Buffer{}
	require.NoError(t, run(out))
	assert.Contains(t, out.String(), "max_draw_segs = 1024")

}

func TestRunErrors(t *testing.T) {

	setFlags(t, "", 0, false)
	assert.Error(t, run(&bytes.Buffer{}))

	setFlags(t, "../../testdata/missing.gltf", 0, false)
	assert.Error(t, run(&bytes.Buffer{}))

}
