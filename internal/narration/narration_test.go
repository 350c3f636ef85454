package narration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarratorLevels(t *testing.T) {
	rec := NewRecorder()
	n := New(rec)

	n.Infof("creating device %s", "PLC_1")
	n.Successf("plugged %s", "A1")
	n.Warnf("rename failed")
	n.Failf("could not plug %s", "A2")

	lines := rec.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, Line{Level: LevelInfo, Text: "creating device PLC_1"}, lines[0])
	assert.Equal(t, LevelSuccess, lines[1].Level)
	assert.Equal(t, LevelWarning, lines[2].Level)
	assert.Equal(t, "could not plug A2", lines[3].Text)
	assert.Equal(t, 1, rec.Count(LevelFailure))
}

func TestNewNilSinkDiscards(t *testing.T) {
	n := New(nil)
	assert.NotPanics(t, func() { n.Infof("nothing") })
}

func TestMultiFansOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	n := New(Multi(a, nil, b))
	n.Infof("hello")

	assert.Len(t, a.Lines(), 1)
	assert.Len(t, b.Lines(), 1)
}

func TestLineString(t *testing.T) {
	tests := []struct {
		level  Level
		prefix string
	}{
		{LevelInfo, "[..]"},
		{LevelSuccess, "[ok]"},
		{LevelWarning, "[warn]"},
		{LevelFailure, "[fail]"},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			s := Line{Level: tt.level, Text: "msg"}.String()
			assert.True(t, strings.HasPrefix(s, tt.prefix), s)
			assert.True(t, strings.HasSuffix(s, " msg"), s)
		})
	}
}

func TestConsoleSink(t *testing.T) {
	var buf bytes.Buffer
	New(NewConsoleSink(&buf)).Failf("device creation failed")

	assert.Contains(t, buf.String(), "[fail]")
	assert.Contains(t, buf.String(), "device creation failed")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	New(NewLogSink(logger)).Warnf("network config error")

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"narration":"warning"`)
	assert.Contains(t, out, "network config error")
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.log")

	sink, err := OpenFileSink(path)
	require.NoError(t, err)

	n := New(sink)
	n.Infof("first")
	n.Successf("second")
	require.NoError(t, sink.Close())

	// Narrating after close is ignored
	n.Infof("third")
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "[ok]")
}
