package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetBase(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, Configure(Config{Level: "error", Output: os.Stderr}))
	})
}

func TestConfigureLevelAndOutput(t *testing.T) {
	resetBase(t)
	var buf bytes.Buffer
	require.NoError(t, Configure(Config{Level: "debug", Output: &buf}))

	logger := NewLogger("Decoder")
	logger.WithField("syndrome", 3).Debug("recomputed parity")
	logger.Trace("not shown")

	out := buf.String()
	assert.Contains(t, out, "recomputed parity")
	assert.Contains(t, out, "name=Decoder")
	assert.Contains(t, out, "syndrome=3")
	assert.NotContains(t, out, "not shown")
}

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	resetBase(t)
	require.Error(t, Configure(Config{Level: "loud"}))
}

func TestFileHooks(t *testing.T) {
	resetBase(t)
	path := filepath.Join(t.TempDir(), "hamming")
	var buf bytes.Buffer
	require.NoError(t, Configure(Config{Level: "warn", Logfile: path, Output: &buf}))

	NewLogger("Fault").Warn("flipped")

	content, err := os.ReadFile(path + ".warn")
	require.NoError(t, err)
	assert.Contains(t, string(content), "flipped")
	assert.Contains(t, string(content), `"name":"Fault"`)
}

func TestTracer(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracer(&buf)
	assert.Equal(t, []logrus.Level{logrus.TraceLevel}, tr.Levels())

	entry := logrus.NewEntry(logrus.New()).WithField("name", "Codeword")
	entry.Message = "made space"
	require.NoError(t, tr.Fire(entry))

	bare := logrus.NewEntry(logrus.New())
	bare.Message = "bare"
	require.NoError(t, tr.Fire(bare))

	assert.Equal(t, "[Codeword] made space\nbare\n", buf.String())
}
