package notify

import (
	"bytes"
	"testing"

	"fjacquet/insurance-summary/internal/logging"

	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	logger := logging.NewMockLogger()
	c := NewConsole(&out, logger)

	c.Info("Summary saved")
	c.Warn("No insurance entries found")
	c.Error("cannot open file")

	assert.Equal(t, "Summary saved\nwarning: No insurance entries found\nerror: cannot open file\n", out.String())
	assert.Len(t, logger.GetEntriesByLevel("DEBUG"), 3)
}

func TestRecorder(t *testing.T) {
	var n Notifier = &Recorder{}
	n.Warn("a")
	n.Info("b")
	n.Warn("c")

	r := n.(*Recorder)
	assert.Equal(t, []string{"a", "c"}, r.ByLevel(LevelWarn))
	assert.Equal(t, []string{"b"}, r.ByLevel(LevelInfo))
	assert.Empty(t, r.ByLevel(LevelError))
}
