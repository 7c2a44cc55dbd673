package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_MarksAndFormatting(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)

	s.Ok("saved %d files", 3)
	s.Warn("missing %s", "renderer")
	s.Err("failed")
	s.Info("detail")
	s.Step("cloning")

	out := buf.String()
	assert.Contains(t, out, "saved 3 files")
	assert.Contains(t, out, "missing renderer")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "detail")
	assert.Contains(t, out, "cloning")
}

func TestStatus_HeadAddsSpacing(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Head("Summary of %s", "x.md")
	assert.Contains(t, buf.String(), "Summary of x.md")
	assert.Equal(t, byte('\n'), buf.Bytes()[0])
}
