package iojson

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, map[string]int{"count": 2}))

	assert.JSONEq(t, `{"count": 2}`, buf.String())
	assert.Contains(t, buf.String(), "\n  ", "output is indented")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, map[string]string{"slug": "spf"}))
	require.NoError(t, WriteLine(&buf, map[string]string{"slug": "dkim"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"slug":"spf"}`, lines[0])
	assert.JSONEq(t, `{"slug":"dkim"}`, lines[1])
}

func TestWriteUnmarshalable(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, make(chan int)))
	assert.Error(t, WriteLine(&buf, func() {}))
}
