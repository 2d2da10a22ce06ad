package transport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader(t *testing.T) {
	t.Parallel()

	r := NewLineReader(strings.NewReader("Play card 0\r\n\nDrop card 1"))

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "Play card 0", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Empty(t, line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "Drop card 1", line)

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewLineWriter(&buf)
	require.NoError(t, w.WriteLine("Turn: 1, cards: 0, with risk: 0"))
	require.NoError(t, w.WriteLine("Turn: 2, cards: 1, with risk: 1"))

	assert.Equal(t, "Turn: 1, cards: 0, with risk: 0\nTurn: 2, cards: 1, with risk: 1\n", buf.String())
}

func TestOpenInputAndOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	script := filepath.Join(dir, "script.txt")
	require.NoError(t, os.WriteFile(script, []byte("Play card 0\n"), 0o600))

	in, inCloser, err := OpenInput(script)
	require.NoError(t, err)
	defer func() { _ = inCloser.Close() }()
	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "Play card 0", line)

	summary := filepath.Join(dir, "summary.txt")
	out, outCloser, err := OpenOutput(summary)
	require.NoError(t, err)
	require.NoError(t, out.WriteLine("Turn: 0, cards: 0, with risk: 0"))
	require.NoError(t, outCloser.Close())

	data, err := os.ReadFile(summary)
	require.NoError(t, err)
	assert.Equal(t, "Turn: 0, cards: 0, with risk: 0\n", string(data))

	_, _, err = OpenInput(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestOpen_DefaultsToStdio(t *testing.T) {
	t.Parallel()

	in, inCloser, err := OpenInput("")
	require.NoError(t, err)
	assert.NotNil(t, in)
	assert.NoError(t, inCloser.Close())

	out, outCloser, err := OpenOutput("")
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.NoError(t, outCloser.Close())
}
