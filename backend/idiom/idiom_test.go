package idiom

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTour(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tour(&buf))

	want := "Hello\nWorld\nHello\nWorld\nTruthy\nFalsy\nnil\nnot found\n"
	assert.Equal(t, want, buf.String())
}

func TestChecks(t *testing.T) {
	got := map[string]bool{}
	for _, c := range Checks() {
		got[c.Label] = c.Holds
	}

	assert.Equal(t, map[string]bool{
		"Truthy":    true,
		"Falsy":     true,
		"nil":       true,
		"not nil":   false,
		"not found": true,
	}, got)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTourWriteError(t *testing.T) {
	assert.EqualError(t, Tour(failWriter{}), "closed")
}
