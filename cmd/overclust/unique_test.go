package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUnique_Collected(t *testing.T) {
	in := strings.NewReader("a\nb\n\na\nc\nb\n")
	var out strings.Builder

	require.NoError(t, runUnique(in, &out, false, false, false))
	assert.Equal(t, "a\nb\nc\n", out.String())
}

func TestRunUnique_ImmediateWithHeader(t *testing.T) {
	in := strings.NewReader("x\nx\ny\n")
	var out strings.Builder

	require.NoError(t, runUnique(in, &out, true, true, false))
	// streamed lines first, count last
	assert.Equal(t, "x\ny\n2\n", out.String())
}

func TestRunUnique_Quoted(t *testing.T) {
	in := strings.NewReader("g6\ng6\n")
	var out strings.Builder

	require.NoError(t, runUnique(in, &out, false, true, true))
	assert.Equal(t, "1\n\"g6\",\n", out.String())
}

func TestRunUnique_EmptyInput(t *testing.T) {
	var out strings.Builder
	require.NoError(t, runUnique(strings.NewReader(""), &out, false, false, false))
	assert.Empty(t, out.String())
}
