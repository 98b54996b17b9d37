package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestROICommand(t *testing.T) {
	out, err := runCommand(t, "roi", "--revenue", "10000", "--hours", "20")
	require.NoError(t, err)

	assert.Contains(t, out, "1.000 €")
	assert.Contains(t, out, "12.000 €")
	assert.Contains(t, out, "120,0 %")
	assert.Contains(t, out, "10,0 Monate")
}

func TestROICommand_NoSavings(t *testing.T) {
	out, err := runCommand(t, "roi", "--revenue", "10000", "--hours", "none")
	require.NoError(t, err)

	assert.Contains(t, out, "N/A")
}

func TestVideoCommand(t *testing.T) {
	out, err := runCommand(t, "video", "--category", "commercial", "--duration", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "7.500 €")
	assert.Contains(t, out, "2.250 €")
	assert.Contains(t, out, "9.750 €")
	assert.Contains(t, out, "Werbespot (1.500 €/Min.)")
	assert.Contains(t, out, "Dauer:            5 Min.")
}

func TestVideoCommand_UnknownCategory(t *testing.T) {
	_, err := runCommand(t, "video", "--category", "wedding", "--duration", "5")

	assert.ErrorContains(t, err, "unknown category")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := newLogger("loud")

	assert.Error(t, err)
}
