package deck

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakePdfToText(t *testing.T, script string) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "pdftotext")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"+script), 0755))
	return bin
}

func TestPdfToText_BinPath(t *testing.T) {
	assert.Equal(t, "pdftotext", NewPdfToText("").BinPath())
	assert.Equal(t, "/custom/pdftotext", NewPdfToText("/custom/pdftotext").BinPath())
}

func TestPdfToText_Extract_Pages(t *testing.T) {
	bin := fakePdfToText(t, `printf 'Acme Corp\fThe Problem\fTraction\f'`+"\n")

	ext, err := NewPdfToText(bin).Extract(context.Background(), []byte("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.Equal(t, 3, ext.Pages)
	assert.Equal(t, "Acme Corp\n\n\nThe Problem\n\n\nTraction", ext.Text)
}

func TestPdfToText_Extract_PassesLayoutAndStdout(t *testing.T) {
	bin := fakePdfToText(t, `echo "$1 $3"`+"\n")

	ext, err := NewPdfToText(bin).Extract(context.Background(), []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "-layout -\n", ext.Text)
	assert.Zero(t, ext.Pages)
}

func TestPdfToText_Extract_BinaryNotFound(t *testing.T) {
	_, err := NewPdfToText("/nonexistent/pdftotext").Extract(context.Background(), []byte("%PDF"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdftotext: failed")
}

func TestPdfToText_Extract_Failure(t *testing.T) {
	bin := fakePdfToText(t, "echo 'Syntax Error: broken xref' >&2\nexit 1\n")

	_, err := NewPdfToText(bin).Extract(context.Background(), []byte("not a pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken xref")
}
