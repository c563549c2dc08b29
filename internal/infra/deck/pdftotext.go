package deck

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/rotisserie/eris"

	domdeck "github.com/bryanwahyu/seedcheck/internal/domain/deck"
)

// slideBreak is the separator the slide splitter treats as a boundary.
const slideBreak = "\n\n\n"

// PdfToText extracts text from PDFs using the pdftotext CLI tool.
type PdfToText struct {
	binPath string
}

// NewPdfToText creates a PdfToText extractor. If binPath is empty, "pdftotext" is used.
func NewPdfToText(binPath string) *PdfToText {
	if binPath == "" {
		binPath = "pdftotext"
	}
	return &PdfToText{binPath: binPath}
}

// BinPath returns the configured executable.
func (p *PdfToText) BinPath() string { return p.binPath }

// Extract writes the PDF to a temp file and runs pdftotext -layout on it.
// pdftotext ends every page with a form feed; those count the pages and
// become slide breaks.
func (p *PdfToText) Extract(ctx context.Context, data []byte) (domdeck.Extraction, error) {
	f, err := os.CreateTemp("", "seedcheck-*.pdf")
	if err != nil {
		return domdeck.Extraction{}, eris.Wrap(err, "pdftotext: create temp file")
	}
	defer os.Remove(f.Name()) //nolint:errcheck

	if _, err := f.Write(data); err != nil {
		f.Close() //nolint:errcheck
		return domdeck.Extraction{}, eris.Wrap(err, "pdftotext: write temp file")
	}
	if err := f.Close(); err != nil {
		return domdeck.Extraction{}, eris.Wrap(err, "pdftotext: close temp file")
	}

	cmd := exec.CommandContext(ctx, p.binPath, "-layout", f.Name(), "-")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return domdeck.Extraction{}, eris.Wrapf(err, "pdftotext: failed: %s", strings.TrimSpace(stderr.String()))
	}

	out := stdout.String()
	pages := strings.Count(out, "\f")
	text := strings.ReplaceAll(strings.TrimRight(out, "\f"), "\f", slideBreak)
	return domdeck.Extraction{Text: text, Pages: pages}, nil
}
