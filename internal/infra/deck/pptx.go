package deck

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	domdeck "github.com/bryanwahyu/seedcheck/internal/domain/deck"
)

const (
	drawingMLNS = "http://schemas.openxmlformats.org/drawingml/2006/main"
	// maxSlideXML bounds the decompressed size of a single slide part.
	maxSlideXML = 8 << 20
)

var slidePart = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// PPTX extracts slide text from PowerPoint files by reading the slide parts
// of the OOXML package directly.
type PPTX struct{}

func NewPPTX() *PPTX { return &PPTX{} }

type slideFile struct {
	num  int
	file *zip.File
}

// Extract returns the text of every slide in presentation order. Paragraphs
// are separated by newlines and slides by a blank-line run.
func (PPTX) Extract(ctx context.Context, data []byte) (domdeck.Extraction, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return domdeck.Extraction{}, eris.Wrap(err, "pptx: open archive")
	}

	var slides []slideFile
	for _, f := range zr.File {
		m := slidePart.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideFile{num: n, file: f})
	}
	if len(slides) == 0 {
		return domdeck.Extraction{}, eris.New("pptx: archive has no slides")
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	texts := make([]string, 0, len(slides))
	for _, s := range slides {
		if err := ctx.Err(); err != nil {
			return domdeck.Extraction{}, eris.Wrap(err, "pptx: extract")
		}
		text, err := slideText(s.file)
		if err != nil {
			return domdeck.Extraction{}, eris.Wrapf(err, "pptx: slide %d", s.num)
		}
		texts = append(texts, text)
	}

	return domdeck.Extraction{Text: strings.Join(texts, slideBreak), Pages: len(slides)}, nil
}

func slideText(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", eris.Wrap(err, "open part")
	}
	defer rc.Close() //nolint:errcheck

	dec := xml.NewDecoder(io.LimitReader(rc, maxSlideXML))
	var (
		paragraphs []string
		para       strings.Builder
		inText     bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", eris.Wrap(err, "decode xml")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == drawingMLNS && t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Space != drawingMLNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if line := strings.TrimSpace(para.String()); line != "" {
					paragraphs = append(paragraphs, line)
				}
				para.Reset()
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}
