package deck

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	domain "github.com/bryanwahyu/seedcheck/internal/domain/deck"
)

var slideBoundary = regexp.MustCompile(`\n{3,}`)

// Service implements use-case parse deck.
// Stateless, aman dipakai concurrent.
type Service struct {
	PDF      domain.Extractor
	PPTX     domain.Extractor
	MaxBytes int64
}

// FileTypeOf maps a file name to a supported deck type, case-insensitively.
func FileTypeOf(fileName string) (domain.FileType, bool) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return domain.FileTypePDF, true
	case ".pptx":
		return domain.FileTypePPTX, true
	default:
		return "", false
	}
}

// ParseDeck validates the upload and extracts its text. Checks run in order:
// presence, type, size.
func (s *Service) ParseDeck(ctx context.Context, fileName string, data []byte) (*domain.ParsedDeck, error) {
	if fileName == "" || len(data) == 0 {
		return nil, domain.ErrNoFile
	}
	ft, ok := FileTypeOf(fileName)
	if !ok {
		return nil, eris.Wrapf(domain.ErrUnsupportedType, "deck: %q", filepath.Ext(fileName))
	}
	if int64(len(data)) > s.maxBytes() {
		return nil, eris.Wrapf(domain.ErrTooLarge, "deck: %d bytes, max %d", len(data), s.maxBytes())
	}

	ex := s.PDF
	if ft == domain.FileTypePPTX {
		ex = s.PPTX
	}
	if ex == nil {
		return nil, eris.Wrapf(domain.ErrExtraction, "deck: no extractor for %s", ft)
	}

	out, err := ex.Extract(ctx, data)
	if err != nil {
		zap.L().Warn("deck extraction failed",
			zap.String("file_name", fileName),
			zap.String("file_type", string(ft)),
			zap.Int("bytes", len(data)),
			zap.Error(err),
		)
		return nil, eris.Wrapf(domain.ErrExtraction, "deck: %s: %v", ft, err)
	}

	slides := SplitSlides(out.Text)
	count := max(out.Pages, len(slides), 1)

	zap.L().Info("deck parsed",
		zap.String("file_name", fileName),
		zap.String("file_type", string(ft)),
		zap.Int("slide_count", count),
		zap.Int("text_len", len(out.Text)),
	)

	return &domain.ParsedDeck{
		FileName:   fileName,
		FileType:   ft,
		SlideCount: count,
		Slides:     slides,
		RawText:    out.Text,
	}, nil
}

func (s *Service) maxBytes() int64 {
	if s.MaxBytes > 0 {
		return s.MaxBytes
	}
	return domain.MaxBytes
}

// SplitSlides cuts raw text on runs of three or more newlines. Empty chunks
// are dropped; when nothing is left the whole text becomes slide 1.
func SplitSlides(raw string) []domain.Slide {
	var slides []domain.Slide
	for _, chunk := range slideBoundary.Split(raw, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		slides = append(slides, domain.Slide{SlideNumber: len(slides) + 1, Content: chunk})
	}
	if len(slides) == 0 {
		return []domain.Slide{{SlideNumber: 1, Content: raw}}
	}
	return slides
}
