package deck

import "context"

// Extraction is what an extractor returns: the raw text and the number of
// pages or slides it saw (0 when unknown).
type Extraction struct {
	Text  string
	Pages int
}

// Extractor pulls text out of one file format.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (Extraction, error)
}
