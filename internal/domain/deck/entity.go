package deck

// FileType is a supported deck format.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypePPTX FileType = "pptx"
)

// MaxBytes is the default upload bound (20 MiB).
const MaxBytes int64 = 20 * 1024 * 1024

// Slide is the text of one slide or page.
type Slide struct {
	SlideNumber int    `json:"slideNumber"`
	Content     string `json:"content"`
}

// ParsedDeck is the extracted text of an uploaded pitch deck.
// The analysis core only reads RawText.
type ParsedDeck struct {
	FileName   string   `json:"fileName"`
	FileType   FileType `json:"fileType"`
	SlideCount int      `json:"slideCount"`
	Slides     []Slide  `json:"slides"`
	RawText    string   `json:"rawText"`
}
