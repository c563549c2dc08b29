package deck

import "errors"

var (
	// ErrNoFile means the upload carried no file or an empty one.
	ErrNoFile = errors.New("no file uploaded")
	// ErrUnsupportedType means the file isn't a .pdf or .pptx.
	ErrUnsupportedType = errors.New("only .pdf and .pptx files are supported")
	// ErrTooLarge means the file exceeds the size bound.
	ErrTooLarge = errors.New("file is too large")
	// ErrExtraction means the file was accepted but no text could be extracted.
	ErrExtraction = errors.New("failed to extract deck text")
)
