package wetsplit

import "context"

// PageImage is an image found on a PDF page.
type PageImage struct {
	PageNr   int
	FileType string
	Data     []byte
}

// OCR recognizes text in page images.
type OCR interface {
	Recognize(ctx context.Context, img PageImage) (string, error)
}
