// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// fitzSource adapts a go-fitz (MuPDF) document to the Source interface.
type fitzSource struct {
	doc *fitz.Document
}

// Open opens the PDF (or any MuPDF-supported document) at path.
func Open(path string) (Source, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &fitzSource{doc: doc}, nil
}

func (s *fitzSource) NumPages() int {
	return s.doc.NumPage()
}

func (s *fitzSource) PageText(n int) (string, error) {
	return s.doc.Text(n)
}

func (s *fitzSource) PageImagePNG(n int, dpi float64) ([]byte, error) {
	img, err := s.doc.ImageDPI(n, dpi)
	if err != nil {
		return nil, fmt.Errorf("rendering page %d: %w", n+1, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding page %d: %w", n+1, err)
	}
	return buf.Bytes(), nil
}

func (s *fitzSource) Metadata() map[string]string {
	return s.doc.Metadata()
}

func (s *fitzSource) Close() error {
	return s.doc.Close()
}
