// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !ocr

// Package ocr wraps the Tesseract engine for recovering text from scanned
// pages. This is the stub compiled when the "ocr" build tag is not set; all
// operations return ErrNotEnabled and the pipeline degrades to keeping
// whatever embedded text a scanned page had.
//
// To enable OCR, install Tesseract and rebuild:
//
//	go build -tags ocr ./...
package ocr

import "errors"

// Available reports whether OCR support was compiled in.
const Available = false

// ErrNotEnabled is returned when OCR is invoked without the "ocr" build tag.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is the stub OCR client.
type Client struct{}

// New returns ErrNotEnabled.
func New(language string) (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op on the stub.
func (c *Client) Close() error { return nil }

// RecognizeImage returns ErrNotEnabled.
func (c *Client) RecognizeImage(image []byte) (string, error) {
	return "", ErrNotEnabled
}
