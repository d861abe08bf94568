// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build ocr

// Package ocr wraps the Tesseract engine for recovering text from scanned
// pages. It requires Tesseract to be installed on the system and is compiled
// in only under the "ocr" build tag:
//
//	go build -tags ocr ./...
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Available reports whether OCR support was compiled in.
const Available = true

// Client performs OCR on page images. Not safe for concurrent use; the
// pipeline processes pages in order on a single goroutine.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client for the given language string ("eng",
// "eng+deu", ...). Close must be called to release Tesseract resources.
func New(language string) (*Client, error) {
	c := gosseract.NewClient()
	if language != "" {
		if err := c.SetLanguage(language); err != nil {
			c.Close()
			return nil, fmt.Errorf("setting OCR language %q: %w", language, err)
		}
	}
	return &Client{client: c}, nil
}

// Close releases Tesseract resources.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RecognizeImage runs OCR over encoded image data (PNG, JPEG, TIFF) and
// returns the recognized text, trimmed.
func (c *Client) RecognizeImage(image []byte) (string, error) {
	if err := c.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("setting OCR image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
