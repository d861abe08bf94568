// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubNew(t *testing.T) {
	if Available {
		t.Fatal("Available = true in stub build")
	}
	if _, err := New("eng"); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("New() error = %v, want ErrNotEnabled", err)
	}
}

func TestStubRecognizeImage(t *testing.T) {
	var c Client
	if _, err := c.RecognizeImage([]byte{0x89, 'P', 'N', 'G'}); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("RecognizeImage error = %v, want ErrNotEnabled", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close error = %v, want nil", err)
	}
}
