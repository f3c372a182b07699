// Package extract pulls plain text out of uploaded email files.
// Supported types: .txt (UTF-8 with Latin-1 fallback) and .pdf.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// MaxFileSize is the upload size cap (16MB).
const MaxFileSize = 16 * 1024 * 1024

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrEmptyFile       = errors.New("empty file")
)

// AllowedExtension reports whether the filename has a supported extension.
func AllowedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".pdf":
		return true
	default:
		return false
	}
}

// FromUpload extracts text from an uploaded file based on its extension.
func FromUpload(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if len(data) > MaxFileSize {
		return "", ErrFileTooLarge
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return fromTxt(data), nil
	case ".pdf":
		return fromPDF(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(filename))
	}
}

// fromTxt decodes the bytes as UTF-8, falling back to Latin-1 when the
// content is not valid UTF-8.
func fromTxt(data []byte) string {
	if utf8.Valid(data) {
		return strings.TrimSpace(string(data))
	}

	// Latin-1: every byte maps directly to the code point of the same value.
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return strings.TrimSpace(string(runes))
}

// fromPDF extracts the plain text of every page.
func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plainText); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
