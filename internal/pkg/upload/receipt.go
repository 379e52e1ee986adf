// Package upload validates and stores user-submitted receipt files.
//
// Extension and Content-Type headers are attacker-controlled, so acceptance
// is decided from the bytes alone: a PDF must carry the %PDF magic and an
// image must actually decode.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/image/webp"
)

// DefaultMaxReceiptSize applies when no explicit limit is configured.
const DefaultMaxReceiptSize = 5 * 1024 * 1024

var (
	ErrReceiptTooLarge    = errors.New("receipt exceeds the size limit")
	ErrReceiptEmpty       = errors.New("receipt file is empty")
	ErrReceiptInvalidType = errors.New("receipt must be a PDF, JPEG, PNG or WEBP file")
)

// ValidateReceipt checks size and content and returns the canonical file
// extension for storage. A maxSize of zero or less falls back to the default.
func ValidateReceipt(data []byte, maxSize int) (string, error) {
	if len(data) == 0 {
		return "", ErrReceiptEmpty
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxReceiptSize
	}
	if len(data) > maxSize {
		return "", ErrReceiptTooLarge
	}

	if bytes.HasPrefix(data, []byte("%PDF")) {
		return ".pdf", nil
	}

	detected := mimetype.Detect(data)
	switch {
	case detected.Is("image/jpeg"):
		if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
			return "", ErrReceiptInvalidType
		}
		return ".jpg", nil
	case detected.Is("image/png"):
		if _, err := png.Decode(bytes.NewReader(data)); err != nil {
			return "", ErrReceiptInvalidType
		}
		return ".png", nil
	case detected.Is("image/webp"):
		if _, err := webp.Decode(bytes.NewReader(data)); err != nil {
			return "", ErrReceiptInvalidType
		}
		return ".webp", nil
	}

	return "", ErrReceiptInvalidType
}

// ReceiptStore writes validated receipts under uploads/receipts/YYYY/MM/.
type ReceiptStore struct {
	baseDir string
	maxSize int
}

func NewReceiptStore(baseDir string, maxSize int) *ReceiptStore {
	if maxSize <= 0 {
		maxSize = DefaultMaxReceiptSize
	}
	return &ReceiptStore{baseDir: baseDir, maxSize: maxSize}
}

// Save validates the payload and persists it under a year/month partition
// with a random name. It returns the path relative to the upload base dir,
// which is what gets stored on the purchase record.
func (s *ReceiptStore) Save(data []byte, now time.Time) (string, error) {
	ext, err := ValidateReceipt(data, s.maxSize)
	if err != nil {
		return "", err
	}

	relDir := filepath.Join("receipts", fmt.Sprintf("%04d", now.Year()), fmt.Sprintf("%02d", now.Month()))
	if err := os.MkdirAll(filepath.Join(s.baseDir, relDir), 0o755); err != nil {
		return "", err
	}

	relPath := filepath.Join(relDir, uuid.NewString()+ext)
	if err := os.WriteFile(filepath.Join(s.baseDir, relPath), data, 0o644); err != nil {
		return "", err
	}
	return relPath, nil
}
