package upload

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidateReceipt(t *testing.T) {
	t.Run("accepts pdf magic", func(t *testing.T) {
		ext, err := ValidateReceipt([]byte("%PDF-1.7 fake document body"), 0)
		assert.NoError(t, err)
		assert.Equal(t, ".pdf", ext)
	})

	t.Run("accepts decodable png", func(t *testing.T) {
		ext, err := ValidateReceipt(validPNG(t), 0)
		assert.NoError(t, err)
		assert.Equal(t, ".png", ext)
	})

	t.Run("rejects executable disguised as pdf", func(t *testing.T) {
		payload := append([]byte("MZ"), bytes.Repeat([]byte{0x90}, 100)...)
		_, err := ValidateReceipt(payload, 0)
		assert.ErrorIs(t, err, ErrReceiptInvalidType)
	})

	t.Run("rejects truncated png", func(t *testing.T) {
		data := validPNG(t)
		_, err := ValidateReceipt(data[:20], 0)
		assert.ErrorIs(t, err, ErrReceiptInvalidType)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		data := make([]byte, DefaultMaxReceiptSize+1)
		copy(data, "%PDF")
		_, err := ValidateReceipt(data, 0)
		assert.ErrorIs(t, err, ErrReceiptTooLarge)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		_, err := ValidateReceipt(nil, 0)
		assert.ErrorIs(t, err, ErrReceiptEmpty)
	})

	t.Run("rejects plain text", func(t *testing.T) {
		_, err := ValidateReceipt([]byte("not a receipt at all"), 0)
		assert.ErrorIs(t, err, ErrReceiptInvalidType)
	})
}

func TestReceiptStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewReceiptStore(dir, 0)
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	relPath, err := store.Save(validPNG(t), now)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("receipts", "2026", "03"), filepath.Dir(relPath))
	assert.Equal(t, ".png", filepath.Ext(relPath))

	_, err = os.Stat(filepath.Join(dir, relPath))
	assert.NoError(t, err)
}

func TestReceiptStoreSaveRejectsInvalid(t *testing.T) {
	store := NewReceiptStore(t.TempDir(), 0)
	_, err := store.Save([]byte("MZ executable"), time.Now())
	assert.Error(t, err)
}

// The store enforces the limit it was configured with, not the built-in
// default.
func TestReceiptStoreConfiguredLimit(t *testing.T) {
	store := NewReceiptStore(t.TempDir(), 64)

	small := []byte("%PDF-1.7 tiny")
	_, err := store.Save(small, time.Now())
	assert.NoError(t, err)

	big := make([]byte, 65)
	copy(big, "%PDF")
	_, err = store.Save(big, time.Now())
	assert.ErrorIs(t, err, ErrReceiptTooLarge)
}
