// Package pngenc centralizes the PNG encoding policies used across the
// icon pipeline. Standalone icon files and large container frames use
// best compression; small ICO frames are stored uncompressed, mirroring
// the platform rule that only the largest conventional ICO frame benefits
// from compression.
package pngenc

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/Hkmu/icon-generator/pkg/errors"
)

// Encode writes img to w as a best-compression PNG.
func Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode PNG")
	}
	return nil
}

// EncodeBytes returns img encoded as a best-compression PNG.
func EncodeBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeStoredBytes returns img encoded as an uncompressed PNG.
// Used for the small frames inside ICO containers.
func EncodeStoredBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.NoCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode stored PNG")
	}
	return buf.Bytes(), nil
}

// WriteFile encodes img as a best-compression PNG and writes it to path.
// The file handle is flushed and released before returning.
func WriteFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "close %s", path)
	}
	return nil
}
