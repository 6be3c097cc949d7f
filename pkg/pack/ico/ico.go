// Package ico serializes multi-frame Windows icon containers.
//
// The container layout is the classic ICONDIR / ICONDIRENTRY directory
// followed by the frame payloads. Frames are embedded as PNG streams
// (supported since Windows Vista): frames below 256px are stored
// uncompressed, the 256px frame uses best compression — only the largest
// conventional frame benefits from compression.
package ico

import (
	"encoding/binary"
	"image"
	"io"
	"os"

	"github.com/Hkmu/icon-generator/pkg/errors"
	"github.com/Hkmu/icon-generator/pkg/pack/pngenc"
)

// Ladder is the canonical Windows icon size ladder. Consumers expect
// exactly these sizes in a generated container.
var Ladder = []int{16, 24, 32, 48, 64, 256}

// Frame is one icon variant to be packed into the container.
type Frame struct {
	Size  int
	Image image.Image
}

// header is the 6-byte ICONDIR structure.
type header struct {
	_          uint16 // reserved, always 0
	ImageType  uint16 // 1 = icon
	ImageCount uint16
}

// descriptor is the 16-byte ICONDIRENTRY structure.
type descriptor struct {
	Width  uint8 // 0 means 256
	Height uint8
	_      uint8 // palette size, 0 for truecolor
	_      uint8 // reserved
	Planes uint16
	BPP    uint16
	Size   uint32
	Offset uint32
}

// Write packs the frames into an ICO container written to w.
// Any encode error aborts the container before a single byte is written.
func Write(w io.Writer, frames []Frame) error {
	if len(frames) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "ICO container needs at least one frame")
	}

	payloads := make([][]byte, len(frames))
	for i, f := range frames {
		var (
			data []byte
			err  error
		)
		if f.Size >= 256 {
			data, err = pngenc.EncodeBytes(f.Image)
		} else {
			data, err = pngenc.EncodeStoredBytes(f.Image)
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode %dpx ICO frame", f.Size)
		}
		payloads[i] = data
	}

	hdr := header{ImageType: 1, ImageCount: uint16(len(frames))}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write ICO header")
	}

	offset := uint32(6 + 16*len(frames))
	for i, f := range frames {
		dim := uint8(f.Size)
		if f.Size >= 256 {
			dim = 0
		}
		desc := descriptor{
			Width:  dim,
			Height: dim,
			Planes: 1,
			BPP:    32,
			Size:   uint32(len(payloads[i])),
			Offset: offset,
		}
		if err := binary.Write(w, binary.LittleEndian, desc); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write ICO directory entry")
		}
		offset += desc.Size
	}

	for i, data := range payloads {
		if _, err := w.Write(data); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %dpx ICO frame", frames[i].Size)
		}
	}
	return nil
}

// WriteFile packs the frames into the ICO file at path. The file handle
// is released before returning; a failed pack removes the partial file so
// no invalid container is left behind.
func WriteFile(path string, frames []Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	if err := Write(f, frames); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "close %s", path)
	}
	return nil
}
