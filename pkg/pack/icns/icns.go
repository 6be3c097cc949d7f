// Package icns serializes macOS icon family containers.
//
// An icon family is the magic "icns", a big-endian total length, and a
// sequence of typed elements: a four-character OSType tag, a big-endian
// element length (including the 8-byte element header), and the payload.
// Every element here carries a best-compression PNG stream; the family
// covers the canonical ten entries from 16px through 1024px.
package icns

import (
	"encoding/binary"
	"image"
	"io"
	"os"
	"strings"

	"github.com/Hkmu/icon-generator/pkg/errors"
	"github.com/Hkmu/icon-generator/pkg/pack/pngenc"
)

// Entry maps a nominal family name to its pixel size and OSType tag.
type Entry struct {
	Name   string // nominal name, e.g. "128x128@2x"
	Size   int    // pixel size of the stored image
	OSType string // four-character type code
}

// Retina reports whether the entry is a @2x slot.
func (e Entry) Retina() bool {
	return strings.HasSuffix(e.Name, "@2x")
}

// Family is the canonical macOS icon family, in serialization order.
var Family = []Entry{
	{Name: "16x16", Size: 16, OSType: "is32"},
	{Name: "16x16@2x", Size: 32, OSType: "ic11"},
	{Name: "32x32", Size: 32, OSType: "il32"},
	{Name: "32x32@2x", Size: 64, OSType: "ic12"},
	{Name: "128x128", Size: 128, OSType: "ic07"},
	{Name: "128x128@2x", Size: 256, OSType: "ic13"},
	{Name: "256x256", Size: 256, OSType: "ic08"},
	{Name: "256x256@2x", Size: 512, OSType: "ic14"},
	{Name: "512x512", Size: 512, OSType: "ic09"},
	{Name: "512x512@2x", Size: 1024, OSType: "ic10"},
}

// Frame pairs a family entry with its rendered raster.
type Frame struct {
	Entry Entry
	Image image.Image
}

// knownOSTypes is the set of codes the family accepts.
var knownOSTypes = func() map[string]bool {
	m := make(map[string]bool, len(Family))
	for _, e := range Family {
		m[e.OSType] = true
	}
	return m
}()

// validOSTypes returns the accepted codes for error messages, in family order.
func validOSTypes() string {
	codes := make([]string, len(Family))
	for i, e := range Family {
		codes[i] = e.OSType
	}
	return strings.Join(codes, ", ")
}

// checkOSType rejects codes that are not exactly four printable ASCII
// bytes or are not part of the canonical family.
func checkOSType(code string) error {
	if len(code) != 4 {
		return errors.New(errors.ErrCodeInvalidOSType,
			"OSType %q must be exactly four characters (valid: %s)", code, validOSTypes())
	}
	for i := 0; i < 4; i++ {
		if code[i] < 0x20 || code[i] > 0x7e {
			return errors.New(errors.ErrCodeInvalidOSType,
				"OSType %q contains non-printable bytes (valid: %s)", code, validOSTypes())
		}
	}
	if !knownOSTypes[code] {
		return errors.New(errors.ErrCodeInvalidOSType,
			"unrecognized OSType %q (valid: %s)", code, validOSTypes())
	}
	return nil
}

// Write serializes the frames as an icon family written to w.
// An invalid type code or a failed encode aborts the whole family.
func Write(w io.Writer, frames []Frame) error {
	if len(frames) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "icon family needs at least one entry")
	}

	payloads := make([][]byte, len(frames))
	total := uint32(8)
	for i, f := range frames {
		if err := checkOSType(f.Entry.OSType); err != nil {
			return err
		}
		data, err := pngenc.EncodeBytes(f.Image)
		if err != nil {
			return errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode %s family entry", f.Entry.Name)
		}
		payloads[i] = data
		total += uint32(8 + len(data))
	}

	if _, err := w.Write([]byte("icns")); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write icns magic")
	}
	if err := binary.Write(w, binary.BigEndian, total); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write icns length")
	}

	for i, f := range frames {
		if _, err := w.Write([]byte(f.Entry.OSType)); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s element tag", f.Entry.OSType)
		}
		if err := binary.Write(w, binary.BigEndian, uint32(8+len(payloads[i]))); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s element length", f.Entry.OSType)
		}
		if _, err := w.Write(payloads[i]); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s element payload", f.Entry.OSType)
		}
	}
	return nil
}

// WriteFile serializes the frames into the icon family file at path.
// A failed write removes the partial file.
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
