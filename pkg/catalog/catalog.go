// Package catalog builds Apple asset-catalog Contents.json documents for
// iOS and macOS icon sets.
//
// A manifest accumulates one image record per produced file and is written
// once at the end of a platform's generation. Serialization is pretty-
// printed JSON with object keys in field declaration order; optional
// fields are omitted entirely, never emitted as null. macOS and iOS
// catalogs are independent documents and are never merged.
package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Hkmu/icon-generator/pkg/errors"
)

// Author is the generator identifier recorded in info.author.
const Author = "icongen"

// Version is the asset-catalog format version recorded in info.version.
const Version = 1

// ImageEntry is one image record within an asset catalog.
type ImageEntry struct {
	Filename     string `json:"filename,omitempty"`
	Idiom        string `json:"idiom,omitempty"`
	Scale        string `json:"scale,omitempty"`
	Size         string `json:"size,omitempty"`
	ExpectedSize string `json:"expected_size,omitempty"`
	Role         string `json:"role,omitempty"`
	Subtype      string `json:"subtype,omitempty"`
	Folder       string `json:"folder,omitempty"`
}

// Info carries the versioning and authorship block.
type Info struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// Properties holds optional catalog-level settings.
type Properties struct {
	OnDemandResourceTags          []string `json:"on-demand-resource-tags,omitempty"`
	PreservesVectorRepresentation bool     `json:"preserves-vector-representation,omitempty"`
}

// Manifest is the root Contents.json document.
type Manifest struct {
	Images     []ImageEntry `json:"images"`
	Info       Info         `json:"info"`
	Properties *Properties  `json:"properties,omitempty"`
}

// New returns an empty manifest with the standard info block.
func New() *Manifest {
	return &Manifest{
		Images: []ImageEntry{},
		Info:   Info{Version: Version, Author: Author},
	}
}

// AddImage appends a record. Records keep insertion order in the output.
func (m *Manifest) AddImage(e ImageEntry) {
	m.Images = append(m.Images, e)
}

// MarshalPretty serializes the manifest as indented JSON.
func (m *Manifest) MarshalPretty() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "marshal Contents.json")
	}
	return append(data, '\n'), nil
}

// WriteTo writes the manifest as Contents.json inside dir.
func (m *Manifest) WriteTo(dir string) error {
	data, err := m.MarshalPretty()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "Contents.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}

// PointSize formats a nominal point size without trailing zeros:
// 20 -> "20", 83.5 -> "83.5".
func PointSize(points float64) string {
	return strconv.FormatFloat(points, 'f', -1, 64)
}

// SizeString formats the "NxN" nominal size for a point size.
func SizeString(points float64) string {
	s := PointSize(points)
	return s + "x" + s
}

// ScaleString formats an integer scale multiplier as "1x", "2x", "3x".
func ScaleString(scale int) string {
	return strconv.Itoa(scale) + "x"
}

// IOSRole maps a nominal iOS point size to its icon role. The marketing
// 1024pt slot has no role and returns the empty string.
func IOSRole(points float64) string {
	switch points {
	case 20:
		return "notificationCenter"
	case 29:
		return "companionSettings"
	case 40:
		return "spotlight"
	case 60, 76, 83.5:
		return "appLauncher"
	default:
		return ""
	}
}
