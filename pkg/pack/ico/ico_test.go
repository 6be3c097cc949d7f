package ico_test

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	goico "github.com/sergeymakinen/go-ico"

	"github.com/Hkmu/icon-generator/pkg/pack/ico"
	"github.com/Hkmu/icon-generator/pkg/raster"
)

func gradient(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(255 * x / size), uint8(255 * y / size), 80, 255})
		}
	}
	return img
}

func ladderFrames(t *testing.T) []ico.Frame {
	t.Helper()
	src := gradient(512)
	frames := make([]ico.Frame, 0, len(ico.Ladder))
	for _, size := range ico.Ladder {
		frames = append(frames, ico.Frame{Size: size, Image: raster.Resize(src, size)})
	}
	return frames
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.ico")
	if err := ico.WriteFile(path, ladderFrames(t)); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read icon.ico: %v", err)
	}

	images, err := goico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeAll() error: %v", err)
	}

	if len(images) != len(ico.Ladder) {
		t.Fatalf("frame count = %d, want %d", len(images), len(ico.Ladder))
	}

	sizes := make(map[int]bool)
	for _, img := range images {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		if w != h {
			t.Errorf("non-square frame %dx%d", w, h)
		}
		sizes[w] = true
	}
	for _, want := range ico.Ladder {
		if !sizes[want] {
			t.Errorf("ladder size %d missing from container", want)
		}
	}
	if len(sizes) != len(ico.Ladder) {
		t.Errorf("distinct frame sizes = %d, want %d", len(sizes), len(ico.Ladder))
	}
}

func TestWriteEmptyFrames(t *testing.T) {
	var buf bytes.Buffer
	if err := ico.Write(&buf, nil); err == nil {
		t.Fatal("Write() with no frames, want error")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes on error, want 0", buf.Len())
	}
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.ico")
	if err := ico.WriteFile(path, nil); err == nil {
		t.Fatal("WriteFile() with no frames, want error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial icon.ico left behind, stat err = %v", err)
	}
}

func TestDirectoryOffsets(t *testing.T) {
	var buf bytes.Buffer
	if err := ico.Write(&buf, ladderFrames(t)); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data := buf.Bytes()
	// ICONDIR: reserved 0, type 1, count 6
	if data[0] != 0 || data[1] != 0 {
		t.Error("reserved field not zero")
	}
	if data[2] != 1 || data[3] != 0 {
		t.Error("image type != 1")
	}
	if int(data[4]) != len(ico.Ladder) {
		t.Errorf("image count = %d, want %d", data[4], len(ico.Ladder))
	}
	// the 256px frame stores 0 in the width/height bytes
	last := 6 + 16*(len(ico.Ladder)-1)
	if data[last] != 0 || data[last+1] != 0 {
		t.Errorf("256px entry dims = (%d,%d), want (0,0)", data[last], data[last+1])
	}
}
