package icons_test

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	goico "github.com/sergeymakinen/go-ico"

	"github.com/Hkmu/icon-generator/pkg/errors"
	"github.com/Hkmu/icon-generator/pkg/icons"
)

// gradient builds a deterministic non-uniform square source.
func gradient(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / size),
				G: uint8(y * 255 / size),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func newGenerator(t *testing.T, cfg icons.Config) (*icons.Generator, string) {
	t.Helper()
	dir := t.TempDir()
	gen, err := icons.New(gradient(64), dir, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return gen, dir
}

func TestNewRejectsNonSquare(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	if _, err := icons.New(src, dir, icons.DefaultConfig()); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no output files, found %d", len(entries))
	}
}

func TestNewRejectsUnknownBadgeVariant(t *testing.T) {
	cfg := icons.DefaultConfig()
	cfg.Dev = true
	cfg.BadgeVariant = "ribbon"
	if _, err := icons.New(gradient(16), t.TempDir(), cfg); !errors.Is(err, errors.ErrCodeInvalidBadge) {
		t.Fatalf("expected INVALID_BADGE, got %v", err)
	}
}

func TestSelectionTargets(t *testing.T) {
	tests := []struct {
		name string
		sel  icons.Selection
		want []icons.Target
	}{
		{
			name: "default runs everything",
			sel:  icons.Selection{},
			want: []icons.Target{icons.TargetWindows, icons.TargetMacOS, icons.TargetLinux, icons.TargetAndroid, icons.TargetIOS},
		},
		{
			name: "custom sizes suppress platforms",
			sel:  icons.Selection{Sizes: []int{64}, Windows: true, IOS: true},
			want: []icons.Target{icons.TargetCustom},
		},
		{
			name: "ico only",
			sel:  icons.Selection{ICOOnly: true},
			want: []icons.Target{icons.TargetWindows},
		},
		{
			name: "icns only",
			sel:  icons.Selection{ICNSOnly: true},
			want: []icons.Target{icons.TargetICNS},
		},
		{
			name: "desktop only",
			sel:  icons.Selection{DesktopOnly: true},
			want: []icons.Target{icons.TargetWindows, icons.TargetMacOS, icons.TargetLinux},
		},
		{
			name: "mobile only",
			sel:  icons.Selection{MobileOnly: true},
			want: []icons.Target{icons.TargetAndroid, icons.TargetIOS},
		},
		{
			name: "explicit platforms combine",
			sel:  icons.Selection{Windows: true, Android: true},
			want: []icons.Target{icons.TargetWindows, icons.TargetAndroid},
		},
		{
			name: "tauri only when named",
			sel:  icons.Selection{Tauri: true},
			want: []icons.Target{icons.TargetTauri},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Targets(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Targets() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "icons")
	gen, err := icons.New(gradient(64), dir, icons.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := gen.Run(context.Background(), icons.Selection{ICOOnly: true}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "icon.ico")); err != nil {
		t.Fatal(err)
	}
}

func TestWindowsLadder(t *testing.T) {
	gen, dir := newGenerator(t, icons.DefaultConfig())
	if err := gen.Windows(context.Background()); err != nil {
		t.Fatalf("Windows: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "icon.ico"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	imgs, err := goico.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode icon.ico: %v", err)
	}
	want := []int{16, 24, 32, 48, 64, 256}
	if len(imgs) != len(want) {
		t.Fatalf("frame count = %d, want %d", len(imgs), len(want))
	}
	for i, img := range imgs {
		if got := img.Bounds().Dx(); got != want[i] {
			t.Errorf("frame %d size = %d, want %d", i, got, want[i])
		}
	}
}

func TestMacOSWritesContainerAndManifest(t *testing.T) {
	gen, dir := newGenerator(t, icons.DefaultConfig())
	if err := gen.MacOS(context.Background()); err != nil {
		t.Fatalf("MacOS: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "icon.icns"))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 8 || string(data[:4]) != "icns" {
		t.Fatal("missing icns magic")
	}

	manifest := decodeManifest(t, filepath.Join(dir, "Contents.json"))
	if len(manifest.Images) != 10 {
		t.Fatalf("manifest records = %d, want 10", len(manifest.Images))
	}
	for _, img := range manifest.Images {
		if img.Filename != "icon.icns" {
			t.Errorf("record filename = %q, want icon.icns", img.Filename)
		}
		if img.Idiom != "mac" {
			t.Errorf("record idiom = %q, want mac", img.Idiom)
		}
	}
}

func TestICNSOnlySkipsManifest(t *testing.T) {
	gen, dir := newGenerator(t, icons.DefaultConfig())
	if err := gen.ICNS(context.Background()); err != nil {
		t.Fatalf("ICNS: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "icon.icns")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Contents.json")); !os.IsNotExist(err) {
		t.Fatalf("expected no manifest, stat err = %v", err)
	}
}

func TestLinuxLadder(t *testing.T) {
	gen, dir := newGenerator(t, icons.DefaultConfig())
	if err := gen.Linux(context.Background()); err != nil {
		t.Fatalf("Linux: %v", err)
	}
	for _, name := range []string{"32x32.png", "64x64.png", "128x128.png", "256x256.png", "icon.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "512x512.png")); !os.IsNotExist(err) {
		t.Fatal("largest size must be written as icon.png only")
	}
	img := decodePNG(t, filepath.Join(dir, "icon.png"))
	if got := img.Bounds().Dx(); got != 512 {
		t.Errorf("icon.png size = %d, want 512", got)
	}
}

func TestCustomSizes(t *testing.T) {
	gen, dir := newGenerator(t, icons.DefaultConfig())
	if err := gen.CustomSizes(context.Background(), []int{24, 100}); err != nil {
		t.Fatalf("CustomSizes: %v", err)
	}
	for _, name := range []string{"24x24.png", "100x100.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestCustomSizesRejectsBadListBeforeWriting(t *testing.T) {
	gen, dir := newGenerator(t, icons.DefaultConfig())
	if err := gen.CustomSizes(context.Background(), []int{32, -1}); !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Fatalf("expected INVALID_SIZE, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no output files, found %d", len(entries))
	}
}

func TestTauriBundle(t *testing.T) {
	gen, dir := newGenerator(t, icons.DefaultConfig())
	if err := gen.Tauri(context.Background()); err != nil {
		t.Fatalf("Tauri: %v", err)
	}
	bundle := filepath.Join(dir, "tauri-desktop")
	for _, name := range []string{"32x32.png", "128x128.png", "128x128@2x.png", "icon.ico", "icon.icns"} {
		if _, err := os.Stat(filepath.Join(bundle, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	img := decodePNG(t, filepath.Join(bundle, "128x128@2x.png"))
	if got := img.Bounds().Dx(); got != 256 {
		t.Errorf("128x128@2x.png size = %d, want 256", got)
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}
