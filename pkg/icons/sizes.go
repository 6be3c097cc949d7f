package icons

// linuxSizes is the freedesktop hicolor ladder. The 512px entry doubles as
// the generic icon.png at the output root.
var linuxSizes = []int{32, 64, 128, 256, 512}

// androidDensity maps a density bucket to its launcher icon edge in pixels
// and the canvas edge used for the adaptive layers (dp 108 at that
// density).
type androidDensity struct {
	Name     string
	Launcher int
	Adaptive int
}

var androidDensities = []androidDensity{
	{Name: "mdpi", Launcher: 48, Adaptive: 108},
	{Name: "hdpi", Launcher: 72, Adaptive: 162},
	{Name: "xhdpi", Launcher: 96, Adaptive: 216},
	{Name: "xxhdpi", Launcher: 144, Adaptive: 324},
	{Name: "xxxhdpi", Launcher: 192, Adaptive: 432},
}

// iosSlot is one record of the iOS icon-set manifest. Points and
// scale multiply to the rendered pixel edge; several slots share a file.
type iosSlot struct {
	Points float64
	Scale  int
	Idiom  string
}

// iosSlots is the modern single-target app icon template: eight iPhone
// slots, eight iPad slots and the marketing icon.
var iosSlots = []iosSlot{
	{Points: 20, Scale: 2, Idiom: "iphone"},
	{Points: 20, Scale: 3, Idiom: "iphone"},
	{Points: 29, Scale: 2, Idiom: "iphone"},
	{Points: 29, Scale: 3, Idiom: "iphone"},
	{Points: 40, Scale: 2, Idiom: "iphone"},
	{Points: 40, Scale: 3, Idiom: "iphone"},
	{Points: 60, Scale: 2, Idiom: "iphone"},
	{Points: 60, Scale: 3, Idiom: "iphone"},
	{Points: 20, Scale: 1, Idiom: "ipad"},
	{Points: 20, Scale: 2, Idiom: "ipad"},
	{Points: 29, Scale: 1, Idiom: "ipad"},
	{Points: 29, Scale: 2, Idiom: "ipad"},
	{Points: 40, Scale: 1, Idiom: "ipad"},
	{Points: 40, Scale: 2, Idiom: "ipad"},
	{Points: 76, Scale: 2, Idiom: "ipad"},
	{Points: 83.5, Scale: 2, Idiom: "ipad"},
	{Points: 1024, Scale: 1, Idiom: "ios-marketing"},
}

// tauriSizes are the flat PNGs a Tauri bundle expects next to its
// containers.
var tauriSizes = []struct {
	Size int
	Name string
}{
	{Size: 32, Name: "32x32.png"},
	{Size: 128, Name: "128x128.png"},
	{Size: 256, Name: "128x128@2x.png"},
}
