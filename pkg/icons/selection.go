package icons

// Target identifies one platform recipe.
type Target string

const (
	TargetWindows Target = "windows"
	TargetMacOS   Target = "macos"
	TargetICNS    Target = "icns"
	TargetLinux   Target = "linux"
	TargetAndroid Target = "android"
	TargetIOS     Target = "ios"
	TargetTauri   Target = "tauri"
	TargetCustom  Target = "custom"
)

// Selection describes which recipes a run should execute, mirroring the
// command-line surface. Zero value means "everything".
type Selection struct {
	// Sizes is the explicit flat-PNG size list. When non-empty it
	// suppresses every platform recipe.
	Sizes []int

	// Only-modes. At most one may be set; the CLI enforces exclusivity.
	ICOOnly     bool
	ICNSOnly    bool
	DesktopOnly bool
	MobileOnly  bool

	// Individual platform switches. Any set switch narrows the run to
	// exactly the named platforms.
	Windows bool
	MacOS   bool
	Linux   bool
	Android bool
	IOS     bool
	Tauri   bool
}

// Targets resolves the selection into an ordered recipe list.
//
// Precedence: an explicit size list wins over everything, then the
// only-modes, then individual platform switches, and with nothing set the
// default is every desktop and mobile platform. The Tauri recipe runs only
// when asked for by name.
func (s Selection) Targets() []Target {
	if len(s.Sizes) > 0 {
		return []Target{TargetCustom}
	}
	switch {
	case s.ICOOnly:
		return []Target{TargetWindows}
	case s.ICNSOnly:
		return []Target{TargetICNS}
	case s.DesktopOnly:
		return []Target{TargetWindows, TargetMacOS, TargetLinux}
	case s.MobileOnly:
		return []Target{TargetAndroid, TargetIOS}
	}

	var out []Target
	if s.Windows {
		out = append(out, TargetWindows)
	}
	if s.MacOS {
		out = append(out, TargetMacOS)
	}
	if s.Linux {
		out = append(out, TargetLinux)
	}
	if s.Android {
		out = append(out, TargetAndroid)
	}
	if s.IOS {
		out = append(out, TargetIOS)
	}
	if s.Tauri {
		out = append(out, TargetTauri)
	}
	if len(out) > 0 {
		return out
	}
	return []Target{TargetWindows, TargetMacOS, TargetLinux, TargetAndroid, TargetIOS}
}
