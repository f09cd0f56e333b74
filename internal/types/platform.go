package types

// PlatformFamily identifies the host operating system family used to
// select the bundled bebop compiler binary.
type PlatformFamily string

const (
	PlatformWindows PlatformFamily = "windows"
	PlatformUnix    PlatformFamily = "unix"
)

// FamilyForGOOS collapses a runtime.GOOS value into a platform family.
// Anything that is not Windows runs the unix compiler binary.
func FamilyForGOOS(goos string) PlatformFamily {
	if goos == "windows" {
		return PlatformWindows
	}
	return PlatformUnix
}
