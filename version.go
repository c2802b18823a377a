package colorhash

import "runtime/debug"

// Version reports the module version recorded in the build, or "(devel)"
// for builds from a working tree.
func Version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
