// Package core holds the pure decision logic of schemalab: mapping a
// platform family onto the bundled bebop compiler binary.
package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"schemalab/internal/types"
)

// compilerPaths is the compiled-in mapping from platform family to the
// bundled bebopc binary, matching the benchmark repository layout.
// Resolution is a pure lookup; whether the binary actually exists is
// checked later, at invocation time.
var compilerPaths = map[types.PlatformFamily]string{
	types.PlatformWindows: "bin/compiler/Windows-Debug/bebopc.exe",
	types.PlatformUnix:    "bin/compiler/Linux-Debug/bebopc",
}

// ResolveToolPath returns the bebop compiler path for a platform
// family. An unknown family is a configuration error, not a fallback.
func ResolveToolPath(family types.PlatformFamily) (string, error) {
	path, ok := compilerPaths[family]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported platform family: %s", family))
	}
	return path, nil
}

// SupportedFamilies lists every platform family the compiler table
// covers.
func SupportedFamilies() []types.PlatformFamily {
	return []types.PlatformFamily{types.PlatformWindows, types.PlatformUnix}
}
