// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports the name and build information of the running
// binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
)

// CmdName returns the base name of the running binary without extension.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	base := filepath.Base(exe)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Version returns a human-readable multi-line description of the build.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fmt.Sprintf("%s (unknown build)\n", CmdName())
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", CmdName(), moduleVersion(info))
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision", "vcs.time", "vcs.modified":
			fmt.Fprintf(&sb, "%s: %s\n", s.Key, s.Value)
		}
	}
	fmt.Fprintf(&sb, "go: %s\n", runtime.Version())
	return sb.String()
}

func moduleVersion(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" {
		return v
	}
	return "(devel)"
}
