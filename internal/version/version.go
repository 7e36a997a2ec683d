// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other gridfilter packages to avoid import cycles.

package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the module version, "dev" for local builds.
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}()

// Revision is the short VCS revision of the build, empty when unknown.
var Revision = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}()

// String is the line printed for --version.
func String() string {
	if Revision == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, Revision)
}
