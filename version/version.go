// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.


// Package version reports the name and build version of the emulator.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is used when referring to the program in output.
const ApplicationName = "6502.ts"

// number is set by the linker for release builds:
//
//	go build -ldflags "-X github.com/nojan1/6502.ts/version.number=v0.1.0"
var number string

type build struct {
	version  string
	revision string
}

var info = sync.OnceValue(func() build {
	b := build{
		version:  number,
		revision: "no revision information",
	}

	var vcs, modified bool
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				b.revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if modified {
		b.revision = fmt.Sprintf("%s+dirty", b.revision)
	}

	// without a release number the version says how the program was built.
	// "unreleased" is a build from a repository and "local" is anything
	// else, such as "go run ."
	if b.version == "" {
		if vcs {
			b.version = "unreleased"
		} else {
			b.version = "local"
		}
	}

	return b
})

// Version returns the version and the revision of the build. The release
// value is true if the build has a release number.
func Version() (version string, revision string, release bool) {
	b := info()
	return b.version, b.revision, number != ""
}
