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


// Package ansi provides the ANSI escape sequences used by the colour
// terminal.
package ansi

import (
	"fmt"
	"strings"

	"github.com/nojan1/6502.ts/curated"
)

var colours = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

var attributes = map[string]int{
	"BOLD":      1,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    8,
}

const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// Pens are the bright foreground colours indexed by lowercase name.
var Pens map[string]string

// DimPens are the normal intensity foreground colours.
var DimPens map[string]string

// PenStyles are attributes like bold and underline.
var PenStyles map[string]string

// NormalPen resets all colours and attributes.
var NormalPen string

// ClearLine clears the line the cursor is on.
const ClearLine = "\033[2K"

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", "", false, false)

	for k := range colours {
		if k == "NORMAL" || k == "BLACK" {
			continue
		}
		n := strings.ToLower(k)
		Pens[n], _ = ColorBuild(k, "normal", "", true, false)
		DimPens[n], _ = ColorBuild(k, "normal", "", false, false)
	}

	for k := range attributes {
		PenStyles[strings.ToLower(k)], _ = ColorBuild("", "", k, false, false)
	}
}

// ColorBuild creates the ANSI sequence for the combination of pen, paper
// and attribute. An empty string for any of them leaves that part of the
// sequence out.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var parts []string

	if pen != "" {
		c, ok := colours[strings.ToUpper(pen)]
		if !ok {
			return "", curated.Errorf("ansi: unknown pen (%v)", pen)
		}
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		parts = append(parts, fmt.Sprintf("%d%d", t, c))
	}

	if paper != "" {
		c, ok := colours[strings.ToUpper(paper)]
		if !ok {
			return "", curated.Errorf("ansi: unknown paper (%v)", paper)
		}
		t := targetPaper
		if brightPaper {
			t = targetBrightPaper
		}
		parts = append(parts, fmt.Sprintf("%d%d", t, c))
	}

	if attribute != "" && strings.ToUpper(attribute) != "NORMAL" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", curated.Errorf("ansi: unknown attribute (%v)", attribute)
		}
		parts = append(parts, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(parts, ";")), nil
}
