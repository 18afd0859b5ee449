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

// Package specification contains the definitions, including colour, of the
// NTSC, PAL and SECAM television protocols supported by the emulation.
package specification

import (
	"image/color"
	"strings"

	"github.com/nojan1/6502.ts/curated"
)

// UnknownSpec is returned by SearchSpec when the ID is not recognised.
const UnknownSpec = "specification: unknown TV specification (%s)"

// SpecList is the list of specifications that the television may adopt.
var SpecList = []string{"NTSC", "PAL", "SECAM"}

// From the Stella Programmer's Guide:
//
// "Each scan lines starts with 68 clock counts of horizontal blank (not seen on
// the TV screen) followed by 160 clock counts to fully scan one line of TV
// picture. When the electron beam reaches the end of a scan line, it returns
// to the left side of the screen, waits for the 68 horizontal blank clock
// counts, and proceeds to draw the next line below."
//
// Horizontal clock counts are the same for all TV specifications.
const (
	HorizClksHBlank   = 68
	HorizClksVisible  = 160
	HorizClksScanline = 228
)

// Spec is used to define the television specifications.
type Spec struct {
	ID string

	// one entry for every colour register value. the lowest bit of a colour
	// register is not connected so odd entries duplicate the even entry
	// before them
	Palette [256]color.RGBA

	// the number of scanlines between the end of VSYNC and the first visible
	// scanline. this includes the three VSYNC lines themselves
	ScanlinesVBlank int

	// the visible portion of the screen
	ScanlinesVisible int

	// overscan follows the visible portion of the screen
	ScanlinesOverscan int

	// the scanline at which the visible screen ends and overscan begins. by
	// definition this is VBlank + Visible
	OverscanStart int

	// the number of frames per second required by the specification
	FramesPerSecond float32

	// the speed of the main TIA clock in Hz. the CPU runs at one third of
	// this frequency
	ClockFrequency float64
}

func (spec *Spec) String() string {
	return spec.ID
}

// ScanlinesTotal is the number of scanlines in an ideal frame.
func (spec *Spec) ScanlinesTotal() int {
	return spec.ScanlinesVBlank + spec.ScanlinesVisible + spec.ScanlinesOverscan
}

// GetColor returns the colour for the value of a TIA colour register.
func (spec *Spec) GetColor(col uint8) color.RGBA {
	return spec.Palette[col]
}

// Main clock values taken from:
// http://www.taswegian.com/WoodgrainWizard/tiki-index.php?page=Clock-Speeds
const (
	clockNTSC  = 3579545.0
	clockPAL   = 3546894.0
	clockSECAM = 3562500.0
)

// SpecNTSC is the specification for NTSC television types.
var SpecNTSC Spec

// SpecPAL is the specification for PAL television types.
var SpecPAL Spec

// SpecSECAM is the specification for SECAM television types. The timing is
// the same as PAL but the palette is limited to eight colours.
var SpecSECAM Spec

func init() {
	SpecNTSC = Spec{
		ID:                "NTSC",
		ScanlinesVBlank:   40,
		ScanlinesVisible:  192,
		ScanlinesOverscan: 30,
		FramesPerSecond:   60.0,
		ClockFrequency:    clockNTSC,
	}
	SpecNTSC.OverscanStart = SpecNTSC.ScanlinesVBlank + SpecNTSC.ScanlinesVisible

	SpecPAL = Spec{
		ID:                "PAL",
		ScanlinesVBlank:   48,
		ScanlinesVisible:  228,
		ScanlinesOverscan: 36,
		FramesPerSecond:   50.0,
		ClockFrequency:    clockPAL,
	}
	SpecPAL.OverscanStart = SpecPAL.ScanlinesVBlank + SpecPAL.ScanlinesVisible

	SpecSECAM = SpecPAL
	SpecSECAM.ID = "SECAM"
	SpecSECAM.ClockFrequency = clockSECAM

	for i := range 256 {
		SpecNTSC.Palette[i] = generateNTSC(uint8(i))
		SpecPAL.Palette[i] = generatePAL(uint8(i))
		SpecSECAM.Palette[i] = generateSECAM(uint8(i))
	}
}

// SearchSpec returns the specification with the matching ID. The search is
// case insensitive.
func SearchSpec(id string) (*Spec, error) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "NTSC":
		return &SpecNTSC, nil
	case "PAL":
		return &SpecPAL, nil
	case "SECAM":
		return &SpecSECAM, nil
	}
	return nil, curated.Errorf(UnknownSpec, id)
}
