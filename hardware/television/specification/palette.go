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

package specification

import (
	"image/color"
	"math"
)

func clamp(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// VideoBlack is the color produced by a television in the absence of a color
// signal. ie. during VBLANK
var VideoBlack = color.RGBA{0, 0, 0, 255}

// the min/max values for the Y component of greyscale hues
const (
	minY = 0.35
	maxY = 1.00
)

// saturation of chroma in final colour
const saturation = 0.3

// angle of the colour burst reference is 180 by defintion
const phiBurst = 180

// from the "Stella Programmer's Guide" (page 28):
//
// "Binary code 0 selects no color. Code 1 selects gold (same phase as
// color burst)"
//
// the color burst is 16 counts of the 3.58Mhz clock. 16 * 3.58 = 57.28
const phiAdj = -57.28

// the phase step between hues. the NTSC value is the one given by the "VCS
// Domestic Field Service Manual"
const (
	ntscPhase = 26.7
	palPhase  = 16.35
)

func luminance(col uint8) (uint8, float64) {
	lum := (col & 0x0e) >> 1
	return lum, minY + (float64(lum)/8)*(maxY-minY)
}

func grey(lum uint8, Y float64) color.RGBA {
	// black is defined as 0% luminance, the same as for when VBLANK is
	// enabled
	if lum == 0x00 {
		return VideoBlack
	}
	g := uint8(Y * 255)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

func generateNTSC(col uint8) color.RGBA {
	lum, Y := luminance(col)
	hue := (col & 0xf0) >> 4

	// hue zero has no colour component and only the luminance is used
	if hue == 0x00 {
		return grey(lum, Y)
	}

	// the colour component indicates a point on the 'colour wheel'
	phi := (float64(hue)-1)*-ntscPhase + phiAdj + phiBurst
	phi *= math.Pi / 180

	// the chroma values are scaled by the luminance value
	I := Y * saturation * math.Sin(phi)
	Q := Y * saturation * math.Cos(phi)

	// YIQ to RGB conversion. values from the "NTSC 1953 colorimetry"
	R := clamp(Y + (0.956 * I) + (0.619 * Q))
	G := clamp(Y - (0.272 * I) - (0.647 * Q))
	B := clamp(Y - (1.106 * I) + (1.703 * Q))

	return color.RGBA{
		R: uint8(R * 255.0),
		G: uint8(G * 255.0),
		B: uint8(B * 255.0),
		A: 255,
	}
}

func generatePAL(col uint8) color.RGBA {
	lum, Y := luminance(col)
	hue := (col & 0xf0) >> 4

	// PAL creates a grayscale for hues 0, 1, 14 and 15
	if hue <= 0x01 || hue >= 0x0e {
		return grey(lum, Y)
	}

	// even-numbered hues go in the opposite direction
	var phi float64
	if hue&0x01 == 0x01 {
		phi = float64(hue) * -palPhase
	} else {
		phi = (float64(hue) - 2) * palPhase
	}
	phi += phiAdj + phiBurst
	phi *= math.Pi / 180

	U := Y * saturation * -math.Sin(phi)
	V := Y * saturation * -math.Cos(phi)

	// YUV to RGB conversion. values from "SDTV with BT.470"
	R := clamp(Y + (1.140 * V))
	G := clamp(Y - (0.395 * U) - (0.581 * V))
	B := clamp(Y + (2.033 * U))

	return color.RGBA{
		R: uint8(R * 255.0),
		G: uint8(G * 255.0),
		B: uint8(B * 255.0),
		A: 255,
	}
}

// only the luminance data of the colour signal is used by SECAM
var secam = [8]uint32{0x000000, 0x2121ff, 0xf03c79, 0xff50ff, 0x7fff00, 0x7fffff, 0xffff3f, 0xffffff}

func generateSECAM(col uint8) color.RGBA {
	v := secam[(col&0x0e)>>1]
	return color.RGBA{
		R: uint8((v & 0xff0000) >> 16),
		G: uint8((v & 0xff00) >> 8),
		B: uint8(v & 0xff),
		A: 255,
	}
}
