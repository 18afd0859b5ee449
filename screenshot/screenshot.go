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

// Package screenshot keeps a copy of the most recently completed frame and
// saves it to disk as a PNG file. The image is scaled so that the wide TIA
// pixels appear with the correct aspect ratio.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/hardware/television/surface"
	"github.com/nojan1/6502.ts/logger"
	"golang.org/x/image/draw"
)

// NoFrame is returned by Save() when no frame has been completed.
const NoFrame = "screenshot: no frame to save"

// PixelWidth is the width of a TIA pixel relative to its height.
const PixelWidth = 2

// Screenshot keeps a copy of the most recent frame. Use the Frame() function
// as the TIA's frame handler or call it from an existing frame handler.
type Screenshot struct {
	// the scaling applied to both dimensions in addition to the pixel width
	// correction. values less than one are treated as one
	Scale int

	frame    *image.RGBA
	frameNum int
}

// NewScreenshot is the preferred method of initialisation for the Screenshot
// type.
func NewScreenshot() *Screenshot {
	return &Screenshot{Scale: 2}
}

// Frame copies the contents of the surface.
func (sht *Screenshot) Frame(s *surface.Surface) {
	img := s.Image()
	if sht.frame == nil || sht.frame.Rect != img.Rect {
		sht.frame = image.NewRGBA(img.Rect)
	}
	copy(sht.frame.Pix, img.Pix)
	sht.frameNum = s.FrameNum
}

// FrameNum returns the frame number of the most recent frame. Returns zero if
// there is no frame.
func (sht *Screenshot) FrameNum() int {
	return sht.frameNum
}

// Image returns the most recent frame scaled and aspect corrected. Returns
// nil if there is no frame.
func (sht *Screenshot) Image() *image.RGBA {
	if sht.frame == nil {
		return nil
	}

	scale := max(sht.Scale, 1)
	b := sht.frame.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*PixelWidth*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), sht.frame, b, draw.Src, nil)

	return dst
}

// Save the most recent frame to a PNG file. If the filename is empty then a
// filename is generated from the frame number. The ".png" extension is added
// if necessary. Returns the name of the file that was written.
func (sht *Screenshot) Save(filename string) (string, error) {
	img := sht.Image()
	if img == nil {
		return "", curated.Errorf(NoFrame)
	}

	if filename == "" {
		filename = fmt.Sprintf("screenshot_%d", sht.frameNum)
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".png") {
		filename = fmt.Sprintf("%s.png", filename)
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}

	err = png.Encode(f, img)
	if err != nil {
		_ = f.Close()
		return "", curated.Errorf("screenshot: %v", err)
	}

	err = f.Close()
	if err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", filename)

	return filename, nil
}
