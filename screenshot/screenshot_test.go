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

package screenshot_test

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/hardware/television/surface"
	"github.com/nojan1/6502.ts/screenshot"
	"github.com/nojan1/6502.ts/test"
)

func TestNoFrame(t *testing.T) {
	sht := screenshot.NewScreenshot()
	test.ExpectSuccess(t, sht.Image() == nil)

	_, err := sht.Save(filepath.Join(t.TempDir(), "none"))
	test.ExpectSuccess(t, curated.Is(err, screenshot.NoFrame))
}

func TestScaling(t *testing.T) {
	s := surface.NewSurface(160, 192)
	s.Fill(color.RGBA{A: 255})
	s.FrameNum = 7
	s.SetPixel(10, 20, color.RGBA{R: 255, A: 255})

	sht := screenshot.NewScreenshot()
	sht.Scale = 1
	sht.Frame(s)
	test.ExpectEquality(t, sht.FrameNum(), 7)

	// changing the surface after the frame has been taken does not change
	// the screenshot
	s.SetPixel(10, 20, color.RGBA{G: 255, A: 255})

	img := sht.Image()
	test.ExpectEquality(t, img.Bounds().Dx(), 320)
	test.ExpectEquality(t, img.Bounds().Dy(), 192)
	test.ExpectEquality(t, img.RGBAAt(20, 20), color.RGBA{R: 255, A: 255})
	test.ExpectEquality(t, img.RGBAAt(21, 20), color.RGBA{R: 255, A: 255})
	test.ExpectEquality(t, img.RGBAAt(22, 20), color.RGBA{A: 255})
}

func TestSave(t *testing.T) {
	s := surface.NewSurface(160, 192)
	s.FrameNum = 3

	sht := screenshot.NewScreenshot()
	sht.Frame(s)

	fn, err := sht.Save(filepath.Join(t.TempDir(), "shot"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, filepath.Ext(fn), ".png")

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 160*screenshot.PixelWidth*2)
	test.ExpectEquality(t, img.Bounds().Dy(), 192*2)
}
