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

// Package surface provides the pixel surfaces that the TIA renders a frame
// into. A surface is owned by the TIA while the frame is being drawn. Once the
// frame is complete the surface is handed to the frame handler, which should
// return it to the Pool when it is no longer required.
package surface

import (
	"image"
	"image/color"
	"sync"
)

// Surface is a rectangle of RGBA pixels.
type Surface struct {
	img *image.RGBA

	// the frame number the surface was used for
	FrameNum int
}

// NewSurface is the preferred method of initialisation for the Surface type.
func NewSurface(width int, height int) *Surface {
	return &Surface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width of surface in pixels.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height of surface in pixels.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// SetPixel sets the colour of a single pixel. Pixels outside of the surface
// are ignored.
func (s *Surface) SetPixel(x int, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= s.img.Rect.Dx() || y >= s.img.Rect.Dy() {
		return
	}
	i := s.img.PixOffset(x, y)
	s.img.Pix[i] = col.R
	s.img.Pix[i+1] = col.G
	s.img.Pix[i+2] = col.B
	s.img.Pix[i+3] = col.A
}

// Pixel returns the colour of a single pixel.
func (s *Surface) Pixel(x int, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// Fill every pixel with the specified colour.
func (s *Surface) Fill(col color.RGBA) {
	for i := 0; i < len(s.img.Pix); i += 4 {
		s.img.Pix[i] = col.R
		s.img.Pix[i+1] = col.G
		s.img.Pix[i+2] = col.B
		s.img.Pix[i+3] = col.A
	}
}

// Image returns the underlying image. The image should not be retained after
// the surface has been returned to a pool.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Pool of surfaces of the same size. Pool is safe to use from more than one
// goroutine.
type Pool struct {
	width  int
	height int
	pool   sync.Pool
}

// NewPool is the preferred method of initialisation for the Pool type.
func NewPool(width int, height int) *Pool {
	p := &Pool{
		width:  width,
		height: height,
	}
	p.pool.New = func() any {
		return NewSurface(p.width, p.height)
	}
	return p
}

// Get a surface from the pool. The surface is cleared to black before it is
// returned.
func (p *Pool) Get() *Surface {
	s := p.pool.Get().(*Surface)
	s.Fill(color.RGBA{A: 255})
	s.FrameNum = 0
	return s
}

// Put a surface back into the pool. Surfaces of the wrong size are dropped.
func (p *Pool) Put(s *Surface) {
	if s == nil || s.Width() != p.width || s.Height() != p.height {
		return
	}
	p.pool.Put(s)
}
