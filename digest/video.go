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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/nojan1/6502.ts/hardware/television/surface"
)

const pixelDepth = 3

// Video is an implementation of the Digest interface that hashes every
// completed frame. Use the Frame() function as the TIA's frame handler.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// width and height arguments are the size of the frames that will be
// presented to Frame().
func NewVideo(width int, height int) *Video {
	dig := &Video{}

	// length of pixels array contains enough room for the previous frames
	// digest value
	dig.pixels = make([]byte, len(dig.digest)+width*height*pixelDepth)

	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// FrameNum returns the frame number of the most recently hashed frame.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// Frame updates the digest with the contents of the surface. Surfaces that
// are larger than the size given to NewVideo() are clipped.
func (dig *Video) Frame(s *surface.Surface) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	copy(dig.pixels, dig.digest[:])

	img := s.Image()
	i := len(dig.digest)
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			if i > len(dig.pixels)-pixelDepth {
				break
			}
			o := img.PixOffset(x, y)
			copy(dig.pixels[i:i+pixelDepth], img.Pix[o:o+pixelDepth])
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = s.FrameNum
}
