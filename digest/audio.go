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
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// the amount of data in the buffer before the digest is recalculated. the
// first sha1.Size bytes of the buffer hold the previous digest value
const audioBufferStart = sha1.Size

// Audio is an implementation of the Digest interface that hashes the audio
// stream. It implements the audio.Mixer interface.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

// Hash implements the Digest interface. Samples that have not yet filled the
// buffer are included in the hash.
func (dig *Audio) Hash() string {
	if dig.bufferCt == audioBufferStart {
		return fmt.Sprintf("%x", dig.digest)
	}
	copy(dig.buffer, dig.digest[:])
	return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// SetAudio implements the audio.Mixer interface.
func (dig *Audio) SetAudio(sample int16) {
	dig.buffer[dig.bufferCt] = uint8(sample >> 8)
	dig.buffer[dig.bufferCt+1] = uint8(sample)
	dig.bufferCt += 2

	if dig.bufferCt >= audioBufferLength-1 {
		dig.flush()
	}
}

func (dig *Audio) flush() {
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = audioBufferStart
}
