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

// Package digest is used to create mathematical hashes of VCS output. The
// two implementations of the Digest interface also implement the
// tia.FrameHandler signature (Video) and the audio.Mixer interface (Audio).
//
// The hashes are chained: the digest of one frame (or audio buffer) is
// included in the data used to create the next digest. Two digests are
// therefore only equal if the entire output stream has been identical.
package digest

// Digest implementations compute a hash of the emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
