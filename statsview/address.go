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


package statsview

// DefaultAddress of the stats server.
const DefaultAddress = "localhost:12600"

// Path of the graphs page on the server.
const Path = "/debug/statsview"

// NotAvailable is returned by Launch() when the program has been built
// without the statsview tag.
const NotAvailable = "statsview: not available in this build (use the statsview build tag)"
