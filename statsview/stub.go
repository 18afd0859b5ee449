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


//go:build !statsview

package statsview

import (
	"io"

	"github.com/nojan1/6502.ts/curated"
)

// Server is a running stats viewer. There is never a running server without
// the statsview build tag.
type Server struct{}

// Launch always fails without the statsview build tag.
func Launch(_ io.Writer, _ string) (*Server, error) {
	return nil, curated.Errorf(NotAvailable)
}

// Stop the server.
func (srv *Server) Stop() {}

func (srv *Server) String() string {
	return "statsview not available"
}
