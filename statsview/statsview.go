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


//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Server is a running stats viewer.
type Server struct {
	mgr  *statsview.ViewManager
	addr string
}

// Launch the stats viewer on the address, or DefaultAddress if the address
// is empty. The server runs in its own goroutine until Stop() is called.
func Launch(output io.Writer, addr string) (*Server, error) {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))

	srv := &Server{
		mgr:  statsview.New(),
		addr: addr,
	}
	go srv.mgr.Start()

	if output != nil {
		fmt.Fprintf(output, "stats server available at http://%s%s\n", addr, Path)
	}

	return srv, nil
}

// Stop the server.
func (srv *Server) Stop() {
	if srv == nil {
		return
	}
	srv.mgr.Stop()
}

func (srv *Server) String() string {
	return fmt.Sprintf("http://%s%s", srv.addr, Path)
}
