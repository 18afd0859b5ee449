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

package preferences

import (
	"fmt"
	"strings"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/prefs"
	"github.com/nojan1/6502.ts/resources"
)

// Preferences for the emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// randomise the CPU registers and RAM on reset
	RandomState prefs.Bool

	// undriven bits on the TIA data bus are random rather than the value
	// last seen on the bus
	RandomPins prefs.Bool

	// television specification: NTSC, PAL or SECAM
	TVSpec prefs.String

	// CPU variant: 6502 or 65C02
	CPUVariant prefs.String

	// limit the emulation speed to the refresh rate of the TV specification
	FPSLimit prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values saved on disk are loaded if they exist.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.TVSpec.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(fmt.Sprintf("%v", v)) {
		case "NTSC", "PAL", "SECAM":
			return nil
		}
		return curated.Errorf("preferences: unknown TV specification (%v)", v)
	})

	p.CPUVariant.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(fmt.Sprintf("%v", v)) {
		case "6502", "65C02":
			return nil
		}
		return curated.Errorf("preferences: unknown CPU variant (%v)", v)
	})

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for key, v := range map[string]interface {
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
		String() string
	}{
		"hardware.randomState": &p.RandomState,
		"hardware.randomPins":  &p.RandomPins,
		"hardware.tvSpec":      &p.TVSpec,
		"hardware.cpuVariant":  &p.CPUVariant,
		"hardware.fpsLimit":    &p.FPSLimit,
	} {
		if err := p.dsk.Add(key, v); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.RandomState.Set(false)
	_ = p.RandomPins.Set(false)
	_ = p.TVSpec.Set("NTSC")
	_ = p.CPUVariant.Set("6502")
	_ = p.FPSLimit.Set(true)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
