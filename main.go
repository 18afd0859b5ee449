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


package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"

	"github.com/nojan1/6502.ts/curated"
	"github.com/nojan1/6502.ts/debugger"
	"github.com/nojan1/6502.ts/debugger/govern"
	"github.com/nojan1/6502.ts/debugger/terminal"
	"github.com/nojan1/6502.ts/debugger/terminal/colorterm"
	"github.com/nojan1/6502.ts/debugger/terminal/plainterm"
	"github.com/nojan1/6502.ts/digest"
	"github.com/nojan1/6502.ts/disassembly"
	"github.com/nojan1/6502.ts/environment"
	"github.com/nojan1/6502.ts/hardware"
	"github.com/nojan1/6502.ts/hardware/cpu/instructions"
	"github.com/nojan1/6502.ts/hardware/memory/cartridge"
	"github.com/nojan1/6502.ts/hardware/television/surface"
	"github.com/nojan1/6502.ts/hardware/tia/audio"
	"github.com/nojan1/6502.ts/limiter"
	"github.com/nojan1/6502.ts/logger"
	"github.com/nojan1/6502.ts/modalflag"
	"github.com/nojan1/6502.ts/screenshot"
	"github.com/nojan1/6502.ts/statsview"
	"github.com/nojan1/6502.ts/version"
	"github.com/nojan1/6502.ts/wavwriter"
	"golang.org/x/term"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes(govern.ModeDebugger.String(), govern.ModeRun.String(), govern.ModeDisasm.String())
	ver, _, _ := version.Version()
	md.AdditionalHelp(fmt.Sprintf("%s %s", version.ApplicationName, ver))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	mode, _ := govern.ModeFromString(md.Mode())

	switch mode {
	case govern.ModeDebugger:
		err = debug(md)
	case govern.ModeRun:
		err = run(md)
	case govern.ModeDisasm:
		err = disasm(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// newEnvironment creates the environment for the main emulation. Empty
// strings leave the preference unchanged.
func newEnvironment(spec string, variant string) (*environment.Environment, error) {
	env, err := environment.NewEnvironment(nil, nil)
	if err != nil {
		return nil, err
	}
	if spec != "" {
		if err := env.Prefs.TVSpec.Set(strings.ToUpper(spec)); err != nil {
			return nil, err
		}
	}
	if variant != "" {
		if err := env.Prefs.CPUVariant.Set(strings.ToUpper(variant)); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func loadCartridge(env *environment.Environment, filename string) (*cartridge.Cartridge, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("cartridge: %v", err)
	}
	return cartridge.NewFromBytes(env, data)
}

// startStats launches the stats server if an address has been given. A
// server that cannot be launched is reported but is not an error.
func startStats(addr string) *statsview.Server {
	if addr == "" {
		return nil
	}
	srv, err := statsview.Launch(os.Stdout, addr)
	if err != nil {
		fmt.Printf("* %v\n", err)
		return nil
	}
	return srv
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	spec := md.AddString("tv", "", "television specification: NTSC, PAL, SECAM")
	variant := md.AddString("cpu", "", "cpu variant: 6502, 65C02")
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	initScript := md.AddString("initscript", "", "Lua script to run on debugger start")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddString("statsview", "", fmt.Sprintf("address of the runtime stats server (eg. %s)", statsview.DefaultAddress))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}
	defer startStats(*stats).Stop()

	env, err := newEnvironment(*spec, *variant)
	if err != nil {
		return err
	}

	var trm terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		// the colour terminal requires a real terminal for input
		if term.IsTerminal(int(os.Stdin.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = plainterm.NewPlainTerminal(nil, nil)
		}
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(nil, nil)
	default:
		return curated.Errorf("unknown terminal type (%s)", *termType)
	}

	dbg, err := debugger.NewDebugger(env, trm)
	if err != nil {
		return err
	}

	var cartridgeFilename string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		cartridgeFilename = md.GetArg(0)
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	return dbg.Start(cartridgeFilename, *initScript)
}

// mixers sends audio to more than one audio.Mixer.
type mixers []audio.Mixer

func (m mixers) SetAudio(sample int16) {
	for _, mx := range m {
		mx.SetAudio(sample)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	spec := md.AddString("tv", "", "television specification: NTSC, PAL, SECAM")
	variant := md.AddString("cpu", "", "cpu variant: 6502, 65C02")
	fpsCap := md.AddBool("fpscap", true, "cap fps to specification")
	frames := md.AddInt("frames", 0, "number of frames to run (0 runs until interrupted)")
	digestType := md.AddString("digest", "NONE", "print digest at end of run: VIDEO, AUDIO, NONE")
	wav := md.AddString("wav", "", "record audio to wav file")
	shot := md.AddString("screenshot", "", "save the final frame to a PNG file")
	profile := md.AddString("profile", "", "write cpu profile to file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddString("statsview", "", fmt.Sprintf("address of the runtime stats server (eg. %s)", statsview.DefaultAddress))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("%s mode requires one cartridge file", md)
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}
	defer startStats(*stats).Stop()

	env, err := newEnvironment(*spec, *variant)
	if err != nil {
		return err
	}

	vcs, err := hardware.NewVCS(env, nil)
	if err != nil {
		return err
	}

	cart, err := loadCartridge(env, md.GetArg(0))
	if err != nil {
		return err
	}
	vcs.AttachCartridge(cart)

	lmtr := limiter.NewLimiter(vcs.TIA.Spec())
	defer lmtr.Stop()
	lmtr.Active.Store(*fpsCap)

	pool := surface.NewPool(vcs.TIA.Width(), vcs.TIA.Height())
	vcs.TIA.SetSurfaceFactory(pool.Get)

	var dig digest.Digest
	var videoDigest *digest.Video
	var mix mixers

	switch strings.ToUpper(*digestType) {
	case "VIDEO":
		videoDigest = digest.NewVideo(vcs.TIA.Width(), vcs.TIA.Height())
		dig = videoDigest
	case "AUDIO":
		audioDigest := digest.NewAudio()
		mix = append(mix, audioDigest)
		dig = audioDigest
	case "NONE":
	default:
		return curated.Errorf("unknown digest type (%s)", *digestType)
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav, audio.SampleFreq(vcs.TIA.Spec().ClockFrequency))
		if err != nil {
			return err
		}
		mix = append(mix, aw)
	}

	if len(mix) > 0 {
		vcs.TIA.Audio.SetMixer(mix)
	}

	sht := screenshot.NewScreenshot()

	vcs.TIA.SetFrameHandler(func(s *surface.Surface) {
		if videoDigest != nil {
			videoDigest.Frame(s)
		}
		sht.Frame(s)
		pool.Put(s)
		lmtr.CheckFrame()
	})

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	numFrames := *frames
	if numFrames <= 0 {
		numFrames = math.MaxInt32
	}

	runErr := vcs.RunForFrameCount(numFrames, func(_ int) (govern.State, error) {
		lmtr.MeasureActual(vcs.CPU.Cycles)
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	})

	fmt.Printf("%d frames (%.2f fps, %.2f MHz)\n", vcs.TIA.FrameNum,
		lmtr.Measured.Load().(float32), lmtr.MeasuredClock.Load().(float32)/1000000)

	if aw != nil {
		if err := aw.EndMixing(); err != nil {
			return err
		}
	}

	if dig != nil {
		fmt.Println(dig.Hash())
	}

	if *shot != "" {
		fn, err := sht.Save(*shot)
		if err != nil {
			return err
		}
		fmt.Printf("screenshot saved to %s\n", fn)
	}

	return runErr
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	variant := md.AddString("cpu", "6502", "cpu variant: 6502, 65C02")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	decoded := md.AddBool("decoded", false, "include instructions that are not reachable from the vectors")
	grep := md.AddString("grep", "", "only show instructions containing the search term")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("%s mode requires one cartridge file", md)
	}

	v, ok := instructions.VariantFromString(strings.ToUpper(*variant))
	if !ok {
		return curated.Errorf("unknown cpu variant (%s)", *variant)
	}

	resolver, err := instructions.NewResolver(v)
	if err != nil {
		return err
	}

	cart, err := loadCartridge(nil, md.GetArg(0))
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(cart, resolver)
	if err != nil {
		return err
	}

	if *grep != "" {
		dsm.Grep(md.Output, disassembly.GrepAll, *grep, false)
		return nil
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode, Decoded: *decoded})
}
