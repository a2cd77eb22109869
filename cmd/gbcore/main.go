// Command gbcore loads a Game Boy ROM and runs the SM83 core against it
// until HALT or a fatal core error, then dumps the final register state.
// It is a thin driver: ROM loading and the run loop are the only things
// out of scope for the cpu/mem packages themselves.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v2"

	"gone/cpu"
	"gone/mem"
)

func main() {
	app := &cli.App{
		Name:  "gbcore",
		Usage: "run a Game Boy ROM against the SM83 core",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "open the interactive single-step TUI instead of free-running",
			},
			&cli.IntFlag{
				Name:  "max-steps",
				Usage: "stop after this many instructions even if HALT is never reached (0 = unbounded)",
				Value: 0,
			},
		},
		ArgsUsage: "<rom-path>",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("gbcore: %v", err)
	}
}

func run(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errors.New("missing ROM path")
	}

	rom, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading ROM %q", path)
	}

	bus, err := mem.NewBus(rom)
	if err != nil {
		return errors.Wrap(err, "constructing bus")
	}
	c := cpu.New(bus)

	if ctx.Bool("debug") {
		c.Debug()
		return nil
	}

	maxSteps := ctx.Int("max-steps")
	var totalCycles uint64
	for steps := 0; maxSteps == 0 || steps < maxSteps; steps++ {
		if c.Halted {
			break
		}
		cycles, err := c.Step()
		if err != nil {
			return errors.Wrapf(err, "at PC 0x%04X", c.PC)
		}
		totalCycles += uint64(cycles)
	}

	fmt.Printf("halted=%v cycles=%d AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X\n",
		c.Halted, totalCycles, c.AF(), c.BC(), c.DE(), c.HL(), c.SP, c.PC)
	return nil
}
