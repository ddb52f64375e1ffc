// run is the host binary that owns the main loop: it loads a ROM image
// into the canonical bus layout, resets the CPU, and clocks it either for
// a fixed budget of cycles or until a JAM opcode halts it. It also carries
// a disasm subcommand as a thin wrapper around package disassemble.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	cli "github.com/urfave/cli/v2"

	"github.com/earthPerson-001/emulator-6502/bus"
	"github.com/earthPerson-001/emulator-6502/cpu"
	"github.com/earthPerson-001/emulator-6502/disassemble"
	"github.com/earthPerson-001/emulator-6502/irq"
)

// romBase is the bus address the canonical layout maps ROM at: 16 KiB RAM
// plus 16 KiB Other precede it.
const romBase = 0x8000

func main() {
	app := &cli.App{
		Name:  "run",
		Usage: "load and clock a 6502 ROM image",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "clock the CPU over a loaded ROM",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "rom", Required: true, Usage: "path to a raw ROM image"},
					&cli.IntFlag{Name: "start", Value: 0, Usage: "override the reset vector (0 leaves the ROM's own vector in place)"},
					&cli.IntFlag{Name: "cycles", Value: 0, Usage: "stop after this many cycles (0 runs until JAM)"},
					&cli.BoolFlag{Name: "trace", Usage: "print a look-ahead disassembly window before each instruction boundary"},
					&cli.IntFlag{Name: "irq-every", Value: 0, Usage: "raise a maskable interrupt every N cycles (0 disables)"},
					&cli.DurationFlag{Name: "rate", Usage: "sleep this long between instruction boundaries when tracing (0 runs at full speed)"},
				},
				Action: runCmd,
			},
			{
				Name:  "disasm",
				Usage: "disassemble a ROM image without executing it",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "rom", Required: true, Usage: "path to a raw ROM image"},
					&cli.IntFlag{Name: "offset", Value: romBase, Usage: "bus address to start disassembling from"},
					&cli.IntFlag{Name: "count", Value: 32, Usage: "number of instructions to disassemble"},
				},
				Action: disasmCmd,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadBus(path string) (*bus.Bus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't open %s: %w", path, err)
	}
	b := bus.NewCanonical()
	b.LoadROMBytes(raw, 0)
	return b, nil
}

func runCmd(ctx *cli.Context) error {
	b, err := loadBus(ctx.String("rom"))
	if err != nil {
		return err
	}

	var c *cpu.CPU
	if start := ctx.Int("start"); start != 0 {
		c = cpu.NewAt(b, uint16(start))
	} else {
		c = cpu.New(b)
	}

	trace := ctx.Bool("trace")
	rate := ctx.Duration("rate")
	budget := ctx.Int("cycles")
	irqEvery := ctx.Int("irq-every")
	var line irq.Line

	for n := 0; budget == 0 || n < budget; n++ {
		if irqEvery > 0 && n > 0 && n%irqEvery == 0 {
			line.Raise()
		}
		// The line stays asserted until the CPU is at an instruction
		// boundary with interrupts enabled, like a level-triggered source.
		if line.Raised() && c.CyclesRemaining() == 0 && !c.GetInterruptDisable() {
			if err := c.IRQ(); err != nil {
				return err
			}
			line.Lower()
		}
		if trace && c.CyclesRemaining() == 0 {
			for _, line := range disassemble.Range(c.PC, b, 3) {
				fmt.Println(line)
			}
			if rate > 0 {
				time.Sleep(rate)
			}
		}
		if err := c.Clock(); err != nil {
			if _, halted := err.(cpu.HaltedError); halted {
				fmt.Printf("halted: %v\n", err)
				return nil
			}
			return err
		}
	}
	return nil
}

func disasmCmd(ctx *cli.Context) error {
	b, err := loadBus(ctx.String("rom"))
	if err != nil {
		return err
	}
	start := uint16(ctx.Int("offset"))
	for _, line := range disassemble.Range(start, b, ctx.Int("count")) {
		fmt.Println(line)
	}
	return nil
}
