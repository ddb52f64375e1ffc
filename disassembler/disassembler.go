// disassembler loads a raw binary image into the bus's ROM region and
// disassembles it to stdout starting at a given PC, continuing until the
// loaded bytes are exhausted.
package main

import (
	"fmt"
	"log"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/earthPerson-001/emulator-6502/bus"
	"github.com/earthPerson-001/emulator-6502/disassemble"
)

func main() {
	app := &cli.App{
		Name:      "disassembler",
		Usage:     "disassemble a raw 6502 binary image",
		ArgsUsage: "<filename>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "start",
				Value: 0x8000,
				Usage: "bus address to load the image at, and to start disassembling from",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("usage: %s [--start <addr>] <filename>", os.Args[0])
	}
	fn := ctx.Args().Get(0)

	raw, err := os.ReadFile(fn)
	if err != nil {
		return fmt.Errorf("can't open %s: %w", fn, err)
	}

	b := bus.NewCanonical()
	start := uint16(ctx.Int("start"))
	// ROM is mapped starting at 0x8000 in the canonical layout; translate
	// the requested bus address into a ROM-local offset.
	const romBase = 0x8000
	if start < romBase {
		return fmt.Errorf("start address 0x%04X is below the ROM window (0x%04X)", start, romBase)
	}
	b.LoadROMBytes(raw, int(start-romBase))

	fmt.Printf("0x%X bytes loaded at 0x%04X\n", len(raw), start)

	pc := start
	cnt := 0
	for cnt < len(raw) {
		dis, off := disassemble.Step(pc, b)
		pc += uint16(off)
		cnt += off
		fmt.Println(dis)
	}
	return nil
}
