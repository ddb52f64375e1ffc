// hand_asm builds a flat ROM image from a hand-edited hex listing of the
// form the disassembler command prints:
//
//	XXXX OP A1 A2 ...
//
// where XXXX is a bus address and OP/A1/A2 are instruction bytes. Anything
// after the byte fields (the mnemonic column) is ignored, and lines that
// don't start with a 4-digit address are skipped, so the disassembler's own
// output round-trips: disassemble an image, edit it, assemble it back.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
)

var base = flag.Int("base", 0x8000, "Bus address that maps to offset 0 of the output image. Gaps between listed addresses are zero filled.")

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("usage: %s [--base 0x8000] <input> <output>", os.Args[0])
	}
	in := flag.Args()[0]
	out := flag.Args()[1]

	f, err := os.Open(in)
	if err != nil {
		log.Fatalf("Can't open %q for input - %v", in, err)
	}
	defer f.Close()

	var image []byte
	scanner := bufio.NewScanner(f)
	l := 0
	for scanner.Scan() {
		l++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		toks := strings.Fields(line)
		if len(toks[0]) != 4 {
			continue
		}
		addr, err := strconv.ParseUint(toks[0], 16, 16)
		if err != nil {
			continue
		}
		off := int(addr) - *base
		if off < 0 {
			log.Fatalf("Line %d: address %04X is below base %04X", l, addr, *base)
		}
		wrote := false
		for _, tok := range toks[1:] {
			if len(tok) != 2 {
				break
			}
			b, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				break
			}
			for off >= len(image) {
				image = append(image, 0x00)
			}
			image[off] = byte(b)
			off++
			wrote = true
		}
		if !wrote {
			log.Fatalf("Line %d: no instruction bytes after address - %q", l, line)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Error reading %q - %v", in, err)
	}

	if err := os.WriteFile(out, image, 0o644); err != nil {
		log.Fatalf("Can't write output %q - %v", out, err)
	}
}
