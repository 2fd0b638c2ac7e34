// stepper loads a raw binary image into RAM at a given origin, points the
// reset vector at it, and runs a fixed number of instructions through the
// cpu package, dumping register state after each step.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/mhale/go6502core/cpu"
	"github.com/mhale/go6502core/memory"
	"github.com/mhale/go6502core/registers"
)

var (
	origin = flag.Int("origin", 0x0600, "address to load the image at")
	steps  = flag.Int("steps", 1, "number of instructions to execute")
	quiet  = flag.Bool("quiet", false, "suppress per-step register dumps")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s --origin=XXXX --steps=N <filename>", os.Args[0])
	}
	if *origin < 0 || *origin > 0xFFFF {
		log.Fatal("--origin out of range. Must be between 0-65535")
	}

	fn := flag.Args()[0]
	img, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("can't open %s: %v", fn, err)
	}

	ram, err := memory.New(65536)
	if err != nil {
		log.Fatalf("can't allocate RAM: %v", err)
	}
	ram.PowerOn()
	ram.LoadAt(uint16(*origin), img)

	ram.Write(registers.ResetVector, uint8(*origin))
	ram.Write(registers.ResetVector+1, uint8(*origin>>8))

	c := cpu.New()
	c.Reset(ram)

	for i := 0; i < *steps; i++ {
		if err := c.Step(ram); err != nil {
			log.Fatalf("step %d: %v", i, err)
		}
		if !*quiet {
			fmt.Printf("step %4d: %s\n", i, c.Reg.String())
		}
	}
}
