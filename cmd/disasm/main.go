// disasm loads an iNES ROM image and disassembles its PRG-ROM to stdout,
// or prints the three hardware vectors it declares. Diagnostic tooling
// built on the public cartridge/disassemble/bus API - it does not execute
// the program, it only reads the bytes back as text.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/fjmcde/rp2a03/bus"
	"github.com/fjmcde/rp2a03/cartridge"
	"github.com/fjmcde/rp2a03/disassemble"
	"github.com/fjmcde/rp2a03/memmap"
)

var (
	startPC uint16
	count   int
)

func loadBus(path string) (*bus.Bus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cart, err := cartridge.Load(f)
	if err != nil {
		return nil, err
	}
	return bus.New(bus.Def{Cart: cart}), nil
}

func readVector(b *bus.Bus, addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func newRomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rom <file.nes>",
		Short: "Disassemble a ROM's PRG content starting at --start-pc",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBus(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			pc := startPC
			if pc == 0 {
				pc = readVector(b, memmap.ResetVector)
			}
			for i := 0; i < count; i++ {
				line, n := disassemble.Step(pc, b)
				fmt.Println(line)
				if n == 0 {
					// Undocumented opcode: the engine never advances past
					// it, so neither does the disassembler.
					break
				}
				pc += uint16(n)
			}
			return nil
		},
	}
	cmd.Flags().Uint16Var(&startPC, "start-pc", 0, "address to start disassembling at (default: the ROM's reset vector)")
	cmd.Flags().IntVar(&count, "count", 64, "number of instructions to disassemble")
	return cmd
}

func newVectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vectors <file.nes>",
		Short: "Print the NMI/RESET/IRQ vectors a ROM declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBus(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}
			fmt.Printf("NMI:   %.4X\n", readVector(b, memmap.NMIVector))
			fmt.Printf("RESET: %.4X\n", readVector(b, memmap.ResetVector))
			fmt.Printf("IRQ:   %.4X\n", readVector(b, memmap.IRQVector))
			return nil
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:   "disasm",
		Short: "Inspect iNES ROM images without executing them",
	}
	root.AddCommand(newRomCmd(), newVectorsCmd())
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
