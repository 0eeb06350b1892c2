// main.go - cobra-based demo harness for spectrumcore: boot a ROM image
// and either run it for a bounded frame count or single-step it with a
// disassembly trace.
//
// Grounded on the oisee-z80-optimizer cmd/z80opt/main.go layout: one root
// cobra.Command, subcommands each owning their own flag set, RunE returning
// a wrapped error rather than calling os.Exit directly.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zx48/spectrumcore"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spectrumcore",
		Short: "ZX Spectrum 48K core demo harness",
	}

	var frames int
	bootCmd := &cobra.Command{
		Use:   "boot [rom-file]",
		Short: "Load a ROM image and run it for a number of frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMachine(args[0])
			if err != nil {
				return err
			}
			frame := make([]uint32, 256*192)
			for i := 0; i < frames; i++ {
				m.RunFrame()
				m.Render(frame)
			}
			fmt.Printf("ran %d frames, PC=0x%04X, border=%d, T-states=%d\n",
				frames, m.CPU.PC, m.ULA.Border(), m.CPU.Tstates)
			return nil
		},
	}
	bootCmd.Flags().IntVar(&frames, "frames", 1, "number of 50Hz frames to run")

	var steps int
	disasmCmd := &cobra.Command{
		Use:   "disasm [rom-file]",
		Short: "Single-step the ROM, printing each fetched opcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMachine(args[0])
			if err != nil {
				return err
			}
			m.SetTracer(printTracer{})
			for i := 0; i < steps; i++ {
				m.CPU.Step()
			}
			return nil
		},
	}
	disasmCmd.Flags().IntVar(&steps, "steps", 20, "number of instructions to trace")

	rootCmd.AddCommand(bootCmd, disasmCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadMachine(path string) (*spectrumcore.Machine, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}
	m, err := spectrumcore.NewMachine(rom)
	if err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}
	return m, nil
}

type printTracer struct{}

func (printTracer) OnFetch(pc uint16, opcode byte) {
	fmt.Printf("PC=0x%04X  opcode=0x%02X\n", pc, opcode)
}
