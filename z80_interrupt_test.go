package spectrumcore

import "testing"

func TestEIShadowDelaysOneInstruction(t *testing.T) {
	r := newCPUTestRig()
	r.load(0, []byte{
		0xFB, // EI
		0x00, // NOP (must execute before the interrupt is accepted)
		0x00, // NOP
	})
	r.cpu.SP = 0xFFFE
	r.cpu.IM = 1
	r.cpu.Step() // EI
	r.cpu.RequestInterrupt()

	r.cpu.Step() // the NOP immediately after EI: interrupt must NOT fire here
	if r.cpu.PC != 2 {
		t.Fatalf("interrupt fired during EI shadow; PC = 0x%04X, want 0x0002", r.cpu.PC)
	}

	tstates := r.cpu.Step() // interrupt should fire now
	if r.cpu.PC != 0x0038 {
		t.Fatalf("PC after IM1 interrupt = 0x%04X, want 0x0038", r.cpu.PC)
	}
	if tstates != 13 {
		t.Fatalf("IM1 interrupt took %d t-states, want 13", tstates)
	}
	if r.cpu.IFF1 || r.cpu.IFF2 {
		t.Fatalf("IFF1/IFF2 should be cleared on interrupt acceptance")
	}
}

func TestIM2VectorsThroughTable(t *testing.T) {
	r := newCPUTestRig()
	r.load(0, []byte{0x00})
	r.cpu.SP = 0xFFFE
	r.cpu.I = 0x40
	r.cpu.IM = 2
	r.cpu.IFF1 = true
	r.bus.mem[0x40FF] = 0x00
	r.bus.mem[0x4100] = 0x90 // vector -> 0x9000
	r.cpu.RequestInterrupt()

	tstates := r.cpu.Step()
	if r.cpu.PC != 0x9000 {
		t.Fatalf("PC = 0x%04X, want 0x9000", r.cpu.PC)
	}
	if tstates != 19 {
		t.Fatalf("IM2 interrupt took %d t-states, want 19", tstates)
	}
}

func TestHaltWakesOnInterrupt(t *testing.T) {
	r := newCPUTestRig()
	r.load(0, []byte{0x76}) // HALT
	r.cpu.SP = 0xFFFE
	r.cpu.IM = 1
	r.cpu.IFF1 = true
	r.cpu.Step() // enters HALT
	r.cpu.Step() // idles
	r.cpu.RequestInterrupt()
	r.cpu.Step() // should service the interrupt and clear HALT
	if r.cpu.Halted {
		t.Fatalf("HALT not cleared on interrupt acceptance")
	}
	if r.cpu.PC != 0x0038 {
		t.Fatalf("PC = 0x%04X, want 0x0038", r.cpu.PC)
	}
}

func TestNMITakesPriorityAndSetsVector(t *testing.T) {
	r := newCPUTestRig()
	r.load(0, []byte{0x00})
	r.cpu.SP = 0xFFFE
	r.cpu.IFF1 = true
	r.cpu.IFF2 = true
	r.cpu.RequestNMI()
	tstates := r.cpu.Step()
	if r.cpu.PC != 0x0066 {
		t.Fatalf("PC = 0x%04X, want 0x0066", r.cpu.PC)
	}
	if tstates != 11 {
		t.Fatalf("NMI took %d t-states, want 11", tstates)
	}
	if r.cpu.IFF1 {
		t.Fatalf("IFF1 should be false after NMI")
	}
	if !r.cpu.IFF2 {
		t.Fatalf("IFF2 should retain pre-NMI IFF1 value (true)")
	}
}
