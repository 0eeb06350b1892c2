package spectrumcore

import "testing"

func TestLDAIXPlusD(t *testing.T) {
	r := newCPUTestRig()
	r.load(0, []byte{
		0xDD, 0x7E, 0x05, // LD A,(IX+5)
	})
	r.cpu.IX = 0x9000
	r.bus.mem[0x9005] = 0x77
	tstates := r.cpu.Step()
	if r.cpu.A != 0x77 {
		t.Fatalf("A = 0x%02X, want 0x77", r.cpu.A)
	}
	// prefix(4) + LD r,(HL)-style base(7) + displacement calc(5) = 16,
	// matching the documented DD-prefixed (IX+d) load timing.
	if tstates != 16 {
		t.Fatalf("LD A,(IX+d) took %d t-states, want 16", tstates)
	}
}

func TestDDPrefixWastedOnNonHLInstruction(t *testing.T) {
	r := newCPUTestRig()
	r.load(0, []byte{
		0xDD, 0x78, // DD prefix + LD A,B (doesn't touch HL: prefix is wasted)
	})
	r.cpu.B = 0x42
	tstates := r.cpu.Step()
	if r.cpu.A != 0x42 {
		t.Fatalf("A = 0x%02X, want 0x42", r.cpu.A)
	}
	if tstates != 8 { // prefix(4) + LD r,r(4)
		t.Fatalf("wasted DD prefix took %d t-states, want 8", tstates)
	}
}

func TestIndexedBitOpCopiesResultIntoNamedRegister(t *testing.T) {
	r := newCPUTestRig()
	r.load(0, []byte{
		0xDD, 0xCB, 0x02, 0xC6, // SET 0,(IX+2) via DDCB; op low bits = 6 -> (HL) slot, no copy
	})
	r.cpu.IX = 0x9000
	r.bus.mem[0x9002] = 0x00
	r.cpu.Step()
	if r.bus.mem[0x9002] != 0x01 {
		t.Fatalf("memory at (IX+2) = 0x%02X, want 0x01", r.bus.mem[0x9002])
	}

	r.load(0, []byte{
		0xDD, 0xCB, 0x02, 0x00, // RLC (IX+2),B — low 3 bits = 0 (B), undocumented copy
	})
	r.cpu.IX = 0x9000
	r.bus.mem[0x9002] = 0x81
	r.cpu.Step()
	if r.bus.mem[0x9002] != 0x03 {
		t.Fatalf("memory at (IX+2) = 0x%02X, want 0x03", r.bus.mem[0x9002])
	}
	if r.cpu.B != 0x03 {
		t.Fatalf("B = 0x%02X, want 0x03 (undocumented copy-back)", r.cpu.B)
	}
}
