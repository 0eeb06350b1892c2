// z80_ops_ed.go - 0xED extended table: I/O, block transfer/search/IO,
// 16-bit (nn) loads, NEG, interrupt-mode/RETN/RETI, RRD/RLD.
// Undefined opcodes behave as an 8 t-state NOP (§4.2).

package spectrumcore

func (c *CPU) initEDOps() {
	for i := range c.edOps {
		c.edOps[i] = (*CPU).opEDUnimplemented
	}

	type rp struct {
		get func(*CPU) uint16
		set func(*CPU, uint16)
	}
	bc := rp{(*CPU).BC, (*CPU).SetBC}
	de := rp{(*CPU).DE, (*CPU).SetDE}
	hl := rp{(*CPU).HL, (*CPU).SetHL}
	sp := rp{func(c *CPU) uint16 { return c.SP }, func(c *CPU, v uint16) { c.SP = v }}
	pairs := map[byte]rp{0x40: bc, 0x50: de, 0x60: hl, 0x70: sp}

	for base, pair := range pairs {
		base := base
		p := pair
		c.edOps[base+0] = func(cpu *CPU) { // IN r,(C)
			v := cpu.in(cpu.BC())
			if base != 0x70 { // IN F,(C) at 0x70 sets flags only
				cpu.writeReg8Plain((base>>3)&0x07, v)
			}
			cpu.updateInFlags(v)
			cpu.tick(12)
		}
		c.edOps[base+1] = func(cpu *CPU) { // OUT (C),r
			var v byte
			if base == 0x70 {
				v = 0
			} else {
				v = cpu.readReg8Plain((base >> 3) & 0x07)
			}
			cpu.out(cpu.BC(), v)
			cpu.tick(12)
		}
		c.edOps[base+2] = func(cpu *CPU) { cpu.sbcHL(p.get(cpu)); cpu.tick(15) }
		c.edOps[base+3] = func(cpu *CPU) { // LD (nn),rr
			addr := cpu.fetchWord()
			cpu.mem.WriteWord(addr, p.get(cpu))
			cpu.WZ = addr + 1
			cpu.tick(20)
		}
		c.edOps[base+0x0A] = func(cpu *CPU) { cpu.adcHL(p.get(cpu)); cpu.tick(15) }
		c.edOps[base+0x0B] = func(cpu *CPU) {
			addr := cpu.fetchWord()
			p.set(cpu, cpu.mem.ReadWord(addr))
			cpu.WZ = addr + 1
			cpu.tick(20)
		}
	}

	for _, base := range []byte{0x40, 0x48, 0x50, 0x58, 0x60, 0x68, 0x70, 0x78} {
		c.edOps[base+4] = (*CPU).opNEG
		c.edOps[base+5] = (*CPU).opRETN
		c.edOps[base+0x0D] = (*CPU).opRETI
	}
	c.edOps[0x4D] = (*CPU).opRETI

	c.edOps[0x46] = func(cpu *CPU) { cpu.IM = 0; cpu.tick(8) }
	c.edOps[0x4E] = func(cpu *CPU) { cpu.IM = 0; cpu.tick(8) }
	c.edOps[0x56] = func(cpu *CPU) { cpu.IM = 1; cpu.tick(8) }
	c.edOps[0x5E] = func(cpu *CPU) { cpu.IM = 2; cpu.tick(8) }
	c.edOps[0x66] = func(cpu *CPU) { cpu.IM = 0; cpu.tick(8) }
	c.edOps[0x6E] = func(cpu *CPU) { cpu.IM = 0; cpu.tick(8) }
	c.edOps[0x76] = func(cpu *CPU) { cpu.IM = 1; cpu.tick(8) }
	c.edOps[0x7E] = func(cpu *CPU) { cpu.IM = 2; cpu.tick(8) }

	c.edOps[0x47] = func(cpu *CPU) { cpu.I = cpu.A; cpu.tick(9) }
	c.edOps[0x4F] = func(cpu *CPU) { cpu.R = cpu.A; cpu.tick(9) }
	c.edOps[0x57] = func(cpu *CPU) { cpu.A = cpu.I; cpu.updateLDAIRFlags(cpu.A); cpu.tick(9) }
	c.edOps[0x5F] = func(cpu *CPU) { cpu.A = cpu.R; cpu.updateLDAIRFlags(cpu.A); cpu.tick(9) }

	c.edOps[0x67] = (*CPU).opRRD
	c.edOps[0x6F] = (*CPU).opRLD

	c.edOps[0xA0] = func(cpu *CPU) { cpu.opLDI(1) }
	c.edOps[0xA8] = func(cpu *CPU) { cpu.opLDI(-1) }
	c.edOps[0xB0] = func(cpu *CPU) { cpu.opLDIR(1) }
	c.edOps[0xB8] = func(cpu *CPU) { cpu.opLDIR(-1) }

	c.edOps[0xA1] = func(cpu *CPU) { cpu.opCPI(1) }
	c.edOps[0xA9] = func(cpu *CPU) { cpu.opCPI(-1) }
	c.edOps[0xB1] = func(cpu *CPU) { cpu.opCPIR(1) }
	c.edOps[0xB9] = func(cpu *CPU) { cpu.opCPIR(-1) }

	c.edOps[0xA2] = func(cpu *CPU) { cpu.opINI(1) }
	c.edOps[0xAA] = func(cpu *CPU) { cpu.opINI(-1) }
	c.edOps[0xB2] = func(cpu *CPU) { cpu.opINIR(1) }
	c.edOps[0xBA] = func(cpu *CPU) { cpu.opINIR(-1) }

	c.edOps[0xA3] = func(cpu *CPU) { cpu.opOUTI(1) }
	c.edOps[0xAB] = func(cpu *CPU) { cpu.opOUTI(-1) }
	c.edOps[0xB3] = func(cpu *CPU) { cpu.opOTIR(1) }
	c.edOps[0xBB] = func(cpu *CPU) { cpu.opOTIR(-1) }
}

func (c *CPU) opEDUnimplemented() { c.tick(8) }

func (c *CPU) opNEG() {
	v := c.A
	c.A = 0
	c.performALU(aluSub, v)
	c.tick(8)
}

func (c *CPU) opRETN() {
	c.IFF1 = c.IFF2
	c.PC = c.popWord()
	c.tick(14)
}

func (c *CPU) opRETI() {
	c.IFF1 = c.IFF2
	c.PC = c.popWord()
	c.tick(14)
}

func (c *CPU) opRRD() {
	addr := c.HL()
	mem := c.read(addr)
	newMem := (c.A&0x0F)<<4 | mem>>4
	newA := c.A&0xF0 | mem&0x0F
	c.write(addr, newMem)
	c.A = newA
	c.WZ = addr + 1
	c.F = c.F & flagC
	c.setSZXY(c.A)
	if parity8(c.A) {
		c.F |= flagPV
	}
	c.tick(18)
}

func (c *CPU) opRLD() {
	addr := c.HL()
	mem := c.read(addr)
	newMem := mem<<4 | c.A&0x0F
	newA := c.A&0xF0 | mem>>4
	c.write(addr, newMem)
	c.A = newA
	c.WZ = addr + 1
	c.F = c.F & flagC
	c.setSZXY(c.A)
	if parity8(c.A) {
		c.F |= flagPV
	}
	c.tick(18)
}

func (c *CPU) opLDI(step int) {
	value := c.read(c.HL())
	c.write(c.DE(), value)
	c.SetHL(uint16(int32(c.HL()) + int32(step)))
	c.SetDE(uint16(int32(c.DE()) + int32(step)))
	bc := c.BC() - 1
	c.SetBC(bc)
	c.updateBlockTransferFlags(c.A+value, bc)
	c.tick(16)
}

func (c *CPU) opLDIR(step int) {
	c.opLDI(step)
	if c.BC() != 0 {
		c.PC -= 2
		c.WZ = c.PC + 1
		c.tick(5)
	}
}

func (c *CPU) opCPI(step int) {
	value := c.read(c.HL())
	c.SetHL(uint16(int32(c.HL()) + int32(step)))
	bc := c.BC() - 1
	c.SetBC(bc)
	c.updateBlockCompareFlags(c.A, value, bc)
	c.WZ += uint16(step)
	c.tick(16)
}

func (c *CPU) opCPIR(step int) {
	c.opCPI(step)
	if c.BC() != 0 && !c.Flag(flagZ) {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opINI(step int) {
	value := c.in(c.BC())
	c.write(c.HL(), value)
	c.SetHL(uint16(int32(c.HL()) + int32(step)))
	c.B = c.dec8Silent(c.B)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) opINIR(step int) {
	c.opINI(step)
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opOUTI(step int) {
	value := c.read(c.HL())
	c.SetHL(uint16(int32(c.HL()) + int32(step)))
	c.B = c.dec8Silent(c.B)
	c.out(c.BC(), value)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) opOTIR(step int) {
	c.opOUTI(step)
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

// dec8Silent decrements without touching flags beyond what the caller
// computes itself afterwards (block I/O ops derive Z from the new B value
// but compute H/PV/N differently from plain DEC).
func (c *CPU) dec8Silent(v byte) byte { return v - 1 }
