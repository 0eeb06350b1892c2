// z80_ops_base.go - primary 256-entry opcode table and its handlers.
//
// Structure mirrors the teacher's initBaseOps/opXxx split in cpu_z80.go:
// loops install the regular LD r,r / LD r,n / ALU r,r families, then each
// irregular opcode gets an explicit table slot.

package spectrumcore

// readReg8/writeReg8 honour the active DD/FD substitution: register codes
// 4 (H) and 5 (L) become IXh/IXl or IYh/IYl while a prefix is active, and
// code 6 ((HL)) becomes (IX+d)/(IY+d), with hlOrIndexed fetching the
// displacement from the instruction stream at the point of access.
func (c *CPU) readReg8(code byte) byte {
	switch code {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.indexHigh()
	case 5:
		return c.indexLow()
	case 6:
		return c.read(c.hlOrIndexed())
	case 7:
		return c.A
	}
	return 0
}

func (c *CPU) writeReg8(code byte, value byte) {
	switch code {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.setIndexHigh(value)
	case 5:
		c.setIndexLow(value)
	case 6:
		c.write(c.hlOrIndexed(), value)
	case 7:
		c.A = value
	}
}

func (c *CPU) readReg8Plain(code byte) byte {
	switch code {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.read(c.HL())
	case 7:
		return c.A
	}
	return 0
}

func (c *CPU) writeReg8Plain(code byte, value byte) {
	switch code {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.H = value
	case 5:
		c.L = value
	case 6:
		c.write(c.HL(), value)
	case 7:
		c.A = value
	}
}

func (c *CPU) indexHigh() byte {
	switch c.idxMode {
	case idxIX:
		return byte(c.IX >> 8)
	case idxIY:
		return byte(c.IY >> 8)
	default:
		return c.H
	}
}

func (c *CPU) indexLow() byte {
	switch c.idxMode {
	case idxIX:
		return byte(c.IX)
	case idxIY:
		return byte(c.IY)
	default:
		return c.L
	}
}

func (c *CPU) setIndexHigh(v byte) {
	switch c.idxMode {
	case idxIX:
		c.IX = c.IX&0x00FF | uint16(v)<<8
	case idxIY:
		c.IY = c.IY&0x00FF | uint16(v)<<8
	default:
		c.H = v
	}
}

func (c *CPU) setIndexLow(v byte) {
	switch c.idxMode {
	case idxIX:
		c.IX = c.IX&0xFF00 | uint16(v)
	case idxIY:
		c.IY = c.IY&0xFF00 | uint16(v)
	default:
		c.L = v
	}
}

// hlOrIndexed resolves the (HL)/(IX+d)/(IY+d) effective address for a plain
// (non-DDCB/FDCB) instruction, fetching the displacement byte if prefixed.
func (c *CPU) hlOrIndexed() uint16 {
	switch c.idxMode {
	case idxIX:
		d := int8(c.fetchByte())
		c.tick(5) // internal cycles computing IX+d, beyond the displacement fetch
		addr := uint16(int32(c.IX) + int32(d))
		c.WZ = addr
		return addr
	case idxIY:
		d := int8(c.fetchByte())
		c.tick(5)
		addr := uint16(int32(c.IY) + int32(d))
		c.WZ = addr
		return addr
	default:
		return c.HL()
	}
}

func (c *CPU) initBaseOps() {
	for i := range c.baseOps {
		c.baseOps[i] = (*CPU).opUnimplemented
	}

	c.baseOps[0x00] = (*CPU).opNOP
	c.baseOps[0x76] = (*CPU).opHALT

	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		dest, src := byte((op>>3)&0x07), byte(op&0x07)
		c.baseOps[op] = func(cpu *CPU) { cpu.opLDRegReg(dest, src) }
	}

	ldImm := map[byte]byte{0x06: 0, 0x0E: 1, 0x16: 2, 0x1E: 3, 0x26: 4, 0x2E: 5, 0x36: 6, 0x3E: 7}
	for op, dest := range ldImm {
		d := dest
		c.baseOps[op] = func(cpu *CPU) { cpu.opLDRegImm(d) }
	}

	aluRanges := []struct {
		base byte
		op   aluOp
	}{
		{0x80, aluAdd}, {0x88, aluAdc}, {0x90, aluSub}, {0x98, aluSbc},
		{0xA0, aluAnd}, {0xA8, aluXor}, {0xB0, aluOr}, {0xB8, aluCp},
	}
	for _, r := range aluRanges {
		for i := byte(0); i <= 7; i++ {
			op := r.base + i
			aluKind := r.op
			src := i
			c.baseOps[op] = func(cpu *CPU) { cpu.opALUReg(aluKind, src) }
		}
	}

	c.baseOps[0xC6] = func(cpu *CPU) { cpu.opALUImm(aluAdd) }
	c.baseOps[0xCE] = func(cpu *CPU) { cpu.opALUImm(aluAdc) }
	c.baseOps[0xD6] = func(cpu *CPU) { cpu.opALUImm(aluSub) }
	c.baseOps[0xDE] = func(cpu *CPU) { cpu.opALUImm(aluSbc) }
	c.baseOps[0xE6] = func(cpu *CPU) { cpu.opALUImm(aluAnd) }
	c.baseOps[0xEE] = func(cpu *CPU) { cpu.opALUImm(aluXor) }
	c.baseOps[0xF6] = func(cpu *CPU) { cpu.opALUImm(aluOr) }
	c.baseOps[0xFE] = func(cpu *CPU) { cpu.opALUImm(aluCp) }

	c.baseOps[0x27] = (*CPU).opDAA
	c.baseOps[0x2F] = (*CPU).opCPL
	c.baseOps[0x37] = (*CPU).opSCF
	c.baseOps[0x3F] = (*CPU).opCCF

	c.baseOps[0x01] = (*CPU).opLDBCNN
	c.baseOps[0x11] = (*CPU).opLDDENN
	c.baseOps[0x21] = (*CPU).opLDHLNN
	c.baseOps[0x31] = (*CPU).opLDSPNN
	c.baseOps[0x09] = func(cpu *CPU) { cpu.opADDHLIdx(cpu.BC()); cpu.tick(11) }
	c.baseOps[0x19] = func(cpu *CPU) { cpu.opADDHLIdx(cpu.DE()); cpu.tick(11) }
	c.baseOps[0x29] = func(cpu *CPU) { cpu.opADDHLIdx(cpu.indexRegOrHL()); cpu.tick(11) }
	c.baseOps[0x39] = func(cpu *CPU) { cpu.opADDHLIdx(cpu.SP); cpu.tick(11) }
	c.baseOps[0x03] = func(cpu *CPU) { cpu.SetBC(cpu.BC() + 1); cpu.tick(6) }
	c.baseOps[0x13] = func(cpu *CPU) { cpu.SetDE(cpu.DE() + 1); cpu.tick(6) }
	c.baseOps[0x23] = (*CPU).opINCIndexReg
	c.baseOps[0x33] = func(cpu *CPU) { cpu.SP++; cpu.tick(6) }
	c.baseOps[0x0B] = func(cpu *CPU) { cpu.SetBC(cpu.BC() - 1); cpu.tick(6) }
	c.baseOps[0x1B] = func(cpu *CPU) { cpu.SetDE(cpu.DE() - 1); cpu.tick(6) }
	c.baseOps[0x2B] = (*CPU).opDECIndexReg
	c.baseOps[0x3B] = func(cpu *CPU) { cpu.SP--; cpu.tick(6) }

	c.baseOps[0xC5] = func(cpu *CPU) { cpu.pushWord(cpu.BC()); cpu.tick(11) }
	c.baseOps[0xD5] = func(cpu *CPU) { cpu.pushWord(cpu.DE()); cpu.tick(11) }
	c.baseOps[0xE5] = func(cpu *CPU) { cpu.pushWord(cpu.indexRegOrHL()); cpu.tick(11) }
	c.baseOps[0xF5] = func(cpu *CPU) { cpu.pushWord(cpu.AF()); cpu.tick(11) }
	c.baseOps[0xC1] = func(cpu *CPU) { cpu.SetBC(cpu.popWord()); cpu.tick(10) }
	c.baseOps[0xD1] = func(cpu *CPU) { cpu.SetDE(cpu.popWord()); cpu.tick(10) }
	c.baseOps[0xE1] = func(cpu *CPU) { cpu.setIndexRegOrHL(cpu.popWord()); cpu.tick(10) }
	c.baseOps[0xF1] = func(cpu *CPU) { cpu.SetAF(cpu.popWord()); cpu.tick(10) }

	c.baseOps[0xC3] = func(cpu *CPU) { cpu.PC = cpu.fetchWord(); cpu.tick(10) }
	c.baseOps[0x18] = (*CPU).opJR
	c.baseOps[0x10] = (*CPU).opDJNZ
	c.baseOps[0xCD] = func(cpu *CPU) {
		addr := cpu.fetchWord()
		cpu.pushWord(cpu.PC)
		cpu.PC = addr
		cpu.tick(17)
	}
	c.baseOps[0xC9] = func(cpu *CPU) { cpu.PC = cpu.popWord(); cpu.tick(10) }

	c.baseOps[0xE3] = (*CPU).opEXSPIndexed
	c.baseOps[0x08] = func(cpu *CPU) { cpu.exAF(); cpu.tick(4) }
	c.baseOps[0xEB] = func(cpu *CPU) { cpu.D, cpu.H = cpu.H, cpu.D; cpu.E, cpu.L = cpu.L, cpu.E; cpu.tick(4) }
	c.baseOps[0xD9] = func(cpu *CPU) { cpu.exx(); cpu.tick(4) }
	c.baseOps[0xE9] = func(cpu *CPU) { cpu.PC = cpu.indexRegOrHL(); cpu.tick(4) }

	c.baseOps[0x22] = (*CPU).opLDAddrHL
	c.baseOps[0x2A] = (*CPU).opLDHLAddr
	c.baseOps[0x32] = func(cpu *CPU) {
		addr := cpu.fetchWord()
		cpu.write(addr, cpu.A)
		cpu.WZ = addr + 1
		cpu.tick(13)
	}
	c.baseOps[0x3A] = func(cpu *CPU) {
		addr := cpu.fetchWord()
		cpu.A = cpu.read(addr)
		cpu.WZ = addr + 1
		cpu.tick(13)
	}
	c.baseOps[0x02] = func(cpu *CPU) { cpu.write(cpu.BC(), cpu.A); cpu.tick(7) }
	c.baseOps[0x0A] = func(cpu *CPU) { cpu.A = cpu.read(cpu.BC()); cpu.tick(7) }
	c.baseOps[0x12] = func(cpu *CPU) { cpu.write(cpu.DE(), cpu.A); cpu.tick(7) }
	c.baseOps[0x1A] = func(cpu *CPU) { cpu.A = cpu.read(cpu.DE()); cpu.tick(7) }
	c.baseOps[0xF9] = func(cpu *CPU) { cpu.SP = cpu.indexRegOrHL(); cpu.tick(6) }

	c.baseOps[0xD3] = (*CPU).opOUTNA
	c.baseOps[0xDB] = (*CPU).opINAN

	c.baseOps[0x07] = (*CPU).opRLCA
	c.baseOps[0x0F] = (*CPU).opRRCA
	c.baseOps[0x17] = (*CPU).opRLA
	c.baseOps[0x1F] = (*CPU).opRRA

	for i, v := range []uint16{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		op := byte(0xC7 + i*8)
		vector := v
		c.baseOps[op] = func(cpu *CPU) {
			cpu.pushWord(cpu.PC)
			cpu.PC = vector
			cpu.tick(11)
		}
	}

	c.baseOps[0x04] = func(cpu *CPU) { cpu.B = cpu.inc8(cpu.B); cpu.tick(4) }
	c.baseOps[0x0C] = func(cpu *CPU) { cpu.C = cpu.inc8(cpu.C); cpu.tick(4) }
	c.baseOps[0x14] = func(cpu *CPU) { cpu.D = cpu.inc8(cpu.D); cpu.tick(4) }
	c.baseOps[0x1C] = func(cpu *CPU) { cpu.E = cpu.inc8(cpu.E); cpu.tick(4) }
	c.baseOps[0x24] = func(cpu *CPU) { cpu.setIndexHigh(cpu.inc8(cpu.indexHigh())); cpu.tick(4) }
	c.baseOps[0x2C] = func(cpu *CPU) { cpu.setIndexLow(cpu.inc8(cpu.indexLow())); cpu.tick(4) }
	c.baseOps[0x34] = func(cpu *CPU) {
		addr := cpu.hlOrIndexed()
		cpu.write(addr, cpu.inc8(cpu.read(addr)))
		cpu.tick(11)
	}
	c.baseOps[0x3C] = func(cpu *CPU) { cpu.A = cpu.inc8(cpu.A); cpu.tick(4) }

	c.baseOps[0x05] = func(cpu *CPU) { cpu.B = cpu.dec8(cpu.B); cpu.tick(4) }
	c.baseOps[0x0D] = func(cpu *CPU) { cpu.C = cpu.dec8(cpu.C); cpu.tick(4) }
	c.baseOps[0x15] = func(cpu *CPU) { cpu.D = cpu.dec8(cpu.D); cpu.tick(4) }
	c.baseOps[0x1D] = func(cpu *CPU) { cpu.E = cpu.dec8(cpu.E); cpu.tick(4) }
	c.baseOps[0x25] = func(cpu *CPU) { cpu.setIndexHigh(cpu.dec8(cpu.indexHigh())); cpu.tick(4) }
	c.baseOps[0x2D] = func(cpu *CPU) { cpu.setIndexLow(cpu.dec8(cpu.indexLow())); cpu.tick(4) }
	c.baseOps[0x35] = func(cpu *CPU) {
		addr := cpu.hlOrIndexed()
		cpu.write(addr, cpu.dec8(cpu.read(addr)))
		cpu.tick(11)
	}
	c.baseOps[0x3D] = func(cpu *CPU) { cpu.A = cpu.dec8(cpu.A); cpu.tick(4) }

	jpConds := map[byte]byte{0xC2: flagZ, 0xCA: flagZ, 0xD2: flagC, 0xDA: flagC, 0xE2: flagPV, 0xEA: flagPV, 0xF2: flagS, 0xFA: flagS}
	jpWant := map[byte]bool{0xC2: false, 0xCA: true, 0xD2: false, 0xDA: true, 0xE2: false, 0xEA: true, 0xF2: false, 0xFA: true}
	for op, mask := range jpConds {
		m, want := mask, jpWant[op]
		c.baseOps[op] = func(cpu *CPU) { cpu.jpCond(cpu.Flag(m) == want) }
	}

	jrConds := map[byte]byte{0x20: flagZ, 0x28: flagZ, 0x30: flagC, 0x38: flagC}
	jrWant := map[byte]bool{0x20: false, 0x28: true, 0x30: false, 0x38: true}
	for op, mask := range jrConds {
		m, want := mask, jrWant[op]
		c.baseOps[op] = func(cpu *CPU) { cpu.jrCond(cpu.Flag(m) == want) }
	}

	callConds := map[byte]byte{0xC4: flagZ, 0xCC: flagZ, 0xD4: flagC, 0xDC: flagC, 0xE4: flagPV, 0xEC: flagPV, 0xF4: flagS, 0xFC: flagS}
	callWant := map[byte]bool{0xC4: false, 0xCC: true, 0xD4: false, 0xDC: true, 0xE4: false, 0xEC: true, 0xF4: false, 0xFC: true}
	for op, mask := range callConds {
		m, want := mask, callWant[op]
		c.baseOps[op] = func(cpu *CPU) { cpu.callCond(cpu.Flag(m) == want) }
	}

	retConds := map[byte]byte{0xC0: flagZ, 0xC8: flagZ, 0xD0: flagC, 0xD8: flagC, 0xE0: flagPV, 0xE8: flagPV, 0xF0: flagS, 0xF8: flagS}
	retWant := map[byte]bool{0xC0: false, 0xC8: true, 0xD0: false, 0xD8: true, 0xE0: false, 0xE8: true, 0xF0: false, 0xF8: true}
	for op, mask := range retConds {
		m, want := mask, retWant[op]
		c.baseOps[op] = func(cpu *CPU) { cpu.retCond(cpu.Flag(m) == want) }
	}

	c.baseOps[0xCB] = (*CPU).opCBPrefix
	c.baseOps[0xED] = (*CPU).opEDPrefix
	c.baseOps[0xDD] = func(cpu *CPU) { cpu.opIndexPrefix(idxIX) }
	c.baseOps[0xFD] = func(cpu *CPU) { cpu.opIndexPrefix(idxIY) }

	c.baseOps[0xF3] = func(cpu *CPU) { cpu.IFF1, cpu.IFF2 = false, false; cpu.eiShadow = false; cpu.tick(4) }
	c.baseOps[0xFB] = func(cpu *CPU) { cpu.IFF1, cpu.IFF2 = true, true; cpu.eiShadow = true; cpu.tick(4) }
}

func (c *CPU) indexRegOrHL() uint16 {
	switch c.idxMode {
	case idxIX:
		return c.IX
	case idxIY:
		return c.IY
	default:
		return c.HL()
	}
}

func (c *CPU) setIndexRegOrHL(v uint16) {
	switch c.idxMode {
	case idxIX:
		c.IX = v
	case idxIY:
		c.IY = v
	default:
		c.SetHL(v)
	}
}

func (c *CPU) opUnimplemented() { c.tick(4) }
func (c *CPU) opNOP()           { c.tick(4) }

func (c *CPU) opHALT() {
	c.Halted = true
	c.tick(4)
}

func (c *CPU) opLDRegReg(dest, src byte) {
	v := c.readReg8(src)
	c.writeReg8(dest, v)
	if dest == 6 || src == 6 {
		c.tick(7)
	} else {
		c.tick(4)
	}
}

func (c *CPU) opLDRegImm(dest byte) {
	if dest == 6 {
		addr := c.hlOrIndexed()
		v := c.fetchByte()
		c.write(addr, v)
		c.tick(10)
		return
	}
	v := c.fetchByte()
	c.writeReg8(dest, v)
	c.tick(7)
}

func (c *CPU) opALUReg(op aluOp, src byte) {
	c.performALU(op, c.readReg8(src))
	if src == 6 {
		c.tick(7)
	} else {
		c.tick(4)
	}
}

func (c *CPU) opALUImm(op aluOp) {
	c.performALU(op, c.fetchByte())
	c.tick(7)
}

func (c *CPU) opDAA() {
	a := c.A
	adj := byte(0)
	carry := c.Flag(flagC)
	if c.Flag(flagH) || (!c.Flag(flagN) && a&0x0F > 0x09) {
		adj |= 0x06
	}
	if carry || (!c.Flag(flagN) && a > 0x99) {
		adj |= 0x60
	}
	var res byte
	if c.Flag(flagN) {
		res = a - adj
	} else {
		res = a + adj
	}
	c.A = res
	c.F &^= flagS | flagZ | flagPV | flagH | flagC | flagX | flagY
	if res == 0 {
		c.F |= flagZ
	}
	if res&0x80 != 0 {
		c.F |= flagS
	}
	if parity8(res) {
		c.F |= flagPV
	}
	if c.Flag(flagN) {
		if (a^res)&0x10 != 0 {
			c.F |= flagH
		}
	} else if (a&0x0F)+adj&0x0F > 0x0F {
		c.F |= flagH
	}
	if adj >= 0x60 {
		c.F |= flagC
	}
	c.F |= res & (flagX | flagY)
	c.tick(4)
}

func (c *CPU) opCPL() {
	c.A = ^c.A
	c.F = c.F&(flagS|flagZ|flagPV|flagC) | flagH | flagN | c.A&(flagX|flagY)
	c.tick(4)
}

func (c *CPU) opSCF() {
	c.F = c.F&(flagS|flagZ|flagPV) | flagC | c.A&(flagX|flagY)
	c.tick(4)
}

func (c *CPU) opCCF() {
	wasC := c.Flag(flagC)
	c.F = c.F&(flagS|flagZ|flagPV) | c.A&(flagX|flagY)
	if wasC {
		c.F |= flagH
	} else {
		c.F |= flagC
	}
	c.tick(4)
}

func (c *CPU) opLDBCNN() { c.SetBC(c.fetchWord()); c.tick(10) }
func (c *CPU) opLDDENN() { c.SetDE(c.fetchWord()); c.tick(10) }
func (c *CPU) opLDHLNN() {
	v := c.fetchWord()
	c.setIndexRegOrHL(v)
	c.tick(10)
}
func (c *CPU) opLDSPNN() { c.SP = c.fetchWord(); c.tick(10) }

func (c *CPU) opADDHLIdx(value uint16) {
	cur := c.indexRegOrHL()
	c.addHLlike(cur, value, c.setIndexRegOrHL)
}

func (c *CPU) opINCIndexReg() {
	c.setIndexRegOrHL(c.indexRegOrHL() + 1)
	c.tick(6)
}

func (c *CPU) opDECIndexReg() {
	c.setIndexRegOrHL(c.indexRegOrHL() - 1)
	c.tick(6)
}

func (c *CPU) opJR() {
	d := int8(c.fetchByte())
	c.PC = uint16(int32(c.PC) + int32(d))
	c.tick(12)
}

func (c *CPU) opDJNZ() {
	d := int8(c.fetchByte())
	c.B--
	if c.B != 0 {
		c.PC = uint16(int32(c.PC) + int32(d))
		c.tick(13)
	} else {
		c.tick(8)
	}
}

func (c *CPU) opEXSPIndexed() {
	lo := c.read(c.SP)
	hi := c.read(c.SP + 1)
	mem := uint16(hi)<<8 | uint16(lo)
	reg := c.indexRegOrHL()
	c.write(c.SP, byte(reg))
	c.write(c.SP+1, byte(reg>>8))
	c.setIndexRegOrHL(mem)
	c.WZ = mem
	c.tick(19)
}

func (c *CPU) opLDAddrHL() {
	addr := c.fetchWord()
	v := c.indexRegOrHL()
	c.write(addr, byte(v))
	c.write(addr+1, byte(v>>8))
	c.WZ = addr + 1
	c.tick(16)
}

func (c *CPU) opLDHLAddr() {
	addr := c.fetchWord()
	lo := c.read(addr)
	hi := c.read(addr + 1)
	c.setIndexRegOrHL(uint16(hi)<<8 | uint16(lo))
	c.WZ = addr + 1
	c.tick(16)
}

func (c *CPU) opOUTNA() {
	port := uint16(c.A)<<8 | uint16(c.fetchByte())
	c.out(port, c.A)
	c.tick(11)
}

func (c *CPU) opINAN() {
	port := uint16(c.A)<<8 | uint16(c.fetchByte())
	c.A = c.in(port)
	c.tick(11)
}

func (c *CPU) opRLCA() {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	c.updateRotateFlags(carry)
	c.tick(4)
}

func (c *CPU) opRRCA() {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	c.updateRotateFlags(carry)
	c.tick(4)
}

func (c *CPU) opRLA() {
	carryIn := c.Flag(flagC)
	carryOut := c.A&0x80 != 0
	c.A <<= 1
	if carryIn {
		c.A |= 0x01
	}
	c.updateRotateFlags(carryOut)
	c.tick(4)
}

func (c *CPU) opRRA() {
	carryIn := c.Flag(flagC)
	carryOut := c.A&0x01 != 0
	c.A >>= 1
	if carryIn {
		c.A |= 0x80
	}
	c.updateRotateFlags(carryOut)
	c.tick(4)
}

func (c *CPU) jpCond(take bool) {
	addr := c.fetchWord()
	if take {
		c.PC = addr
	}
	c.tick(10)
}

func (c *CPU) jrCond(take bool) {
	d := int8(c.fetchByte())
	if take {
		c.PC = uint16(int32(c.PC) + int32(d))
		c.tick(12)
	} else {
		c.tick(7)
	}
}

func (c *CPU) callCond(take bool) {
	addr := c.fetchWord()
	if take {
		c.pushWord(c.PC)
		c.PC = addr
		c.tick(17)
	} else {
		c.tick(10)
	}
}

func (c *CPU) retCond(take bool) {
	if take {
		c.PC = c.popWord()
		c.tick(11)
	} else {
		c.tick(5)
	}
}

func (c *CPU) opCBPrefix() {
	if c.idxMode != idxNone {
		c.opIndexedCB()
		return
	}
	opcode := c.fetchOpcode()
	c.cbOps[opcode](c)
}

func (c *CPU) opEDPrefix() {
	opcode := c.fetchOpcode()
	c.edOps[opcode](c)
}

// opIndexPrefix accounts for the prefix byte's own 4 t-states (it is a
// full M1 fetch cycle on real hardware) before dispatching through the
// ordinary base table with idxMode set, so every IX/IY-aware handler's own
// tick() call is additive on top of this. The DDCB/FDCB form is the
// exception: opIndexedCB's totals already include the prefix byte, so the
// extra 4 is skipped there.
func (c *CPU) opIndexPrefix(mode byte) {
	c.idxMode = mode
	opcode := c.fetchOpcode()
	if opcode != 0xCB {
		c.tick(4)
	}
	c.baseOps[opcode](c)
}
