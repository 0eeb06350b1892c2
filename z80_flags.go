// z80_flags.go - shared flag/arithmetic helpers, grounded on the teacher's
// performALU/opDAA/addHL/inc8/dec8 family in cpu_z80.go.

package spectrumcore

func parity8(v byte) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}

func (c *CPU) setSZXY(v byte) {
	c.F &^= flagS | flagZ | flagX | flagY
	if v == 0 {
		c.F |= flagZ
	}
	if v&0x80 != 0 {
		c.F |= flagS
	}
	c.F |= v & (flagX | flagY)
}

type aluOp byte

const (
	aluAdd aluOp = iota
	aluAdc
	aluSub
	aluSbc
	aluAnd
	aluXor
	aluOr
	aluCp
)

func (c *CPU) performALU(op aluOp, value byte) {
	a := c.A
	switch op {
	case aluAdd, aluAdc:
		carry := byte(0)
		if op == aluAdc && c.Flag(flagC) {
			carry = 1
		}
		result := uint16(a) + uint16(value) + uint16(carry)
		res := byte(result)
		c.F = 0
		if res == 0 {
			c.F |= flagZ
		}
		if res&0x80 != 0 {
			c.F |= flagS
		}
		if (a&0x0F)+(value&0x0F)+carry > 0x0F {
			c.F |= flagH
		}
		if (a^res)&(value^res)&0x80 != 0 {
			c.F |= flagPV
		}
		if result > 0xFF {
			c.F |= flagC
		}
		c.F |= res & (flagX | flagY)
		c.A = res
	case aluSub, aluSbc, aluCp:
		carry := byte(0)
		if op == aluSbc && c.Flag(flagC) {
			carry = 1
		}
		result := int16(a) - int16(value) - int16(carry)
		res := byte(result)
		c.F = flagN
		if res == 0 {
			c.F |= flagZ
		}
		if res&0x80 != 0 {
			c.F |= flagS
		}
		if int16(a&0x0F)-int16(value&0x0F)-int16(carry) < 0 {
			c.F |= flagH
		}
		if (a^value)&(a^res)&0x80 != 0 {
			c.F |= flagPV
		}
		if result < 0 {
			c.F |= flagC
		}
		if op == aluCp {
			// CP copies bits 3/5 from the operand, not the (discarded) result.
			c.F = (c.F &^ (flagX | flagY)) | (value & (flagX | flagY))
		} else {
			c.F |= res & (flagX | flagY)
			c.A = res
		}
	case aluAnd:
		res := a & value
		c.F = flagH
		c.setSZXY(res)
		if parity8(res) {
			c.F |= flagPV
		}
		c.A = res
	case aluXor:
		res := a ^ value
		c.F = 0
		c.setSZXY(res)
		if parity8(res) {
			c.F |= flagPV
		}
		c.A = res
	case aluOr:
		res := a | value
		c.F = 0
		c.setSZXY(res)
		if parity8(res) {
			c.F |= flagPV
		}
		c.A = res
	}
}

func (c *CPU) inc8(v byte) byte {
	res := v + 1
	c.F = c.F & flagC
	if res == 0 {
		c.F |= flagZ
	}
	if res&0x80 != 0 {
		c.F |= flagS
	}
	if v&0x0F == 0x0F {
		c.F |= flagH
	}
	if v == 0x7F {
		c.F |= flagPV
	}
	c.F |= res & (flagX | flagY)
	return res
}

func (c *CPU) dec8(v byte) byte {
	res := v - 1
	c.F = (c.F & flagC) | flagN
	if res == 0 {
		c.F |= flagZ
	}
	if res&0x80 != 0 {
		c.F |= flagS
	}
	if v&0x0F == 0 {
		c.F |= flagH
	}
	if v == 0x80 {
		c.F |= flagPV
	}
	c.F |= res & (flagX | flagY)
	return res
}

func (c *CPU) addHLlike(cur, value uint16, setResult func(uint16)) {
	sum := uint32(cur) + uint32(value)
	c.F &^= flagH | flagN | flagC | flagX | flagY
	if ((cur&0x0FFF)+(value&0x0FFF))&0x1000 != 0 {
		c.F |= flagH
	}
	if sum > 0xFFFF {
		c.F |= flagC
	}
	res := uint16(sum)
	setResult(res)
	c.F |= byte((res >> 8) & (flagX | flagY))
}

func (c *CPU) adcHL(value uint16) {
	hl := c.HL()
	carry := uint16(0)
	if c.Flag(flagC) {
		carry = 1
	}
	sum := uint32(hl) + uint32(value) + uint32(carry)
	res := uint16(sum)
	c.F = 0
	if res == 0 {
		c.F |= flagZ
	}
	if res&0x8000 != 0 {
		c.F |= flagS
	}
	if ((hl&0x0FFF)+(value&0x0FFF)+carry)&0x1000 != 0 {
		c.F |= flagH
	}
	if (^(hl^value))&(hl^res)&0x8000 != 0 {
		c.F |= flagPV
	}
	if sum > 0xFFFF {
		c.F |= flagC
	}
	c.F |= byte((res >> 8) & (flagX | flagY))
	c.SetHL(res)
}

func (c *CPU) sbcHL(value uint16) {
	hl := c.HL()
	carry := uint16(0)
	if c.Flag(flagC) {
		carry = 1
	}
	diff := int32(hl) - int32(value) - int32(carry)
	res := uint16(diff)
	c.F = flagN
	if res == 0 {
		c.F |= flagZ
	}
	if res&0x8000 != 0 {
		c.F |= flagS
	}
	if int32(hl&0x0FFF)-int32(value&0x0FFF)-int32(carry) < 0 {
		c.F |= flagH
	}
	if (hl^value)&(hl^res)&0x8000 != 0 {
		c.F |= flagPV
	}
	if diff < 0 {
		c.F |= flagC
	}
	c.F |= byte((res >> 8) & (flagX | flagY))
	c.SetHL(res)
}

func (c *CPU) updateInFlags(value byte) {
	carry := c.F & flagC
	c.F = carry
	c.setSZXY(value)
	if parity8(value) {
		c.F |= flagPV
	}
}

func (c *CPU) updateLDAIRFlags(value byte) {
	carry := c.F & flagC
	c.F = carry
	c.setSZXY(value)
	if c.IFF2 {
		c.F |= flagPV
	}
}

func (c *CPU) updateBlockTransferFlags(sum byte, bc uint16) {
	c.F = c.F & (flagS | flagZ | flagC)
	if bc != 0 {
		c.F |= flagPV
	}
	c.F |= sum & flagX
	if sum&0x02 != 0 {
		c.F |= flagY
	}
}

func (c *CPU) updateBlockCompareFlags(a, value byte, bc uint16) {
	diff := a - value
	c.F = (c.F & flagC) | flagN
	if diff == 0 {
		c.F |= flagZ
	}
	if diff&0x80 != 0 {
		c.F |= flagS
	}
	if (a&0x0F)-(value&0x0F) > a&0x0F {
		c.F |= flagH
	}
	n := diff
	if c.F&flagH != 0 {
		n--
	}
	c.F |= n & flagX
	if n&0x02 != 0 {
		c.F |= flagY
	}
	if bc != 0 {
		c.F |= flagPV
	}
}

func (c *CPU) updateBlockIOFlags() {
	c.F = (c.F & (flagS | flagH | flagPV | flagC | flagX | flagY)) | flagN
	if c.B == 0 {
		c.F |= flagZ
	}
}

func (c *CPU) updateRotateFlags(carry bool) {
	f := c.F & (flagS | flagZ | flagPV)
	if carry {
		f |= flagC
	}
	f |= c.A & (flagX | flagY)
	c.F = f
}

func (c *CPU) setShiftFlags(res byte, carry bool) {
	c.F = 0
	c.setSZXY(res)
	if parity8(res) {
		c.F |= flagPV
	}
	if carry {
		c.F |= flagC
	}
}
