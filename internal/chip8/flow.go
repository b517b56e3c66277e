package chip8

// execSystem handles 00E0 (CLS) and 00EE (RET).
func execSystem(m *Machine, op opcode) (next, error) {
	switch uint16(op) {
	case 0x00E0:
		m.Display = [DisplaySize]byte{}
		m.drawn = true
		return advance, nil

	case 0x00EE:
		if m.SP == 0 {
			return advance, ErrStackUnderflow
		}
		m.SP--
		return jumpTo(m.Stack[m.SP]), nil

	default:
		// 0nnn calls machine code routines of the original interpreter host
		return advance, ErrUnknownOpcode
	}
}

// execJump handles 1nnn (JP addr).
func execJump(_ *Machine, op opcode) (next, error) {
	return jumpTo(op.nnn()), nil
}

// execCall handles 2nnn (CALL addr). The pushed return address is the
// already advanced program counter.
func execCall(m *Machine, op opcode) (next, error) {
	if int(m.SP) >= StackSize {
		return advance, ErrStackOverflow
	}
	m.Stack[m.SP] = m.PC
	m.SP++
	return jumpTo(op.nnn()), nil
}

// execSkipEqualByte handles 3xnn (SE Vx, byte).
func execSkipEqualByte(m *Machine, op opcode) (next, error) {
	return skipIf(m, m.V[op.x()] == op.nn()), nil
}

// execSkipNotEqualByte handles 4xnn (SNE Vx, byte).
func execSkipNotEqualByte(m *Machine, op opcode) (next, error) {
	return skipIf(m, m.V[op.x()] != op.nn()), nil
}

// execSkipEqualRegister handles 5xy0 (SE Vx, Vy).
func execSkipEqualRegister(m *Machine, op opcode) (next, error) {
	if op.n() != 0 {
		return advance, ErrUnknownOpcode
	}
	return skipIf(m, m.V[op.x()] == m.V[op.y()]), nil
}

// execSkipNotEqualRegister handles 9xy0 (SNE Vx, Vy).
func execSkipNotEqualRegister(m *Machine, op opcode) (next, error) {
	if op.n() != 0 {
		return advance, ErrUnknownOpcode
	}
	return skipIf(m, m.V[op.x()] != m.V[op.y()]), nil
}

// execJumpOffset handles Bnnn (JP V0, addr).
func execJumpOffset(m *Machine, op opcode) (next, error) {
	return jumpTo(op.nnn() + uint16(m.V[0])), nil
}
