package chip8

// execLoadByte handles 6xnn (LD Vx, byte).
func execLoadByte(m *Machine, op opcode) (next, error) {
	m.V[op.x()] = op.nn()
	return advance, nil
}

// execAddByte handles 7xnn (ADD Vx, byte). VF is not affected.
func execAddByte(m *Machine, op opcode) (next, error) {
	m.V[op.x()] += op.nn()
	return advance, nil
}

// execArithmetic handles the register to register operations 8xy0-8xy7 and
// 8xyE. Instructions that set a flag write VF last, so the flag wins if Vx
// is VF.
func execArithmetic(m *Machine, op opcode) (next, error) {
	x, y := op.x(), op.y()
	vx, vy := m.V[x], m.V[y]

	switch op.n() {
	case 0x0: // LD Vx, Vy
		m.V[x] = vy

	case 0x1: // OR Vx, Vy
		m.V[x] = vx | vy

	case 0x2: // AND Vx, Vy
		m.V[x] = vx & vy

	case 0x3: // XOR Vx, Vy
		m.V[x] = vx ^ vy

	case 0x4: // ADD Vx, Vy
		sum := uint16(vx) + uint16(vy)
		m.V[x] = uint8(sum)
		m.V[FlagRegister] = boolToFlag(sum > 0xFF)

	case 0x5: // SUB Vx, Vy
		m.V[x] = vx - vy
		m.V[FlagRegister] = boolToFlag(vx > vy)

	case 0x6: // SHR Vx
		m.V[x] = vx >> 1
		m.V[FlagRegister] = vx & 0x01

	case 0x7: // SUBN Vx, Vy
		m.V[x] = vy - vx
		m.V[FlagRegister] = boolToFlag(vy > vx)

	case 0xE: // SHL Vx
		m.V[x] = vx << 1
		m.V[FlagRegister] = vx >> 7

	default:
		return advance, ErrUnknownOpcode
	}
	return advance, nil
}

// execLoadIndex handles Annn (LD I, addr).
func execLoadIndex(m *Machine, op opcode) (next, error) {
	m.I = op.nnn()
	return advance, nil
}

// execRandom handles Cxnn (RND Vx, byte).
func execRandom(m *Machine, op opcode) (next, error) {
	m.V[op.x()] = m.cfg.Random() & op.nn()
	return advance, nil
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
