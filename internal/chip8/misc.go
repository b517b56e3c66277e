package chip8

// execMisc handles the Fxnn instruction group of timer, index register and
// memory transfer instructions.
func execMisc(m *Machine, op opcode) (next, error) {
	x := op.x()

	switch op.nn() {
	case 0x07: // LD Vx, DT
		m.V[x] = m.DT

	case 0x0A: // LD Vx, K
		waitForKey(m, op)

	case 0x15: // LD DT, Vx
		m.DT = m.V[x]

	case 0x18: // LD ST, Vx
		m.ST = m.V[x]

	case 0x1E: // ADD I, Vx
		m.I += uint16(m.V[x])

	case 0x29: // LD F, Vx
		m.I = uint16(m.V[x]) * FontGlyphSize

	case 0x33: // LD B, Vx
		if err := checkMemoryRange(m, 3); err != nil {
			return advance, err
		}
		v := m.V[x]
		m.Memory[m.I] = v / 100
		m.Memory[m.I+1] = v / 10 % 10
		m.Memory[m.I+2] = v % 10

	case 0x55: // LD [I], Vx
		if err := checkMemoryRange(m, int(x)+1); err != nil {
			return advance, err
		}
		copy(m.Memory[m.I:], m.V[:x+1])

	case 0x65: // LD Vx, [I]
		if err := checkMemoryRange(m, int(x)+1); err != nil {
			return advance, err
		}
		copy(m.V[:x+1], m.Memory[m.I:])

	default:
		return advance, ErrUnknownOpcode
	}
	return advance, nil
}
