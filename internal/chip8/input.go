package chip8

// execKeySkip handles Ex9E (SKP Vx) and ExA1 (SKNP Vx).
// Register values past the last key index never match a pressed key.
func execKeySkip(m *Machine, op opcode) (next, error) {
	pressed := keyPressed(m, m.V[op.x()])

	switch op.nn() {
	case 0x9E:
		return skipIf(m, pressed), nil
	case 0xA1:
		return skipIf(m, !pressed), nil
	default:
		return advance, ErrUnknownOpcode
	}
}

// waitForKey handles Fx0A (LD Vx, K) by pausing execution until SetKey
// reports the next key press.
func waitForKey(m *Machine, op opcode) {
	m.state = awaitingKey(op.x())
}

func keyPressed(m *Machine, key uint8) bool {
	if int(key) >= KeyCount {
		return false
	}
	return m.Keys[key]
}
