package chip8

// spriteWidth is the width in pixels of a sprite row.
const spriteWidth = 8

// execDraw handles Dxyn (DRW Vx, Vy, n). The n byte sprite at I is XORed onto
// the display at (Vx, Vy), pixels that leave the display wrap around to the
// opposite edge. VF is set if a lit pixel got turned off.
// A zero row sprite reads no memory and accepts any value of I.
func execDraw(m *Machine, op opcode) (next, error) {
	rows := int(op.n())
	if rows > 0 {
		if err := checkMemoryRange(m, rows); err != nil {
			return advance, err
		}
	}

	originX := int(m.V[op.x()])
	originY := int(m.V[op.y()])
	var collision bool

	for row := range rows {
		line := m.Memory[int(m.I)+row]
		y := (originY + row) % DisplayHeight

		for col := range spriteWidth {
			if line&(0x80>>col) == 0 {
				continue
			}
			x := (originX + col) % DisplayWidth
			index := x + y*DisplayWidth
			if m.Display[index] != 0 {
				collision = true
			}
			m.Display[index] ^= 1
		}
	}

	m.V[FlagRegister] = boolToFlag(collision)
	m.drawn = true
	return advance, nil
}
