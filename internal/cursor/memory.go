package cursor

// Memory is a Cursor over an already-loaded string. Every operation is
// a direct index into the backing string; there is nowhere else to
// pull more data from, so AtLeast is a simple length check.
type Memory struct {
	s   string
	pos int
}

// NewMemory wraps s for parsing.
func NewMemory(s string) *Memory {
	return &Memory{s: s}
}

func (m *Memory) Cur() byte {
	if m.pos >= len(m.s) {
		return 0
	}
	return m.s[m.pos]
}

func (m *Memory) Next() byte {
	if m.pos < len(m.s) {
		m.pos++
	}
	return m.Cur()
}

func (m *Memory) Back() {
	if m.pos <= 0 {
		panic("cursor: back buffer exhausted")
	}
	m.pos--
}

func (m *Memory) AtLeast(n int) bool { return len(m.s)-m.pos >= n }

func (m *Memory) Pos() int64 { return int64(m.pos) }

func (m *Memory) Window() []byte { return []byte(m.s) }
