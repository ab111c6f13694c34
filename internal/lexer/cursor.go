package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"nvgtls/internal/source"
)

// Cursor читает текст по символам (рунам) и ведёт позицию line/character.
// Все Location в лексере строятся из снимков Head() до и после продвижения.
type Cursor struct {
	src  []rune
	off  int
	head source.Position
}

// NewCursor creates a cursor at the start of text.
func NewCursor(text string) Cursor {
	return Cursor{src: []rune(text)}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.off >= len(c.src)
}

// Next возвращает символ на позиции cursor+offset или 0 за пределами текста.
func (c *Cursor) Next(offset int) rune {
	i := c.off + offset
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

// IsNext reports whether the upcoming characters spell expected.
func (c *Cursor) IsNext(expected string) bool {
	i := c.off
	for _, r := range expected {
		if i >= len(c.src) || c.src[i] != r {
			return false
		}
		i++
	}
	return true
}

// IsNextWrap reports whether the cursor stands on a line break (CR or LF).
func (c *Cursor) IsNextWrap() bool {
	next := c.Next(0)
	return next == '\r' || next == '\n'
}

// IsNextWhitespace reports whether the cursor stands on a space or tab.
func (c *Cursor) IsNextWhitespace() bool {
	next := c.Next(0)
	return next == ' ' || next == '\t'
}

// StepNext advances by one visual character. CRLF is consumed as a single
// line break; a lone LF or CR also ends the line.
func (c *Cursor) StepNext() {
	if c.EOF() {
		return
	}
	if c.IsNextWrap() {
		c.head.Line++
		c.head.Character = 0
		if c.IsNext("\r\n") {
			c.off += 2
		} else {
			c.off++
		}
		return
	}
	c.head.Character++
	c.off++
}

// StepFor advances count characters without line-break accounting.
// The caller guarantees that the skipped characters contain no line break.
func (c *Cursor) StepFor(count int) {
	n, err := safecast.Conv[uint32](count)
	if err != nil {
		panic(fmt.Errorf("step count overflow: %w", err))
	}
	c.head.Character += n
	c.off += count
}

// Head returns a copy of the current position.
func (c *Cursor) Head() source.Position {
	return c.head
}

// Mark это метка, что бы быстро получать текст читаемого фрагмента
type Mark int

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// TextFrom returns the source text consumed since m.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.src[int(m):c.off])
}
