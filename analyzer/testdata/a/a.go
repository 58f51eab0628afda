package a

import "fmt"

type point struct { // want "Fields 'x' and 'y' of 'point' can be marked final"
	x, y int
}

func newPoint(x, y int) *point {
	return &point{x: x, y: y}
}

func (p *point) String() string {
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}

type counter struct { // want "Field 'limit' of 'counter' can be marked final"
	n     int
	limit int
}

func newCounter(limit int) *counter {
	c := &counter{}
	c.limit = limit

	return c
}

func (c *counter) inc() {
	if c.n < c.limit {
		c.n++
	}
}

type service interface{ Run() }

type config struct {
	max int //@final

	svc service `inject:""`
}

type holder struct {
	v   int
	ptr *int
}

func makeHolder() holder {
	var h holder
	func() { h.v = 1 }()

	return h
}

func (h *holder) ref() { h.ptr = &h.v }

type pair struct {
	a, b int
}

func (p *pair) setB(b int) { p.b = b }

type inline struct{ a int }

type Exported struct { // want "Field 'private' of 'Exported' can be marked final"
	Public  int
	private int
}

func local() int {
	type tmp struct { // want "Field 'v' of 'tmp' can be marked final"
		v int
	}

	return tmp{v: 1}.v
}
