// Code generated by hand. DO NOT EDIT.

package a

type generated struct {
	g int
}

func (g *generated) set() { g.g = 1 }
