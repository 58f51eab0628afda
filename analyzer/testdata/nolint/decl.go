package nolint

//nolint:finalfields
type quiet struct {
	a int
}

type (
	//nolint:finalfields
	grouped struct {
		b int
	}

	loud struct { // want "Fields 'C' and 'd' of 'loud' can be marked final"
		C int
		d int
	}
)

type inline struct { //nolint:finalfields
	e int
}

type touched struct {
	f int //@final
}

func (t *touched) set() {
	t.f = 1 //nolint:all
}
