package inherited

type base struct { // want "Field 'name' of 'base' can be marked final"
	id   int
	name string
}

type derived struct { // want "Fields 'extra' and 'name' of 'derived' can be marked final"
	base
	extra int
}

func newDerived() *derived {
	d := &derived{}
	d.id = 1

	return d
}

func (d *derived) reset() {
	d.base = base{}
}
