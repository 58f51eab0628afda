package halt

type deps struct{}

type wired struct { // want "Field 'a' of 'wired' can be marked final"
	a int

	d *deps `wire:""`

	c int
}
