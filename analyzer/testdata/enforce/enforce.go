package enforce

type account struct {
	id      string //@final
	balance int
}

func newAccount(id string) *account {
	a := &account{}
	a.id = id

	return a
}

func (a *account) deposit(n int) {
	a.balance += n
}

func (a *account) rename(id string) {
	a.id = id // want "Assignment to final field 'account.id' outside of a constructor"
}

func (a *account) ref() *string {
	return &a.id // want "Address of final field 'account.id' taken outside of a constructor"
}

func reset(a *account) {
	a.id = "" //nolint:finalfields
}

func replay(a *account, ids []string) {
	for _, a.id = range ids { // want "Assignment to final field 'account.id' outside of a constructor"
	}
}

type seq struct {
	// @final
	n int
}

func (s *seq) next() {
	s.n++ // want "Final field 'seq.n' modified outside of a constructor"
}

func newSeq() seq {
	s := seq{}
	s.n++

	return s
}

type limits struct {
	max int //@final
	min int
}

func (l *limits) reset() {
	*l = limits{} // want "Assignment to final field 'limits.max' outside of a constructor"
}

type wrapper struct {
	lim limits //@final
}

func (w *wrapper) tweak() {
	w.lim.min = 1 // want "Assignment to final field 'wrapper.lim' outside of a constructor"
}
