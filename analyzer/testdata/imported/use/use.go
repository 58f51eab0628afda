package use

import "test/imported/lib"

func Tamper(t *lib.Token) {
	t.Value = "x" // want "Assignment to final field 'Value' outside of a constructor"
}

func Read(t *lib.Token) string {
	return t.Value
}
