// Package nolint checks suppression comments.
//
//nolint:finalfields
package nolint

type skipped struct {
	a int
}
