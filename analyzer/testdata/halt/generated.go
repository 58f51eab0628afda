// Code generated by hand. DO NOT EDIT.

package halt

type gen struct { // want "Field 'g' of 'gen' can be marked final"
	g int
}
