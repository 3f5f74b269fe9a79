package ir

import (
	"strconv"
)

// Root is the default path of a document whose top-level value is a scalar.
const Root = "$"

// FieldPath returns the path of member field of the object at parent, which
// is not the top-level object. Fields are used literally.
func FieldPath(parent, field string) string {
	return parent + "." + field
}

// TopFieldPath returns the path of member field of the top-level object.
// It has no leading separator, so an empty field there yields the empty
// path, and its members start with ".".
func TopFieldPath(field string) string {
	return field
}

// IndexPath returns the path of element i of the array at parent.
func IndexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
