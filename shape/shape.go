// Package shape provides the 2D and 3D primitives the tray geometry is
// composed from. Constructors panic on invalid arguments in the manner of
// form2/must2 and form3/must3; the object level builders in package tray
// recover these panics into errors.
package shape

import "fmt"

func errMsg(format string, args ...interface{}) string {
	return "shape: " + fmt.Sprintf(format, args...)
}
