package diagram

import "fmt"

// Use is one drawing instruction: a reference to a named definition
// from the template's defs layer, placed at a pixel position. An
// instruction is produced once, serialized once, and never mutated.
type Use struct {
	Ref  string // definition id, e.g. "whiteking" or "lightsquare"
	Fill string // optional fill override, only set for the move indicator
	X, Y int
}

// String serializes the instruction as an SVG <use> element. The
// spacing matches the definitions template's house style so diagrams
// are reproducible byte for byte.
func (u Use) String() string {
	if u.Fill != "" {
		return fmt.Sprintf("    <use xlink:href = \"#%s\" fill = \"%s\" x = \"%d\" y = \"%d\" />",
			u.Ref, u.Fill, u.X, u.Y)
	}
	return fmt.Sprintf("    <use xlink:href = \"#%s\" x = \"%d\" y = \"%d\" />", u.Ref, u.X, u.Y)
}
