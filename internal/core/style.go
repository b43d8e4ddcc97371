package core

// Style is a set of text attributes applied to a screen cell.
// Attributes combine as bit flags; the platform layer maps them to terminal styles.
type Style uint8

// Text attributes understood by the renderer.
const (
	StyleBold Style = 1 << iota
	StyleReverse
	StyleBlink
)

const (
	// StyleNormal renders text without attributes.
	StyleNormal Style = 0
	// StyleStandout highlights text the way terminals render "standout" mode.
	StyleStandout = StyleBold | StyleReverse
)

// Has reports whether all attributes in attr are set.
func (s Style) Has(attr Style) bool {
	return attr != 0 && s&attr == attr
}
