package nav

// Panel widths are expressed in layout units; the terminal renderer maps
// them to cells via UnitsPerCell.
const (
	// PrimaryWidth is the primary panel width in layout units.
	PrimaryWidth = 320
	// SecondaryWidth is the secondary panel width when not shrunk.
	SecondaryWidth = 320
	// SecondaryShrunkWidth is the secondary panel width when shrunk.
	SecondaryShrunkWidth = 48
	// UnitsPerCell converts layout units to terminal cells.
	UnitsPerCell = 10
)

// PanelLayout is the derived width of each panel plus their total.
type PanelLayout struct {
	Primary   int
	Secondary int // 0 when unfocused
	Total     int
}

// PanelWidths derives panel widths from focus state and the user's shrink
// toggle. Pure: recomputed on every relevant state change.
func PanelWidths(focused, shrunk bool) PanelLayout {
	l := PanelLayout{Primary: PrimaryWidth}
	if !focused {
		l.Total = l.Primary
		return l
	}
	l.Secondary = SecondaryWidth
	if shrunk {
		l.Secondary = SecondaryShrunkWidth
	}
	l.Total = l.Primary + l.Secondary
	return l
}

// Cells returns the panel widths in terminal cells.
func (l PanelLayout) Cells() (primary, secondary int) {
	return l.Primary / UnitsPerCell, l.Secondary / UnitsPerCell
}
