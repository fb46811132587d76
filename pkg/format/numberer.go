package format

// Numberer assigns display ordinals to consecutive lines.
//
// With squeezing enabled the counter freezes across a run of blank lines so
// the run shares one number. The counter advances on a line iff squeezing
// is off, the line is non-blank, or the previous line was non-blank.
type Numberer struct {
	squeeze   bool
	current   int
	prevBlank bool
}

// NewNumberer creates a counter starting before line 1.
func NewNumberer(squeeze bool) *Numberer {
	return &Numberer{squeeze: squeeze}
}

// Next returns the ordinal for the next line.
func (n *Numberer) Next(blank bool) int {
	if !n.squeeze || !blank || !n.prevBlank {
		n.current++
	}
	n.prevBlank = blank
	return n.current
}
