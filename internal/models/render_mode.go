package models

type RenderMode string

const (
	// RenderRuler prints a minute ruler header and ':' marks every ten minutes.
	RenderRuler RenderMode = "ruler"
	// RenderPlain prints only the hour rows with blank empty cells.
	RenderPlain RenderMode = "plain"
)

func (m RenderMode) Valid() bool {
	return m == RenderRuler || m == RenderPlain
}

// HasRuler reports whether the mode prints the header and ':' marks.
func (m RenderMode) HasRuler() bool {
	return m == RenderRuler
}
