package annotate

// Position is an editor coordinate: 0-based line, 0-based column counted in
// runes of the live line text.
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Range is half-open: [Start, End).
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Annotation is one renderable descriptor. Ghost carries display-only text for
// zero-width deleted-text markers and is empty for every other category.
type Annotation struct {
	Range Range  `json:"range"`
	Ghost string `json:"ghost,omitempty"`
}

// LineGhost displays a deleted line's old content attached below an editor
// line that still exists.
type LineGhost struct {
	AttachLine int    `json:"attachLine"`
	Text       string `json:"text"`
}

// Bundle groups every annotation a render cycle needs, each category in
// emission order. It is owned by the caller for exactly one cycle; a new edit
// triggers a full recomputation, never an in-place patch.
type Bundle struct {
	AddedLines        []Annotation `json:"addedLines,omitempty"`
	ModifiedLines     []Annotation `json:"modifiedLines,omitempty"`
	InsertedText      []Annotation `json:"insertedText,omitempty"`
	DeletedText       []Annotation `json:"deletedText,omitempty"`
	DeletedLineGhosts []LineGhost  `json:"deletedLineGhosts,omitempty"`
}

// Empty reports whether the bundle carries nothing to draw.
func (b *Bundle) Empty() bool {
	return b == nil || len(b.AddedLines) == 0 && len(b.ModifiedLines) == 0 &&
		len(b.InsertedText) == 0 && len(b.DeletedText) == 0 && len(b.DeletedLineGhosts) == 0
}
