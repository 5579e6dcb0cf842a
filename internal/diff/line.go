package diff

// parseLine classifies one hunk body line by its marker character. The second
// return value is false for lines that belong to no category and are ignored.
func parseLine(raw string) (Line, bool) {

	if len(raw) == 0 {
		return Line{}, false
	}

	switch raw[0] {

	case '+':
		return Line{
			Type:    Added,
			Content: raw[1:],
		}, true

	case '-':
		return Line{
			Type:    Removed,
			Content: raw[1:],
		}, true

	case ' ':
		return Line{
			Type:    Context,
			Content: raw[1:],
		}, true

	default:
		return Line{}, false
	}
}
