package text

// TextSegment is a template string rendered with one style. Style is an
// index into the style slice given at layout time; the segment does not own
// the style.
type TextSegment struct {
	Template string
	Style    int

	parts []templatePart
}

// NewTextSegment creates a segment and compiles its template.
func NewTextSegment(template string, style int) TextSegment {
	return TextSegment{
		Template: template,
		Style:    style,
		parts:    compileTemplate(template),
	}
}

// Text resolves the template against vars. Unknown or unset variables
// resolve to the empty string and an unterminated '{' stays literal.
// A nil vars behaves like EmptyStorage.
func (s TextSegment) Text(vars VariableStorage) string {
	parts := s.parts
	if parts == nil {
		parts = compileTemplate(s.Template)
	}
	return resolveTemplate(parts, vars)
}

// Placeholders returns the variable names referenced by the template, in
// order of appearance.
func (s TextSegment) Placeholders() []string {
	parts := s.parts
	if parts == nil {
		parts = compileTemplate(s.Template)
	}

	var names []string
	for _, p := range parts {
		if p.isVar {
			names = append(names, p.text)
		}
	}
	return names
}
