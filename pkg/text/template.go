package text

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// A placeholder runs from a '{' to the first '}' after it. A '{' with no
// closing brace anywhere after it is plain text.
var (
	templateLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Placeholder", Pattern: `\{[^}]*\}`},
		{Name: "Text", Pattern: `[^{]+`},
		{Name: "Brace", Pattern: `\{`},
	})

	templateParser = participle.MustBuild[templateAST](
		participle.Lexer(templateLexer),
	)
)

type templateAST struct {
	Tokens []*templateToken `parser:"@@*"`
}

type templateToken struct {
	Placeholder *string `parser:"  @Placeholder"`
	Literal     *string `parser:"| @( Text | Brace )"`
}

// templatePart is either literal text or the name of a variable.
type templatePart struct {
	text  string
	isVar bool
}

// compileTemplate splits a template into literal and placeholder parts.
// Resolving the parts left to right is equivalent to scanning the template
// for placeholders and never rescanning substituted text.
func compileTemplate(template string) []templatePart {
	if template == "" {
		return nil
	}
	if !strings.Contains(template, "{") {
		return []templatePart{{text: template}}
	}

	ast, err := templateParser.ParseString("", template)
	if err != nil {
		// Every input lexes; treat anything the parser still rejects as literal.
		return []templatePart{{text: template}}
	}

	parts := make([]templatePart, 0, len(ast.Tokens))
	for _, tok := range ast.Tokens {
		if tok.Placeholder != nil {
			name := (*tok.Placeholder)[1 : len(*tok.Placeholder)-1]
			parts = append(parts, templatePart{text: name, isVar: true})
			continue
		}
		if tok.Literal == nil {
			continue
		}
		if n := len(parts); n > 0 && !parts[n-1].isVar {
			parts[n-1].text += *tok.Literal
			continue
		}
		parts = append(parts, templatePart{text: *tok.Literal})
	}
	return parts
}

// resolveTemplate substitutes every placeholder with its value, or with the
// empty string when vars has no value for it.
func resolveTemplate(parts []templatePart, vars VariableStorage) string {
	if len(parts) == 1 && !parts[0].isVar {
		return parts[0].text
	}

	var sb strings.Builder
	for _, p := range parts {
		if !p.isVar {
			sb.WriteString(p.text)
			continue
		}
		if vars == nil {
			continue
		}
		if v, ok := vars.Get(p.text); ok {
			sb.WriteString(v.String())
		}
	}
	return sb.String()
}
