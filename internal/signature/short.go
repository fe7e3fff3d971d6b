package signature

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kritik-dev/kritik/internal/syntax"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Short returns a node's single-level signature fragment, independent of
// enclosing scope. The only failure mode is a function node whose measured
// header range is empty or inverted, which means the tree the front end
// handed us is malformed; such a signature must never be emitted.
func Short(n *syntax.Node) (string, error) {
	var raw string
	switch n.Kind {
	case syntax.KindFunction:
		header, err := functionHeader(n)
		if err != nil {
			return "", err
		}
		raw = header
	case syntax.KindClassOrObject:
		raw = classSignature(n)
	case syntax.KindFile:
		raw = fileSignature(n.File)
	default:
		raw = n.Raw()
	}
	return Normalize(raw), nil
}

// functionHeader slices the declaration source from its first non-comment
// token through the return type annotation, or through the parameter list
// when no return type is declared. Modifiers, name, type parameters and
// parameter types all land in the slice; the body never does, since it
// changes often and carries no identity.
func functionHeader(n *syntax.Node) (string, error) {
	start := n.DeclStart
	end := n.ReturnTypeEnd
	if end == 0 {
		end = n.ParamsEnd
	}
	if start >= end {
		return "", fmt.Errorf("invalid header range [%d, %d) for function declaration %q", start, end, n.Raw())
	}
	return string(n.File.Source[start:end]), nil
}

func classSignature(n *syntax.Node) string {
	var b strings.Builder
	b.WriteString(n.Name)
	if len(n.TypeParams) > 0 {
		b.WriteString("<")
		b.WriteString(strings.Join(n.TypeParams, ", "))
		b.WriteString(">")
	}
	if len(n.Supertypes) > 0 {
		// Historical format: supertype names run together without a
		// separator. Baselines recorded against this exact output.
		b.WriteString(" : ")
		for _, super := range n.Supertypes {
			b.WriteString(super)
		}
	}
	return b.String()
}

func fileSignature(f *syntax.File) string {
	if f == nil {
		return ""
	}
	if f.Package == "" {
		return f.Name
	}
	return f.Package + "." + f.Name
}

// Normalize collapses every whitespace run, line breaks included, into a
// single space. Signatures stay single-line and survive reformatting that
// only changes indentation or wrapping.
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
