package signature

import (
	"strings"

	"github.com/kritik-dev/kritik/internal/syntax"
)

// Full returns the fully qualified signature used as the baseline join key:
// the node's short signature prefixed by its enclosing class scope and the
// owning file's name. Nesting inside classes reads as "Outer.Inner$" while
// the file prefix reads as "File.kt$".
func Full(n *syntax.Node) (string, error) {
	short, err := Short(n)
	if err != nil {
		return "", err
	}
	if n.Kind == syntax.KindFile {
		// A file's own signature is already "pkg.fileName"; prefixing it
		// again would break the historical format.
		return short, nil
	}

	sig := short
	if scope := enclosingScope(n); scope != nil {
		sig = strings.Join(scope, ".") + "$" + sig
	}
	return prefixFileName(sig, n.File), nil
}

// enclosingScope collects the declared names of class and object ancestors
// in outer-to-inner order. Anonymous ancestors contribute an empty entry
// rather than a placeholder so the joined scope stays byte-compatible with
// previously recorded signatures.
func enclosingScope(n *syntax.Node) []string {
	var names []string
	for _, ancestor := range n.Ancestors() {
		if ancestor.Kind != syntax.KindClassOrObject {
			continue
		}
		names = append(names, ancestor.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}
