package signature

import (
	"strings"

	"github.com/kritik-dev/kritik/internal/syntax"
)

// UnknownName is substituted when a node has no resolvable declared name.
const UnknownName = "<UnknownName>"

// ResolveName returns the node's declared name, or UnknownName when the
// declaration is anonymous. It never fails. A name that looks like a
// file-system path is reduced to its final component; absolute paths
// leaking into names caused duplicated-path display bugs downstream.
func ResolveName(n *syntax.Node) string {
	if n == nil || n.Name == "" {
		return UnknownName
	}
	return trimPath(n.Name)
}

func trimPath(name string) string {
	if idx := strings.LastIndexAny(name, `/\`); idx != -1 {
		return name[idx+1:]
	}
	return name
}
