package signature

import (
	"strings"

	"github.com/kritik-dev/kritik/internal/syntax"
)

// BaselineFileName returns the file identity used in signature prefixes:
// the on-disk leaf name with any path component stripped.
//
// This is deliberately not the file's package-qualified identity. An early
// front end used the leaf name as the file node's name, every recorded
// baseline froze around that format, and the later fix to file-name
// resolution must never reach recorded signatures. Changing this output
// invalidates all existing baselines and is a breaking release.
func BaselineFileName(f *syntax.File) string {
	return trimPath(f.Name)
}

// prefixFileName prepends the owning file's leaf name unless the signature
// already begins with it.
func prefixFileName(sig string, f *syntax.File) string {
	if f == nil {
		return sig
	}
	name := BaselineFileName(f)
	if strings.HasPrefix(sig, name) {
		return sig
	}
	return name + "$" + sig
}
