package rules

import (
	"fmt"

	"github.com/kritik-dev/kritik/internal/signature"
	"github.com/kritik-dev/kritik/internal/syntax"
)

// LargeClass flags class and object declarations with more than MaxMembers
// directly declared members (functions, nested classes and objects).
type LargeClass struct {
	MaxMembers int
}

func (LargeClass) ID() string { return "large-class" }

func (r LargeClass) Check(root *syntax.Node) []Finding {
	var findings []Finding
	root.Walk(func(n *syntax.Node) {
		if n.Kind != syntax.KindClassOrObject {
			return
		}
		members := len(n.Children)
		if members <= r.MaxMembers {
			return
		}
		findings = append(findings, Finding{
			Message: fmt.Sprintf("class %s declares %d members (max %d)", signature.ResolveName(n), members, r.MaxMembers),
			Line:    n.StartLine,
			Node:    n,
		})
	})
	return findings
}
