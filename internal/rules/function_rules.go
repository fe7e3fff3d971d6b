package rules

import (
	"fmt"

	"github.com/kritik-dev/kritik/internal/signature"
	"github.com/kritik-dev/kritik/internal/syntax"
)

// FunctionTooLong flags function declarations spanning more lines than
// MaxLines from header to closing brace.
type FunctionTooLong struct {
	MaxLines int
}

func (FunctionTooLong) ID() string { return "function-too-long" }

func (r FunctionTooLong) Check(root *syntax.Node) []Finding {
	var findings []Finding
	root.Walk(func(n *syntax.Node) {
		if n.Kind != syntax.KindFunction {
			return
		}
		lines := n.EndLine - n.StartLine + 1
		if lines <= r.MaxLines {
			return
		}
		findings = append(findings, Finding{
			Message: fmt.Sprintf("function %s spans %d lines (max %d)", signature.ResolveName(n), lines, r.MaxLines),
			Line:    n.StartLine,
			Node:    n,
		})
	})
	return findings
}

// LongParameterList flags function declarations with more than MaxParams
// parameters.
type LongParameterList struct {
	MaxParams int
}

func (LongParameterList) ID() string { return "long-parameter-list" }

func (r LongParameterList) Check(root *syntax.Node) []Finding {
	var findings []Finding
	root.Walk(func(n *syntax.Node) {
		if n.Kind != syntax.KindFunction || n.ParamCount <= r.MaxParams {
			return
		}
		findings = append(findings, Finding{
			Message: fmt.Sprintf("function %s takes %d parameters (max %d)", signature.ResolveName(n), n.ParamCount, r.MaxParams),
			Line:    n.StartLine,
			Node:    n,
		})
	})
	return findings
}
