package rules

import (
	"github.com/kritik-dev/kritik/internal/config"
	"github.com/kritik-dev/kritik/internal/syntax"
)

// Finding is one rule violation located at a declaration.
type Finding struct {
	RuleID    string `json:"rule"`
	Message   string `json:"message"`
	File      string `json:"file"` // root-relative path
	Line      int    `json:"line"`
	Signature string `json:"signature"` // baseline join key, filled by Run

	Node *syntax.Node `json:"-"`
}

// Rule checks one parsed file's declaration tree. Rules report the
// offending node so the runner can derive its baseline signature.
type Rule interface {
	ID() string
	Check(root *syntax.Node) []Finding
}

// Default builds the active rule set for the given thresholds.
func Default(cfg config.Rules) []Rule {
	all := []Rule{
		FunctionTooLong{MaxLines: cfg.MaxFunctionLines},
		LongParameterList{MaxParams: cfg.MaxParameters},
		LargeClass{MaxMembers: cfg.MaxClassMembers},
	}

	disabled := make(map[string]bool, len(cfg.Disabled))
	for _, id := range cfg.Disabled {
		disabled[id] = true
	}

	active := make([]Rule, 0, len(all))
	for _, rule := range all {
		if !disabled[rule.ID()] {
			active = append(active, rule)
		}
	}
	return active
}
