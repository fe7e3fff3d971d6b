package rules

import (
	"fmt"
	"sort"

	"github.com/kritik-dev/kritik/internal/languages"
	"github.com/kritik-dev/kritik/internal/signature"
)

// Run executes the rule set against one parsed file and derives the
// baseline signature for every finding. A signature failure aborts the
// whole file: a finding carrying a wrong join key would silently corrupt
// baseline matching, so the error surfaces instead.
func Run(file *languages.ParsedFile, ruleSet []Rule) ([]Finding, error) {
	var findings []Finding
	for _, rule := range ruleSet {
		for _, f := range rule.Check(file.Root) {
			sig, err := signature.Full(f.Node)
			if err != nil {
				return nil, fmt.Errorf("analysis of %s aborted: %w", file.Path, err)
			}
			f.RuleID = rule.ID()
			f.File = file.Path
			f.Signature = sig
			findings = append(findings, f)
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].RuleID < findings[j].RuleID
	})

	return findings, nil
}
