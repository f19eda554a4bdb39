package domain

import "fmt"

// EvaluateFiles runs the file rule set for the given test type against
// basePath. Rules are independent: a failed probe or missing intermediate
// directory fails only the rules rooted there, never the whole run.
// File outcome paths are relative to the base directory.
func EvaluateFiles(p FileProber, basePath, prefix string, t TestType) []CheckOutcome {
	rules := FileRulesFor(t, prefix)
	outcomes := make([]CheckOutcome, 0, len(rules))
	for _, rule := range rules {
		outcomes = append(outcomes, evaluateRule(p, basePath, rule))
	}
	return outcomes
}

func evaluateRule(p FileProber, basePath string, rule FileRule) CheckOutcome {
	target := rule.Target()

	switch rule.Kind {
	case RuleGlobExistence:
		// Presence of the class, never an enumeration of expected names.
		n := p.GlobCount(ProbePath(basePath, rule.Dir), rule.Pattern)
		if n == 0 {
			return Missing(target)
		}
		return CheckOutcome{
			Status: StatusExisting,
			Path:   target,
			Detail: fmt.Sprintf("%d file(s) found", n),
		}

	case RuleSizeThreshold:
		st := p.Stat(ProbePath(basePath, target))
		if !st.Exists || st.IsDir {
			return Missing(target)
		}
		sizeKB := float64(st.Size) / 1024
		if st.Size > rule.MinBytes {
			return CheckOutcome{
				Status: StatusExisting,
				Path:   target,
				Detail: fmt.Sprintf("%.1f KB", sizeKB),
			}
		}
		// Exists but inadequate: a distinct failure class from Missing so
		// operators can tell "never ran" from "produced an empty artifact".
		return CheckOutcome{
			Status: StatusIssue,
			Path:   target,
			Detail: fmt.Sprintf("file too small (%.1f KB, requires > %d KB)", sizeKB, rule.MinBytes/1024),
		}

	default: // RuleExactExistence
		if !p.Stat(ProbePath(basePath, target)).Exists {
			return Missing(target)
		}
		return Existing(target)
	}
}
