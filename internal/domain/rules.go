package domain

import (
	"fmt"
	"path"
)

// DirectoryRequirement is one node of the required directory tree.
type DirectoryRequirement struct {
	Name     string
	Children []DirectoryRequirement
}

// RequiredStructure is the fixed tree every delivery directory must contain.
// It is declared once and never mutated; outcome order follows declaration
// order so repeated runs produce identical reports.
var RequiredStructure = []DirectoryRequirement{
	{Name: "NVA", Children: []DirectoryRequirement{
		{Name: "NESSUS"},
		{Name: "NMAP"},
		{Name: "QUALYS"},
	}},
	{Name: "REPORTS"},
	{Name: "REQUESTINFO"},
}

// RuleKind discriminates the file rule variants.
type RuleKind string

const (
	RuleGlobExistence  RuleKind = "glob"
	RuleExactExistence RuleKind = "exact"
	RuleSizeThreshold  RuleKind = "size"
)

// FileRule is one stateless file requirement. Dir is slash-joined relative to
// the base directory. Pattern applies to glob rules, Filename to exact and
// size rules, MinBytes (exclusive lower bound) to size rules.
type FileRule struct {
	Kind     RuleKind
	Dir      string
	Pattern  string
	Filename string
	MinBytes int64
}

// Target is the rule's expected path relative to the base directory.
func (r FileRule) Target() string {
	if r.Kind == RuleGlobExistence {
		return path.Join(r.Dir, r.Pattern)
	}
	return path.Join(r.Dir, r.Filename)
}

// Attack Surface Profile workbooks under 25 KB are invariably empty templates.
const attackSurfaceMinBytes = 25 * 1024

var (
	nmapTransports = []string{"TCP", "UDP"}
	nmapExtensions = []string{"gnmap", "nmap", "xml"}
)

// FileRulesFor returns the ordered rule set for a test type, with the
// directory prefix interpolated into expected file names. SB extends the
// basic set with the NESSUS glob rule and the six NMAP output files.
func FileRulesFor(t TestType, prefix string) []FileRule {
	sizeRule := FileRule{
		Kind:     RuleSizeThreshold,
		Dir:      "REQUESTINFO",
		Filename: prefix + "-Attack Surface Profile.xlsx",
		MinBytes: attackSurfaceMinBytes,
	}

	if t != TestTypeSB {
		return []FileRule{sizeRule}
	}

	rules := []FileRule{
		{Kind: RuleGlobExistence, Dir: "NVA/NESSUS", Pattern: "*.nessus"},
	}
	for _, transport := range nmapTransports {
		for _, ext := range nmapExtensions {
			rules = append(rules, FileRule{
				Kind:     RuleExactExistence,
				Dir:      "NVA/NMAP",
				Filename: fmt.Sprintf("%s_%s.%s", prefix, transport, ext),
			})
		}
	}
	return append(rules, sizeRule)
}

// ExpectedLayout describes the required tree and files for a test type with a
// placeholder prefix. Used by help output and the MCP tools.
type ExpectedLayout struct {
	TestType    TestType `json:"test_type"`
	Directories []string `json:"directories"`
	Files       []string `json:"files"`
}

const placeholderPrefix = "XXXXXX"

// DescribeExpected flattens the rule tables into the layout a conforming
// directory must have.
func DescribeExpected(t TestType) ExpectedLayout {
	layout := ExpectedLayout{TestType: t}
	var walk func(rel string, reqs []DirectoryRequirement)
	walk = func(rel string, reqs []DirectoryRequirement) {
		for _, req := range reqs {
			relPath := path.Join(rel, req.Name)
			layout.Directories = append(layout.Directories, relPath)
			walk(relPath, req.Children)
		}
	}
	walk("", RequiredStructure)

	for _, rule := range FileRulesFor(t, placeholderPrefix) {
		target := rule.Target()
		if rule.Kind == RuleSizeThreshold {
			target += fmt.Sprintf(" (> %d KB)", rule.MinBytes/1024)
		}
		layout.Files = append(layout.Files, target)
	}
	return layout
}
