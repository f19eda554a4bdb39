package domain

import (
	"path"
	"path/filepath"
)

// ValidateStructure walks the required directory tree rooted at basePath and
// reports one outcome per required directory, in declaration order:
// base, NVA, NVA/NESSUS, NVA/NMAP, NVA/QUALYS, REPORTS, REQUESTINFO.
//
// A missing or non-directory base short-circuits to a single Missing outcome.
// Children of a missing parent are skipped: there is nothing to descend into.
func ValidateStructure(p FileProber, basePath string) []CheckOutcome {
	outcome, ok := checkDirectory(p, basePath, "")
	if !ok {
		return []CheckOutcome{outcome}
	}

	outcomes := []CheckOutcome{outcome}
	return walkRequirements(p, basePath, "", RequiredStructure, outcomes)
}

func walkRequirements(p FileProber, basePath, rel string, reqs []DirectoryRequirement, out []CheckOutcome) []CheckOutcome {
	for _, req := range reqs {
		relPath := path.Join(rel, req.Name)
		outcome, ok := checkDirectory(p, basePath, relPath)
		out = append(out, outcome)
		if ok {
			out = walkRequirements(p, basePath, relPath, req.Children, out)
		}
	}
	return out
}

// checkDirectory probes one required directory. A path that exists as a plain
// file is reported Missing with a "not a directory" annotation; this type
// check applies uniformly, not just to the base.
func checkDirectory(p FileProber, basePath, rel string) (CheckOutcome, bool) {
	st := p.Stat(ProbePath(basePath, rel))
	display := DisplayPath(basePath, rel)
	switch {
	case !st.Exists:
		return Missing(display), false
	case !st.IsDir:
		return CheckOutcome{Status: StatusMissing, Path: display, Detail: "not a directory"}, false
	default:
		return Existing(display), true
	}
}

// ProbePath joins a slash-relative rule path onto basePath using the
// platform separator, for filesystem access.
func ProbePath(basePath, rel string) string {
	if rel == "" {
		return basePath
	}
	return filepath.Join(basePath, filepath.FromSlash(rel))
}

// DisplayPath builds the report path for a required directory. Report paths
// always use forward slashes so repeated runs render identically on every
// platform.
func DisplayPath(basePath, rel string) string {
	base := path.Clean(filepath.ToSlash(basePath))
	if rel == "" {
		return base
	}
	return base + "/" + rel
}
