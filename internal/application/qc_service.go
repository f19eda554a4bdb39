package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/dirqc/dirqc/internal/domain"
)

// QCService orchestrates one QC run:
// extract prefix -> validate structure -> evaluate file rules -> aggregate.
type QCService struct {
	prober  domain.FileProber
	history domain.RunHistory
	git     domain.GitInfo
}

func NewQCService(prober domain.FileProber, history domain.RunHistory, git domain.GitInfo) *QCService {
	return &QCService{
		prober:  prober,
		history: history,
		git:     git,
	}
}

// Run validates basePath against the structural contract for testType.
// File rules are only evaluated once the base directory itself is confirmed
// valid; a missing base short-circuits to a single directory outcome.
func (s *QCService) Run(basePath, testType string) (*domain.ValidationResult, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, fmt.Errorf("base directory must not be empty")
	}

	t := domain.ParseTestType(testType)
	prefix := domain.ExtractPrefix(basePath)

	dirs := domain.ValidateStructure(s.prober, basePath)

	var files []domain.CheckOutcome
	if len(dirs) > 0 && dirs[0].Status == domain.StatusExisting {
		files = domain.EvaluateFiles(s.prober, basePath, prefix, t)
	}

	result := domain.Aggregate(dirs, files)
	result.BasePath = basePath
	result.TestType = t
	result.Prefix = prefix
	return result, nil
}

// Record appends the run to the directory's QC history. When the directory is
// under version control the entry carries the HEAD commit hash. Recording is
// bookkeeping only and never alters a verdict.
func (s *QCService) Record(result *domain.ValidationResult) error {
	if s.history == nil {
		return nil
	}

	entry := domain.RunEntry{
		Timestamp:    time.Now().UTC(),
		BasePath:     result.BasePath,
		TestType:     result.TestType,
		Prefix:       result.Prefix,
		Passed:       result.Passed,
		MissingDirs:  len(result.MissingDirs),
		MissingFiles: len(result.MissingFiles),
		FileIssues:   len(result.FileIssues),
	}

	if s.git != nil && s.git.IsGitRepo(result.BasePath) {
		if hash, err := s.git.CommitHash(result.BasePath); err == nil {
			entry.CommitHash = hash
		}
	}

	if err := s.history.Save(result.BasePath, entry); err != nil {
		return fmt.Errorf("recording run history: %w", err)
	}
	return nil
}

// History returns the recorded runs for a base directory, oldest first.
func (s *QCService) History(basePath string) ([]domain.RunEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	entries, err := s.history.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading run history: %w", err)
	}
	return entries, nil
}
