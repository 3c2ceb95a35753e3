package services

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"portfolioai/models"
	"portfolioai/parsers"
)

// ParseResult is the full outcome of parsing one uploaded resume: the
// reconciled profile plus the heuristic parser's structured entries.
type ParseResult struct {
	Profile     models.CombinedProfile   `json:"profile"`
	Experiences []models.ExperienceEntry `json:"experiences"`
	Projects    []models.ProjectEntry    `json:"projects"`
}

// ResumeService runs the heuristic and AI-assisted parsers over the same
// document and reconciles their outputs.
type ResumeService struct {
	extractor *parsers.TextExtractor
	heuristic *parsers.ResumeParser
	ai        *AIResumeParser
	logger    *zap.Logger
}

// NewResumeService creates a resume parsing service.
func NewResumeService(ai *AIResumeParser, logger *zap.Logger) *ResumeService {
	return &ResumeService{
		extractor: parsers.NewTextExtractor(),
		heuristic: parsers.NewResumeParser(),
		ai:        ai,
		logger:    logger,
	}
}

// Parse extracts text once, runs both parsers and merges the results.
// Extraction and provider failures abort the whole parse; no partial record
// is returned in that case.
func (s *ResumeService) Parse(ctx context.Context, data []byte, format string) (*ParseResult, error) {
	text, err := s.extractor.Extract(data, format)
	if err != nil {
		return nil, err
	}

	record := s.heuristic.ParseText(text)

	aiProfile, err := s.ai.ParseText(ctx, text)
	if err != nil {
		return nil, err
	}

	combined := ReconcileProfiles(*record, *aiProfile)
	s.logger.Info("resume parsed",
		zap.String("format", format),
		zap.Int("experiences", len(record.Experiences)),
		zap.Int("projects", len(record.Projects)),
	)

	return &ParseResult{
		Profile:     combined,
		Experiences: record.Experiences,
		Projects:    record.Projects,
	}, nil
}

// ReconcileProfiles merges the heuristic and AI parses of one document with
// field-level precedence rules. It is pure and total: every branch falls
// back to an empty string.
//
// Interests and about-me intentionally come from the AI parse even when the
// heuristic parse found values; the heuristic side keeps name, email and
// the GitHub URL, which the AI parse does not produce.
func ReconcileProfiles(heuristic models.ProfileRecord, ai models.AIProfile) models.CombinedProfile {
	linkedin := heuristic.LinkedInURL
	if linkedin == "" {
		linkedin = ai.LinkedInURL
	}

	return models.CombinedProfile{
		Name:        heuristic.Name,
		Email:       heuristic.Email,
		Skills:      mergeSkills(heuristic.Skills, ai.Skills),
		Interests:   ai.Interests,
		AboutMe:     ai.AboutMe,
		LinkedInURL: linkedin,
		GitHubURL:   heuristic.GitHubURL,
	}
}

// mergeSkills unions the heuristic skill set with the AI's comma-separated
// skill string, de-duplicating case-insensitively. A non-empty union is
// rendered sorted and comma-joined; an empty union falls back to the AI's
// raw string.
func mergeSkills(heuristic []string, ai string) string {
	union := make(map[string]struct{})
	add := func(skill string) {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" {
			union[skill] = struct{}{}
		}
	}

	for _, skill := range heuristic {
		add(skill)
	}
	for _, skill := range strings.Split(ai, ",") {
		add(skill)
	}

	if len(union) == 0 {
		return ai
	}

	merged := make([]string, 0, len(union))
	for skill := range union {
		merged = append(merged, skill)
	}
	sort.Strings(merged)
	return strings.Join(merged, ", ")
}
