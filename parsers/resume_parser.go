package parsers

import (
	"portfolioai/models"
)

// ResumeParser is the heuristic resume parser. It composes text extraction,
// section segmentation and the field extractors into one structured profile
// record. Field-level extraction never fails; only unreadable documents
// surface an error.
type ResumeParser struct {
	extractor *TextExtractor
}

// NewResumeParser creates a heuristic resume parser.
func NewResumeParser() *ResumeParser {
	return &ResumeParser{extractor: NewTextExtractor()}
}

// Parse extracts a profile record from raw document bytes.
func (p *ResumeParser) Parse(data []byte, format string) (*models.ProfileRecord, error) {
	text, err := p.extractor.Extract(data, format)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text), nil
}

// ParseText extracts a profile record from already-extracted resume text.
// Segmentation runs on the line-structured text; name, email and the
// document-wide skill scan operate on whitespace-collapsed text.
func (p *ResumeParser) ParseText(text string) *models.ProfileRecord {
	sections := SegmentSections(text)
	collapsed := CollapseWhitespace(text)

	experiences := ExtractExperiences(sections)

	aboutMe := sections[SectionSummary]
	if aboutMe == "" && len(experiences) > 0 {
		aboutMe = experiences[0].Description
	}

	return &models.ProfileRecord{
		Name:        ExtractName(collapsed),
		Email:       ExtractEmail(collapsed),
		Skills:      ExtractSkills(collapsed, sections),
		Interests:   ExtractInterests(text),
		AboutMe:     aboutMe,
		LinkedInURL: ExtractLinkedInURL(collapsed),
		GitHubURL:   ExtractGitHubURL(collapsed),
		Experiences: experiences,
		Projects:    ExtractProjects(sections),
	}
}
