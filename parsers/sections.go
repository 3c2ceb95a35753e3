package parsers

import (
	"regexp"
	"strings"
)

// SectionKind identifies a recognized resume section.
type SectionKind string

const (
	SectionSkills     SectionKind = "skills"
	SectionExperience SectionKind = "experience"
	SectionProjects   SectionKind = "projects"
	SectionEducation  SectionKind = "education"
	SectionSummary    SectionKind = "summary"
	SectionUnknown    SectionKind = "unknown"
)

// sectionHeaders is the ordered table of header patterns. Matching is
// anchored at line start, so "Technical Skills & Tools" is a skills header
// while a mid-line mention of "skills" is not.
var sectionHeaders = []struct {
	kind    SectionKind
	pattern *regexp.Regexp
}{
	{SectionSkills, regexp.MustCompile(`(?i)^(technical\s+)?skills?\b|^technologies\b|^competencies\b|^expertise\b`)},
	{SectionExperience, regexp.MustCompile(`(?i)^experience\b|^employment( history)?\b|^work history\b|^work experience\b`)},
	{SectionProjects, regexp.MustCompile(`(?i)^projects?\b|^portfolio\b|^works\b`)},
	{SectionEducation, regexp.MustCompile(`(?i)^education\b|^academic\b|^qualification\b`)},
	{SectionSummary, regexp.MustCompile(`(?i)^summary\b|^objective\b|^profile\b|^about\b`)},
}

// SegmentSections splits line-structured resume text into labeled sections.
// Each header line is consumed; everything before the first recognized
// header lands under SectionUnknown. Blank lines inside a section are kept
// so later extractors can split on paragraph boundaries. When a header kind
// repeats, the last occurrence wins.
func SegmentSections(text string) map[SectionKind]string {
	sections := make(map[SectionKind]string)
	current := SectionUnknown
	var content []string

	flush := func() {
		block := strings.TrimSpace(strings.Join(content, "\n"))
		if block != "" {
			sections[current] = block
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if kind, ok := matchSectionHeader(line); ok {
			flush()
			current = kind
			content = content[:0]
			continue
		}
		content = append(content, line)
	}
	flush()

	return sections
}

func matchSectionHeader(line string) (SectionKind, bool) {
	if line == "" {
		return SectionUnknown, false
	}
	for _, h := range sectionHeaders {
		if h.pattern.MatchString(line) {
			return h.kind, true
		}
	}
	return SectionUnknown, false
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CollapseWhitespace folds every whitespace run into a single space. Line
// structure is destroyed, so segmentation must happen before this runs.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
