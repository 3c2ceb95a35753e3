package parsers

import (
	"regexp"
	"strings"
	"unicode"

	"portfolioai/models"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Month Year - Month Year, or Month Year - Present/Current.
	dateRangeRe = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*\d{4}\s*[-–]\s*((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*\d{4}|present|current)`)

	// Letters optionally followed by a technology suffix (c++, c#, node.js).
	genericSkillRe = regexp.MustCompile(`^[a-z][a-z]*(\+\+|#|\.js|\.net)?$`)

	skillSplitRe     = regexp.MustCompile(`[,|•\n]`)
	paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)
	interestsRe      = regexp.MustCompile(`(?i)interests|hobbies`)

	githubURLRe   = regexp.MustCompile(`(?i)\bgithub\.com/[A-Za-z0-9_.-]+`)
	linkedinURLRe = regexp.MustCompile(`(?i)\blinkedin\.com/in/[A-Za-z0-9_.-]+`)
)

// ExtractName finds a person name near the top of the text. It looks for a
// run of 2-4 capitalized words in the first three lines, then falls back to
// the first line when that line is short and digit-free.
func ExtractName(text string) string {
	lines := strings.SplitN(text, "\n", 4)
	if len(lines) == 4 {
		lines = lines[:3]
	}
	head := strings.Join(lines, " ")

	if name := findPersonRun(head); name != "" {
		return name
	}

	first := strings.TrimSpace(lines[0])
	if first != "" && len(strings.Fields(first)) <= 4 && !strings.ContainsFunc(first, unicode.IsDigit) {
		return first
	}
	return ""
}

// findPersonRun returns the first run of 2-4 consecutive capitalized
// alphabetic words. Longer runs are rejected as prose rather than names.
func findPersonRun(text string) string {
	var run []string
	flush := func() string {
		if len(run) >= 2 && len(run) <= 4 {
			return strings.Join(run, " ")
		}
		return ""
	}

	for _, word := range strings.Fields(text) {
		if isNameWord(word) {
			run = append(run, word)
			continue
		}
		if name := flush(); name != "" {
			return name
		}
		run = run[:0]
	}
	return flush()
}

func isNameWord(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && r != '\'' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// ExtractEmail returns the first email-shaped match in the text.
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractSkills collects skills from the skills section and from a
// token-by-token scan of the whole document. The result is a de-duplicated
// set of trimmed, lowercased entries in no particular order.
func ExtractSkills(text string, sections map[SectionKind]string) []string {
	found := make(map[string]struct{})

	if skillsText, ok := sections[SectionSkills]; ok {
		for _, candidate := range skillSplitRe.Split(skillsText, -1) {
			candidate = strings.ToLower(strings.TrimSpace(candidate))
			candidate = strings.TrimSpace(strings.TrimLeft(candidate, "-*"))
			if candidate == "" {
				continue
			}
			if IsKnownTechnology(candidate) || genericSkillRe.MatchString(candidate) {
				found[candidate] = struct{}{}
			}
		}
	}

	for _, token := range strings.Fields(text) {
		token = strings.ToLower(strings.Trim(token, ".,;:()[]{}\"'"))
		if IsKnownTechnology(token) {
			found[token] = struct{}{}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	return skills
}

// ExtractExperiences builds experience entries from the experience section.
// Each blank-line-separated paragraph becomes one entry: first line title,
// date range (when present) duration, remaining lines the description.
func ExtractExperiences(sections map[SectionKind]string) []models.ExperienceEntry {
	text, ok := sections[SectionExperience]
	if !ok {
		return nil
	}

	var entries []models.ExperienceEntry
	for _, paragraph := range splitParagraphs(text) {
		title, rest := splitFirstLine(paragraph)
		if title == "" {
			continue
		}
		entries = append(entries, models.ExperienceEntry{
			Title:       title,
			Duration:    dateRangeRe.FindString(paragraph),
			Description: rest,
		})
	}
	return entries
}

// ExtractProjects builds project entries from the projects section,
// collecting known technologies mentioned anywhere in each paragraph.
func ExtractProjects(sections map[SectionKind]string) []models.ProjectEntry {
	text, ok := sections[SectionProjects]
	if !ok {
		return nil
	}

	var entries []models.ProjectEntry
	for _, paragraph := range splitParagraphs(text) {
		title, rest := splitFirstLine(paragraph)
		if title == "" {
			continue
		}
		entries = append(entries, models.ProjectEntry{
			Title:        title,
			Technologies: matchTechnologies(paragraph),
			Description:  rest,
		})
	}
	return entries
}

// matchTechnologies returns the vocabulary entries mentioned in the text,
// comma-joined in vocabulary order, or "" when none match.
func matchTechnologies(text string) string {
	lower := strings.ToLower(text)
	var matched []string
	for _, tech := range techKeywords {
		if containsToken(lower, tech) {
			matched = append(matched, tech)
		}
	}
	return strings.Join(matched, ", ")
}

// containsToken reports whether tech occurs in text on word boundaries, so
// "java" does not fire on "javascript".
func containsToken(text, tech string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], tech)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(tech)
		beforeOK := idx == 0 || !isTokenChar(rune(text[idx-1]))
		afterOK := end == len(text) || !isTokenChar(rune(text[end]))
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isTokenChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#'
}

// ExtractInterests finds an interests/hobbies marker anywhere in the raw
// text and returns what follows it, up to the next blank line.
func ExtractInterests(text string) string {
	loc := interestsRe.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	tail := text[loc[1]:]
	if boundary := paragraphSplitRe.FindStringIndex(tail); boundary != nil {
		tail = tail[:boundary[0]]
	}
	tail = strings.TrimSpace(tail)
	tail = strings.TrimSpace(strings.TrimLeft(tail, ":-"))
	return tail
}

// ExtractGitHubURL returns the first github.com profile or repo URL.
func ExtractGitHubURL(text string) string {
	return normalizeURL(githubURLRe.FindString(text))
}

// ExtractLinkedInURL returns the first linkedin.com/in profile URL.
func ExtractLinkedInURL(text string) string {
	return normalizeURL(linkedinURLRe.FindString(text))
}

func normalizeURL(u string) string {
	if u == "" {
		return ""
	}
	return "https://" + strings.TrimSuffix(u, ".")
}

func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range paragraphSplitRe.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// splitFirstLine returns the first non-empty line and the remaining lines
// joined by single spaces.
func splitFirstLine(paragraph string) (first, rest string) {
	var remainder []string
	for _, line := range strings.Split(paragraph, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if first == "" {
			first = line
			continue
		}
		remainder = append(remainder, line)
	}
	return first, strings.Join(remainder, " ")
}
