package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"portfolioai/models"
	"portfolioai/parsers"
)

const (
	digestSectionLimit = 200
	digestTotalLimit   = 800

	analyzeSystemPrompt = "You are a resume analyzer. Be brief and precise."

	analyzeTemperature = 0.7
	analyzeMaxTokens   = 300
)

// digestSections are scanned in this order when compressing resume text
// into a token-bounded digest.
var digestSections = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"summary", regexp.MustCompile(`(?i)summary|objective|profile|about`)},
	{"experience", regexp.MustCompile(`(?i)experience|work history`)},
	{"skills", regexp.MustCompile(`(?i)skills|technologies|competencies`)},
	{"education", regexp.MustCompile(`(?i)education|academic`)},
}

var (
	respSkillsRe    = regexp.MustCompile(`SKILLS:\s*(.*)`)
	respInterestsRe = regexp.MustCompile(`INTERESTS:\s*(.*)`)
	respLinkedInRe  = regexp.MustCompile(`LINKEDIN:\s*(.*)`)
	respAboutRe     = regexp.MustCompile(`ABOUT_ME:\s*(.*)`)
)

// AIResumeParser extracts a narrow profile (skills, interests, LinkedIn,
// about-me) from a resume by sending a compressed digest of the text to the
// completion capability and parsing its fixed-format answer.
type AIResumeParser struct {
	completer Completer
	extractor *parsers.TextExtractor
	logger    *zap.Logger
}

// NewAIResumeParser creates an AI-assisted resume parser.
func NewAIResumeParser(completer Completer, logger *zap.Logger) *AIResumeParser {
	return &AIResumeParser{
		completer: completer,
		extractor: parsers.NewTextExtractor(),
		logger:    logger,
	}
}

// Parse extracts text from the document and analyzes it. Extraction and
// provider errors propagate; a malformed model response does not.
func (p *AIResumeParser) Parse(ctx context.Context, data []byte, format string) (*models.AIProfile, error) {
	text, err := p.extractor.Extract(data, format)
	if err != nil {
		return nil, err
	}
	return p.ParseText(ctx, text)
}

// ParseText analyzes already-extracted resume text.
func (p *AIResumeParser) ParseText(ctx context.Context, text string) (*models.AIProfile, error) {
	digest := BuildDigest(text)
	prompt := buildAnalysisPrompt(digest)

	response, err := p.completer.Complete(ctx, analyzeSystemPrompt, prompt, analyzeTemperature, analyzeMaxTokens)
	if err != nil {
		return nil, err
	}

	profile := ParseAnalysisResponse(response)
	p.logger.Debug("ai resume analysis parsed",
		zap.Int("digest_length", len(digest)),
		zap.Bool("skills_found", profile.Skills != ""),
	)
	return profile, nil
}

// BuildDigest compresses resume text into a bounded excerpt: the first 200
// characters following each recognized section header, concatenated in a
// fixed order and capped at 800 characters. Recall is deliberately
// sacrificed for a cheap prompt.
func BuildDigest(text string) string {
	collapsed := parsers.CollapseWhitespace(text)

	var parts []string
	for _, section := range digestSections {
		loc := section.pattern.FindStringIndex(collapsed)
		if loc == nil {
			continue
		}
		parts = append(parts, truncate(collapsed[loc[0]:], digestSectionLimit))
	}
	return truncate(strings.Join(parts, " "), digestTotalLimit)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func buildAnalysisPrompt(digest string) string {
	return fmt.Sprintf(`Analyze this resume summary and extract key information:
SKILLS: List main technical and professional skills
INTERESTS: List key interests and passions
LINKEDIN: Extract LinkedIn URL if present
ABOUT_ME: Write 1-2 sentences about the person

Resume Summary:
%s

Format response exactly as:
SKILLS: <skills list>
INTERESTS: <interests list>
LINKEDIN: <URL or 'Not found'>
ABOUT_ME: <summary>`, digest)
}

// ParseAnalysisResponse parses the four-line response contract. A missing
// prefix yields an empty field, never an error; a LINKEDIN value of
// "not found" is normalized to empty.
func ParseAnalysisResponse(response string) *models.AIProfile {
	linkedin := firstGroup(respLinkedInRe, response)
	if strings.Contains(strings.ToLower(linkedin), "not found") {
		linkedin = ""
	}

	return &models.AIProfile{
		Skills:      firstGroup(respSkillsRe, response),
		Interests:   firstGroup(respInterestsRe, response),
		LinkedInURL: linkedin,
		AboutMe:     firstGroup(respAboutRe, response),
	}
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
