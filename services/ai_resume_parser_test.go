package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolioai/models"
)

// fakeCompleter satisfies Completer with a canned function.
type fakeCompleter struct {
	fn func(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error)
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	return f.fn(ctx, system, user, temperature, maxTokens)
}

func TestParseAnalysisResponse(t *testing.T) {
	profile := ParseAnalysisResponse("SKILLS: Go, Rust\nINTERESTS: hiking\nLINKEDIN: Not found\nABOUT_ME: Builds systems.\n")

	assert.Equal(t, "Go, Rust", profile.Skills)
	assert.Equal(t, "hiking", profile.Interests)
	assert.Equal(t, "", profile.LinkedInURL)
	assert.Equal(t, "Builds systems.", profile.AboutMe)
}

func TestParseAnalysisResponse_LinkedInPresent(t *testing.T) {
	profile := ParseAnalysisResponse("SKILLS: Go\nINTERESTS: chess\nLINKEDIN: https://linkedin.com/in/jsmith\nABOUT_ME: An engineer.")

	assert.Equal(t, "https://linkedin.com/in/jsmith", profile.LinkedInURL)
}

func TestParseAnalysisResponse_MissingPrefixes(t *testing.T) {
	profile := ParseAnalysisResponse("I could not analyze this resume.")

	assert.Equal(t, &models.AIProfile{}, profile)
}

func TestBuildDigest(t *testing.T) {
	text := "SUMMARY\nBackend engineer.\n\nEXPERIENCE\nAcme Corp.\n\nSKILLS\nGo, Rust\n\nEDUCATION\nBS CS\n"

	digest := BuildDigest(text)

	assert.Contains(t, digest, "SUMMARY Backend engineer.")
	assert.Contains(t, digest, "SKILLS Go, Rust")
	// Section order is fixed regardless of document order.
	assert.Less(t, strings.Index(digest, "EXPERIENCE"), strings.Index(digest, "SKILLS Go"))
}

func TestBuildDigest_Bounded(t *testing.T) {
	text := "SUMMARY\n" + strings.Repeat("a ", 500) + "\nEXPERIENCE\n" + strings.Repeat("b ", 500) +
		"\nSKILLS\n" + strings.Repeat("c ", 500) + "\nEDUCATION\n" + strings.Repeat("d ", 500)

	digest := BuildDigest(text)

	assert.LessOrEqual(t, len(digest), digestTotalLimit)
}

func TestBuildDigest_NoSections(t *testing.T) {
	assert.Equal(t, "", BuildDigest("just a wall of text with no headers"))
}

func TestAIResumeParser_ParseText(t *testing.T) {
	var gotUser string
	completer := &fakeCompleter{fn: func(_ context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
		gotUser = user
		assert.Equal(t, analyzeSystemPrompt, system)
		assert.Equal(t, analyzeTemperature, temperature)
		assert.Equal(t, analyzeMaxTokens, maxTokens)
		return "SKILLS: Go\nINTERESTS: hiking\nLINKEDIN: Not found\nABOUT_ME: Ships software.", nil
	}}

	parser := NewAIResumeParser(completer, zap.NewNop())
	profile, err := parser.ParseText(context.Background(), "SKILLS\nGo, Rust\n")

	require.NoError(t, err)
	assert.Equal(t, "Go", profile.Skills)
	assert.Equal(t, "", profile.LinkedInURL)
	assert.Contains(t, gotUser, "SKILLS Go, Rust")
}

func TestAIResumeParser_ProviderError(t *testing.T) {
	providerErr := &models.ProviderError{Err: assert.AnError}
	completer := &fakeCompleter{fn: func(context.Context, string, string, float64, int) (string, error) {
		return "", providerErr
	}}

	parser := NewAIResumeParser(completer, zap.NewNop())
	_, err := parser.ParseText(context.Background(), "SKILLS\nGo\n")

	assert.ErrorIs(t, err, providerErr)
}
