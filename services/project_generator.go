package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"portfolioai/models"
)

const projectSystemPrompt = "You are a technical writer helping to create portfolio project descriptions."

var (
	respDescriptionRe  = regexp.MustCompile(`(?s)Description:(.*?)(?:Technologies|$)`)
	respTechnologiesRe = regexp.MustCompile(`(?s)Technologies:(.*)$`)
)

// ProjectLinks is the input for description generation: a project title
// plus whatever links the user provided.
type ProjectLinks struct {
	Title  string `json:"title"`
	GitHub string `json:"github,omitempty"`
	Demo   string `json:"demo,omitempty"`
	Live   string `json:"live,omitempty"`
}

// GeneratedProject is a completed description with an inferred technology
// list.
type GeneratedProject struct {
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
}

// ProjectGenerator writes portfolio project descriptions by gathering
// context from the project's GitHub repository and demo video, then asking
// the completion capability for prose.
type ProjectGenerator struct {
	completer Completer
	github    *GitHubService
	youtube   *YouTubeService
	logger    *zap.Logger
}

// NewProjectGenerator creates a project description generator.
func NewProjectGenerator(completer Completer, github *GitHubService, youtube *YouTubeService, logger *zap.Logger) *ProjectGenerator {
	return &ProjectGenerator{
		completer: completer,
		github:    github,
		youtube:   youtube,
		logger:    logger,
	}
}

// GenerateDescription produces a description for one project. The title is
// required; context fetches are best-effort and their failures only reduce
// the prompt, they never fail the request.
func (g *ProjectGenerator) GenerateDescription(ctx context.Context, links ProjectLinks) (*GeneratedProject, error) {
	if strings.TrimSpace(links.Title) == "" {
		return nil, &models.ValidationError{Field: "title"}
	}

	extra := g.gatherContext(ctx, links)
	prompt := buildProjectPrompt(links, extra)

	content, err := g.completer.Complete(ctx, projectSystemPrompt, prompt, 0.7, 300)
	if err != nil {
		return nil, err
	}
	return ParseProjectResponse(content), nil
}

// gatherContext fetches repository and video metadata in parallel. Each
// source that fails or has nothing is simply skipped.
func (g *ProjectGenerator) gatherContext(ctx context.Context, links ProjectLinks) []string {
	var (
		mu    sync.Mutex
		parts []string
	)
	add := func(part string) {
		mu.Lock()
		parts = append(parts, part)
		mu.Unlock()
	}

	p := pool.New().WithMaxGoroutines(2)

	if owner, repo, ok := ExtractOwnerRepo(links.GitHub); ok {
		p.Go(func() {
			meta, err := g.github.FetchRepoMeta(ctx, owner, repo)
			if err != nil {
				g.logger.Debug("github context unavailable", zap.Error(err))
				return
			}
			add(fmt.Sprintf("GitHub repository: %s. Language: %s. Stars: %d. Topics: %s.",
				meta.Description, meta.Language, meta.Stars, strings.Join(meta.Topics, ", ")))
		})
	}

	if links.Demo != "" {
		p.Go(func() {
			info, err := g.youtube.FetchVideoMetadata(ctx, links.Demo)
			if err != nil {
				g.logger.Debug("video context unavailable", zap.Error(err))
				return
			}
			if info != nil {
				add(fmt.Sprintf("Project demo video: %s. %s", info.Title, info.Description))
			}
		})
	}

	p.Wait()
	return parts
}

func buildProjectPrompt(links ProjectLinks, extra []string) string {
	return fmt.Sprintf(`Generate a detailed project description for a portfolio website. Use the following information:

Project Title: %s

Available Links:
- GitHub: %s
- Demo: %s
- Live: %s

Additional Context:
%s

Please provide:
1. A comprehensive project description, prefixed "Description:"
2. A list of technologies used (extracted or inferred), prefixed "Technologies:"`,
		links.Title,
		orNotProvided(links.GitHub),
		orNotProvided(links.Demo),
		orNotProvided(links.Live),
		strings.Join(extra, " "))
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}

// ParseProjectResponse splits a completion answer into description and
// technologies. When no "Description:" prefix is found the whole answer
// becomes the description.
func ParseProjectResponse(content string) *GeneratedProject {
	generated := &GeneratedProject{Description: strings.TrimSpace(content)}

	if m := respDescriptionRe.FindStringSubmatch(content); m != nil {
		generated.Description = strings.TrimSpace(m[1])
	}
	if m := respTechnologiesRe.FindStringSubmatch(content); m != nil {
		generated.Technologies = strings.TrimSpace(m[1])
	}
	return generated
}
