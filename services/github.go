package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"portfolioai/models"
)

const githubAPIBase = "https://api.github.com"

// ownerRepoRe matches github.com/:owner/:repo with an optional trailing path.
var ownerRepoRe = regexp.MustCompile(`(?i)github\.com/([A-Za-z0-9._-]+)/([A-Za-z0-9._-]+)`)

// ExtractOwnerRepo pulls owner and repo out of any github.com URL.
func ExtractOwnerRepo(u string) (owner, repo string, ok bool) {
	m := ownerRepoRe.FindStringSubmatch(u)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSuffix(m[2], ".git"), true
}

// RepoMeta is single-repository metadata from the GitHub REST API, used as
// context when generating project descriptions.
type RepoMeta struct {
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Stars       int      `json:"stargazers_count"`
	Topics      []string `json:"topics"`
}

// GitHubService fetches public profile and repository data from the GitHub
// REST API. An empty repository list is a valid outcome, distinct from a
// fetch failure.
type GitHubService struct {
	client  *http.Client
	baseURL string
	token   string
	logger  *zap.Logger
}

// NewGitHubService creates a GitHub fetcher. token may be empty for
// unauthenticated (rate-limited) access.
func NewGitHubService(token string, logger *zap.Logger) *GitHubService {
	return &GitHubService{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: githubAPIBase,
		token:   token,
		logger:  logger,
	}
}

// FetchProjects lists a user's public repositories as portfolio projects.
func (s *GitHubService) FetchProjects(ctx context.Context, username string) ([]models.RepoProject, error) {
	var repos []struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		HTMLURL     string   `json:"html_url"`
		Topics      []string `json:"topics"`
		Homepage    string   `json:"homepage"`
		Fork        bool     `json:"fork"`
	}
	url := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=30", s.baseURL, username)
	if err := s.getJSON(ctx, url, &repos); err != nil {
		return nil, err
	}

	projects := make([]models.RepoProject, 0, len(repos))
	for _, repo := range repos {
		if repo.Fork {
			continue
		}
		projects = append(projects, models.RepoProject{
			Name:        repo.Name,
			Description: repo.Description,
			URL:         repo.HTMLURL,
			Topics:      repo.Topics,
			Homepage:    repo.Homepage,
		})
	}
	s.logger.Debug("github repos fetched",
		zap.String("username", username),
		zap.Int("count", len(projects)),
	)
	return projects, nil
}

// FetchRepoMeta fetches one repository's metadata.
func (s *GitHubService) FetchRepoMeta(ctx context.Context, owner, repo string) (*RepoMeta, error) {
	var meta RepoMeta
	url := fmt.Sprintf("%s/repos/%s/%s", s.baseURL, owner, repo)
	if err := s.getJSON(ctx, url, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// FetchReadme returns a repository's decoded README content, or "" when the
// repository has no README.
func (s *GitHubService) FetchReadme(ctx context.Context, owner, repo string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/readme", s.baseURL, owner, repo)
	req, err := s.newRequest(ctx, url)
	if err != nil {
		return "", &models.FetchError{Source: "github", Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &models.FetchError{Source: "github", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", &models.FetchError{Source: "github", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &models.FetchError{Source: "github", Err: err}
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(payload.Content, "\n", ""))
	if err != nil {
		return "", &models.FetchError{Source: "github", Err: err}
	}
	return string(decoded), nil
}

func (s *GitHubService) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	return req, nil
}

func (s *GitHubService) getJSON(ctx context.Context, url string, out any) error {
	req, err := s.newRequest(ctx, url)
	if err != nil {
		return &models.FetchError{Source: "github", Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &models.FetchError{Source: "github", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &models.FetchError{Source: "github", Err: fmt.Errorf("status %d for %s", resp.StatusCode, url)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &models.FetchError{Source: "github", Err: err}
	}
	return nil
}
