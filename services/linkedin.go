package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"portfolioai/models"
)

// LinkedInService fetches public profile pages and extracts what the page
// metadata exposes. It is strictly best-effort: skills and experience count
// are not available without an authenticated session and come back empty.
type LinkedInService struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewLinkedInService creates a LinkedIn profile fetcher.
func NewLinkedInService(logger *zap.Logger) *LinkedInService {
	return &LinkedInService{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: "https://www.linkedin.com",
		logger:  logger,
	}
}

// ProfileIDFromURL extracts the profile identifier from a linkedin.com/in
// URL. It also accepts a bare identifier.
func ProfileIDFromURL(profileURL string) string {
	id := profileURL
	if idx := strings.Index(id, "/in/"); idx >= 0 {
		id = id[idx+len("/in/"):]
	}
	if idx := strings.IndexAny(id, "/?"); idx >= 0 {
		id = id[:idx]
	}
	return strings.TrimSpace(id)
}

// FetchProfile retrieves a public profile by identifier.
func (s *LinkedInService) FetchProfile(ctx context.Context, profileID string) (*models.LinkedInProfile, error) {
	if profileID == "" {
		return nil, &models.FetchError{Source: "linkedin", Err: fmt.Errorf("empty profile id")}
	}

	profileURL := s.baseURL + "/in/" + profileID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return nil, &models.FetchError{Source: "linkedin", Err: err}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &models.FetchError{Source: "linkedin", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &models.FetchError{Source: "linkedin", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &models.FetchError{Source: "linkedin", Err: fmt.Errorf("parsing page: %w", err)}
	}

	profile := parseProfilePage(doc)
	s.logger.Debug("linkedin profile fetched",
		zap.String("profile_id", profileID),
		zap.Bool("name_found", profile.Name != ""),
	)
	return profile, nil
}

// parseProfilePage reads the og: metadata of a public profile page. The
// og:title carries "Name - Headline" and og:description the summary.
func parseProfilePage(doc *goquery.Document) *models.LinkedInProfile {
	title, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	summary, _ := doc.Find(`meta[property="og:description"]`).Attr("content")

	title = strings.TrimSuffix(strings.TrimSpace(title), "| LinkedIn")
	title = strings.TrimSpace(title)

	name := title
	headline := ""
	if idx := strings.Index(title, " - "); idx >= 0 {
		name = strings.TrimSpace(title[:idx])
		headline = strings.TrimSpace(title[idx+3:])
	}

	return &models.LinkedInProfile{
		Name:     name,
		Headline: headline,
		Summary:  strings.TrimSpace(summary),
	}
}
