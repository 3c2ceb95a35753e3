package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"portfolioai/models"
)

// YouTubeService scrapes title and description metadata off YouTube watch
// pages. An unrecognized URL or a missing video yields nil metadata, not an
// error; only transport failures are errors.
type YouTubeService struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewYouTubeService creates a YouTube metadata fetcher.
func NewYouTubeService(logger *zap.Logger) *YouTubeService {
	return &YouTubeService{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: "https://www.youtube.com",
		logger:  logger,
	}
}

// FetchVideoMetadata returns the og:title/og:description of a video.
func (s *YouTubeService) FetchVideoMetadata(ctx context.Context, rawURL string) (*models.VideoInfo, error) {
	videoID := extractVideoID(rawURL)
	if videoID == "" {
		return nil, nil
	}

	watchURL := s.baseURL + "/watch?v=" + url.QueryEscape(videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return nil, &models.FetchError{Source: "youtube", Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &models.FetchError{Source: "youtube", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Debug("youtube page unavailable",
			zap.String("video_id", videoID),
			zap.Int("status", resp.StatusCode),
		)
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &models.FetchError{Source: "youtube", Err: fmt.Errorf("parsing page: %w", err)}
	}

	title, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	description, _ := doc.Find(`meta[property="og:description"]`).Attr("content")
	if description == "" {
		description, _ = doc.Find(`meta[name="description"]`).Attr("content")
	}

	return &models.VideoInfo{Title: title, Description: description}, nil
}

// extractVideoID handles youtube.com/watch?v= and youtu.be/ forms.
func extractVideoID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	switch u.Hostname() {
	case "www.youtube.com", "youtube.com", "m.youtube.com":
		return u.Query().Get("v")
	case "youtu.be":
		return strings.Trim(u.Path, "/")
	default:
		return ""
	}
}
