package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
)

// DefaultYouTubeBaseURL is the YouTube Data API v3 root.
const DefaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"

// ErrVideoNotFound is returned when the API knows no video with the requested id.
var ErrVideoNotFound = errors.New("video not found")

// YouTubeFacade looks up video metadata through the YouTube Data API.
type YouTubeFacade struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	attempts uint
	delay    time.Duration
}

// YouTubeOpt configures a YouTubeFacade.
type YouTubeOpt func(*YouTubeFacade)

// WithBaseURL points the facade at another API root.
func WithBaseURL(baseURL string) YouTubeOpt {
	return func(f *YouTubeFacade) {
		f.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for lookups.
func WithHTTPClient(client *http.Client) YouTubeOpt {
	return func(f *YouTubeFacade) {
		f.client = client
	}
}

// WithRetry sets how many times a lookup is tried and the initial backoff.
func WithRetry(attempts uint, delay time.Duration) YouTubeOpt {
	return func(f *YouTubeFacade) {
		f.attempts = attempts
		f.delay = delay
	}
}

// NewYouTubeFacade creates a new facade for the given API key.
func NewYouTubeFacade(apiKey string, opts ...YouTubeOpt) *YouTubeFacade {
	f := &YouTubeFacade{
		apiKey:   apiKey,
		baseURL:  DefaultYouTubeBaseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		attempts: 3,
		delay:    200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type ytThumbnail struct {
	URL string `json:"url"`
}

type ytVideosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Default ytThumbnail `json:"default"`
				Medium  ytThumbnail `json:"medium"`
				High    ytThumbnail `json:"high"`
				Maxres  ytThumbnail `json:"maxres"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// FetchVideo returns the title and thumbnails of a video. Server errors and
// throttling are retried; anything else fails immediately.
func (f *YouTubeFacade) FetchVideo(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	meta, err := retry.DoWithData(
		func() (*models.VideoMetadata, error) {
			return f.fetchOnce(ctx, videoID)
		},
		retry.Context(ctx),
		retry.Attempts(f.attempts),
		retry.Delay(f.delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Log.Warnw("retrying video lookup", "videoID", videoID, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		logger.Log.Errorw("failed to fetch video metadata", "videoID", videoID, "error", err)
		return nil, err
	}
	return meta, nil
}

func (f *YouTubeFacade) fetchOnce(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	val := url.Values{}
	val.Set("part", "snippet")
	val.Set("id", videoID)
	val.Set("key", f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/videos?"+val.Encode(), nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("youtube videos status %d", resp.StatusCode)
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return nil, err
		}
		return nil, retry.Unrecoverable(err)
	}

	var body ytVideosResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, retry.Unrecoverable(err)
	}
	if len(body.Items) == 0 {
		return nil, retry.Unrecoverable(ErrVideoNotFound)
	}

	item := body.Items[0]
	thumbs := item.Snippet.Thumbnails
	return &models.VideoMetadata{
		VideoID: videoID,
		Title:   item.Snippet.Title,
		Thumbnails: models.Thumbnails{
			Maxres:  thumbs.Maxres.URL,
			High:    thumbs.High.URL,
			Medium:  thumbs.Medium.URL,
			Default: thumbs.Default.URL,
		},
	}, nil
}
