package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("youtube API key is missing or invalid")
	ErrVideoNotFound = errors.New("no video found for query")
)

type Video struct {
	VideoID      string
	ThumbnailURL string
}

type IYoutube interface {
	SearchVideo(ctx context.Context, query string) (Video, error)
}

type youtubeClient struct {
	apiKey     string
	httpClient *http.Client
}

func New() IYoutube {
	return &youtubeClient{
		apiKey:     os.Getenv("YOUTUBE_API_KEY"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Thumbnails struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchVideo returns the top video hit for the query.
func (y *youtubeClient) SearchVideo(ctx context.Context, query string) (Video, error) {
	endpoint := fmt.Sprintf(
		"https://www.googleapis.com/youtube/v3/search?key=%s&q=%s&type=video&part=snippet&maxResults=1",
		url.QueryEscape(y.apiKey),
		url.QueryEscape(query),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Video{}, err
	}

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return Video{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return Video{}, ErrMissingAPIKey
	}

	if resp.StatusCode != http.StatusOK {
		return Video{}, fmt.Errorf("youtube API error: %s", resp.Status)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Video{}, err
	}

	if len(parsed.Items) == 0 || parsed.Items[0].ID.Kind != "youtube#video" {
		return Video{}, ErrVideoNotFound
	}

	return Video{
		VideoID:      parsed.Items[0].ID.VideoID,
		ThumbnailURL: parsed.Items[0].Snippet.Thumbnails.High.URL,
	}, nil
}
