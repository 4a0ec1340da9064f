package assistantService

import (
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/nlp"
	"AssistantGolang/pkg/youtube"
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
)

func (s *assistantService) handleSong(ctx context.Context, englishText string) turnResult {
	prompt := nlp.StripAllPunctuation(englishText)

	// Song failures are tagged OTHER: without a playable result the turn is
	// just chatter, not a media turn.
	query, ok := nlp.ExtractSongQuery(prompt)
	if !ok {
		return turnResult{text: s.fromPool(songNotFoundPool), category: entity.CategoryOther}
	}

	video, err := s.youtubeClient.SearchVideo(ctx, query)
	if err != nil {
		if errors.Is(err, youtube.ErrMissingAPIKey) {
			// The client can still open an external search.
			return turnResult{
				text:     "Your Youtube API key is missing or invalid.",
				category: entity.CategoryOther,
				action: &entity.DeviceAction{
					Type: entity.DeviceActionOpenURL,
					URI:  "https://www.youtube.com/results?search_query=" + url.QueryEscape(query),
				},
			}
		}
		if errors.Is(err, youtube.ErrVideoNotFound) {
			return turnResult{text: s.fromPool(songNotFoundPool), category: entity.CategoryOther}
		}

		s.log.WithFields(logrus.Fields{
			"query": query,
			"error": err.Error(),
		}).Error("Video search failed")
		return turnResult{text: s.fromPool(songNotFoundPool), category: entity.CategoryOther}
	}

	uri := s.utils.WatchURI(video.VideoID)

	return turnResult{
		text:       fmt.Sprintf("Playing %s", query),
		category:   entity.CategorySongs,
		contentURL: video.ThumbnailURL,
		actionURI:  uri,
		action: &entity.DeviceAction{
			Type:  entity.DeviceActionPlay,
			URI:   uri,
			Label: query,
		},
	}
}
