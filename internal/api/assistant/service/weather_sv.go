package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/nlp"
	"AssistantGolang/pkg/openmeteo"
	"context"

	"github.com/sirupsen/logrus"
)

func (s *assistantService) handleWeather(ctx context.Context, englishText string, req assistant.MessageRequest) turnResult {
	prompt := nlp.StripAllPunctuation(englishText)

	var coords openmeteo.Coordinates

	place, ok := nlp.ExtractPlace(prompt)
	if ok {
		resolved, err := s.weatherClient.Geocode(ctx, place)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"place": place,
				"error": err.Error(),
			}).Warn("Geocoding failed")
			return turnResult{text: s.fromPool(locationUnknownSuggestCityPool), category: entity.CategoryWeather}
		}
		coords = resolved
	} else {
		// No city named, so the device has to tell us where it is.
		if req.LocationPermission != nil && !*req.LocationPermission {
			return turnResult{text: s.fromPool(permissionLocationPool), category: entity.CategoryWeather}
		}
		if req.LocationEnabled != nil && !*req.LocationEnabled {
			return turnResult{text: s.fromPool(locationServiceOffPool), category: entity.CategoryWeather}
		}
		if req.Latitude == nil || req.Longitude == nil {
			return turnResult{text: s.fromPool(locationUnknownSuggestCityPool), category: entity.CategoryWeather}
		}

		city, err := s.weatherClient.ReverseGeocode(ctx, *req.Latitude, *req.Longitude)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("Reverse geocoding failed")
			return turnResult{text: s.fromPool(locationUnknownSuggestCityPool), category: entity.CategoryWeather}
		}

		coords = openmeteo.Coordinates{Name: city, Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	forecast, err := s.weatherClient.Forecast(ctx, coords)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"city":  coords.Name,
			"error": err.Error(),
		}).Error("Forecast fetch failed")
		return turnResult{text: s.fromPool(weatherReportUnavailablePool), category: entity.CategoryWeather}
	}

	summary := s.groqClient.SummarizeWeather(ctx, englishText, forecast, s.now())

	return turnResult{
		text:      summary,
		category:  entity.CategoryWeather,
		actionURI: s.utils.WeatherSearchURI(coords.Name),
	}
}
