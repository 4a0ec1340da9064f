package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrPlaceNotFound = errors.New("place not found")

type Coordinates struct {
	Name      string
	Latitude  float64
	Longitude float64
}

type IWeather interface {
	Geocode(ctx context.Context, city string) (Coordinates, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
	Forecast(ctx context.Context, coords Coordinates) (string, error)
}

type weatherClient struct {
	httpClient *http.Client
}

func New() IWeather {
	return &weatherClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// Geocode resolves a city name. An exact case-insensitive name match wins
// over the first result.
func (w *weatherClient) Geocode(ctx context.Context, city string) (Coordinates, error) {
	endpoint := fmt.Sprintf(
		"https://geocoding-api.open-meteo.com/v1/search?name=%s",
		url.QueryEscape(city),
	)

	var parsed geocodeResponse
	if err := w.getJSON(ctx, endpoint, &parsed); err != nil {
		return Coordinates{}, err
	}

	if len(parsed.Results) == 0 {
		return Coordinates{}, ErrPlaceNotFound
	}

	chosen := parsed.Results[0]
	for _, result := range parsed.Results {
		if strings.EqualFold(result.Name, city) {
			chosen = result
			break
		}
	}

	return Coordinates{
		Name:      chosen.Name,
		Latitude:  chosen.Latitude,
		Longitude: chosen.Longitude,
	}, nil
}

type reverseResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
	} `json:"address"`
}

// ReverseGeocode names the city at the coordinates via Nominatim.
func (w *weatherClient) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	endpoint := fmt.Sprintf(
		"https://nominatim.openstreetmap.org/reverse?lat=%f&lon=%f&format=json",
		lat, lon,
	)

	var parsed reverseResponse
	if err := w.getJSON(ctx, endpoint, &parsed); err != nil {
		return "", err
	}

	for _, name := range []string{parsed.Address.City, parsed.Address.Town, parsed.Address.Village, parsed.Address.County} {
		if name != "" {
			return name, nil
		}
	}

	return "", ErrPlaceNotFound
}

// Forecast fetches the 10-day forecast as raw JSON with the coordinate keys
// stripped, ready to hand to the AI summarizer.
func (w *weatherClient) Forecast(ctx context.Context, coords Coordinates) (string, error) {
	endpoint := fmt.Sprintf(
		"https://api.open-meteo.com/v1/forecast?latitude=%f&longitude=%f&daily=temperature_2m_max,temperature_2m_min,precipitation_sum,windspeed_10m_max&hourly=temperature_2m,precipitation,windspeed_10m&timezone=auto&forecast_days=10",
		coords.Latitude, coords.Longitude,
	)

	var payload map[string]json.RawMessage
	if err := w.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}

	delete(payload, "latitude")
	delete(payload, "longitude")

	stripped, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	return string(stripped), nil
}

func (w *weatherClient) getJSON(ctx context.Context, endpoint string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather API error: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
