package utils

import (
	"crypto/rand"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	TelURI(number string) string
	NavigationURI(destination string) string
	WatchURI(videoID string) string
	WeatherSearchURI(city string) string
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) TelURI(number string) string {
	return "tel:" + strings.ReplaceAll(number, " ", "")
}

func (u *utils) NavigationURI(destination string) string {
	return "google.navigation:q=" + url.QueryEscape(destination)
}

func (u *utils) WatchURI(videoID string) string {
	return "http://www.youtube.com/watch?v=" + videoID
}

func (u *utils) WeatherSearchURI(city string) string {
	return "https://www.google.com/search?q=weather+" + url.QueryEscape(city)
}
