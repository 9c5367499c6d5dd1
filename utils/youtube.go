package utils

import (
	"fmt"
	"regexp"
)

// Formas de URL soportadas; gana el primer patrón que haga match.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/v/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/live/([A-Za-z0-9_-]+)`),
}

// Calidades de miniatura que expone el host estático de YouTube.
const (
	ThumbDefault = "default"
	ThumbMedium  = "mqdefault"
	ThumbHigh    = "hqdefault"
	ThumbMax     = "maxresdefault"
)

// ExtractYoutubeVideoID saca el ID de video de cualquiera de las formas
// de URL soportadas. Devuelve false si ninguna hace match.
func ExtractYoutubeVideoID(rawURL string) (string, bool) {
	for _, re := range youtubePatterns {
		if m := re.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// IsValidYoutubeURL indica si la URL contiene un video reconocible.
func IsValidYoutubeURL(rawURL string) bool {
	_, ok := ExtractYoutubeVideoID(rawURL)
	return ok
}

// YoutubeThumbnailURL arma la URL de miniatura. Calidad por defecto: máxima.
func YoutubeThumbnailURL(videoID, quality string) string {
	switch quality {
	case ThumbDefault, ThumbMedium, ThumbHigh, ThumbMax:
	default:
		quality = ThumbMax
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", videoID, quality)
}

// YoutubeEmbedURL arma la URL de embed con los parámetros fijos del reproductor.
func YoutubeEmbedURL(videoID string, autoplay, mute bool) string {
	url := fmt.Sprintf("https://www.youtube.com/embed/%s?rel=0&modestbranding=1", videoID)
	if autoplay {
		url += "&autoplay=1"
	}
	if mute {
		url += "&mute=1"
	}
	return url
}

// NormalizeYoutubeURL reescribe cualquier forma soportada a la forma
// canónica watch?v=. Si no se reconoce el ID devuelve la entrada tal cual.
func NormalizeYoutubeURL(rawURL string) string {
	id, ok := ExtractYoutubeVideoID(rawURL)
	if !ok {
		return rawURL
	}
	return "https://www.youtube.com/watch?v=" + id
}
