package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractYoutubeVideoIDAllShapes(t *testing.T) {
	// El mismo ID debe salir de las cinco formas soportadas
	urls := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ",
		"https://www.youtube.com/live/dQw4w9WgXcQ",
	}
	for _, url := range urls {
		id, ok := ExtractYoutubeVideoID(url)
		require.True(t, ok, "debería reconocer %s", url)
		assert.Equal(t, "dQw4w9WgXcQ", id, url)
	}
}

func TestExtractYoutubeVideoIDInvalid(t *testing.T) {
	for _, url := range []string{
		"",
		"no es una url",
		"https://vimeo.com/12345",
		"https://www.youtube.com/feed/subscriptions",
	} {
		_, ok := ExtractYoutubeVideoID(url)
		assert.False(t, ok, url)
		assert.False(t, IsValidYoutubeURL(url), url)
	}
}

func TestNormalizeYoutubeURL(t *testing.T) {
	canonical := "https://www.youtube.com/watch?v=abc123XYZ_"

	// Normalizar una URL ya canónica la deja igual
	assert.Equal(t, canonical, NormalizeYoutubeURL(canonical))

	// Cualquier forma soportada normaliza a la canónica
	assert.Equal(t, canonical, NormalizeYoutubeURL("https://youtu.be/abc123XYZ_"))
	assert.Equal(t, canonical, NormalizeYoutubeURL("https://www.youtube.com/embed/abc123XYZ_"))

	// Sin ID reconocible devuelve la entrada tal cual
	assert.Equal(t, "https://ejemplo.com", NormalizeYoutubeURL("https://ejemplo.com"))
}

func TestYoutubeThumbnailURL(t *testing.T) {
	assert.Equal(t,
		"https://img.youtube.com/vi/abc123XYZ_/maxresdefault.jpg",
		YoutubeThumbnailURL("abc123XYZ_", ThumbMax))

	// Calidad desconocida cae a la máxima
	assert.Equal(t,
		"https://img.youtube.com/vi/abc123XYZ_/maxresdefault.jpg",
		YoutubeThumbnailURL("abc123XYZ_", "4k"))

	assert.Equal(t,
		"https://img.youtube.com/vi/abc123XYZ_/mqdefault.jpg",
		YoutubeThumbnailURL("abc123XYZ_", ThumbMedium))
}

func TestYoutubeEmbedURL(t *testing.T) {
	assert.Equal(t,
		"https://www.youtube.com/embed/xyz?rel=0&modestbranding=1",
		YoutubeEmbedURL("xyz", false, false))
	assert.Equal(t,
		"https://www.youtube.com/embed/xyz?rel=0&modestbranding=1&autoplay=1&mute=1",
		YoutubeEmbedURL("xyz", true, true))
}
