package utils

import (
	"math/rand"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// Hosts de páginas de compartir que no sirven bytes de imagen directos.
var blockedImageHosts = []string{
	"ibb.co",
	"imgbb.com",
	"postimg.cc",
	"prnt.sc",
	"gyazo.com",
}

// Fragmentos de path que delatan una página de galería, no una imagen.
var blockedPathParts = []string{
	"/album/",
	"/gallery/",
	"/share/",
}

// CDNs de imágenes confiables: se aceptan aunque el path no lleve extensión.
var trustedImageHosts = []string{
	"images.unsplash.com",
	"images.pexels.com",
	"i.imgur.com",
	"i.ytimg.com",
	"img.youtube.com",
	"res.cloudinary.com",
	"lh3.googleusercontent.com",
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".svg"}

// Rotación fija de imágenes de respaldo para URLs rechazadas o vacías.
var fallbackImages = []string{
	"https://images.unsplash.com/photo-1504711434969-e33886168f5c?w=1200&q=80",
	"https://images.unsplash.com/photo-1495020689067-958852a7765e?w=1200&q=80",
	"https://images.unsplash.com/photo-1457369804613-52c61a468e7d?w=1200&q=80",
	"https://images.unsplash.com/photo-1585829365295-ab7cd400c167?w=1200&q=80",
}

// FallbackImageURL devuelve una imagen de respaldo al azar.
func FallbackImageURL() string {
	return fallbackImages[rand.Intn(len(fallbackImages))]
}

// IsFallbackImageURL indica si la URL pertenece a la rotación de respaldo.
func IsFallbackImageURL(raw string) bool {
	for _, f := range fallbackImages {
		if raw == f {
			return true
		}
	}
	return false
}

// HasImageExtension revisa si el path termina en una extensión de imagen conocida.
func HasImageExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func hostMatches(host, candidate string) bool {
	return host == candidate || strings.HasSuffix(host, "."+candidate)
}

// SafeImageURL valida una URL de imagen suministrada por el usuario.
// Devuelve la entrada sin cambios si es aceptable; si no, una imagen de
// respaldo de la rotación fija. Nunca lanza error: entrada rota = respaldo.
func SafeImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FallbackImageURL()
	}

	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		log.Warn().Str("url", raw).Msg("URL de imagen inválida, usando respaldo")
		return FallbackImageURL()
	}

	host := strings.ToLower(parsed.Hostname())
	for _, blocked := range blockedImageHosts {
		if hostMatches(host, blocked) {
			log.Warn().Str("url", raw).Str("host", host).Msg("Host de imagen bloqueado, usando respaldo")
			return FallbackImageURL()
		}
	}

	lowerPath := strings.ToLower(parsed.Path)
	for _, part := range blockedPathParts {
		if strings.Contains(lowerPath, part) {
			log.Warn().Str("url", raw).Msg("Path de imagen bloqueado, usando respaldo")
			return FallbackImageURL()
		}
	}

	if HasImageExtension(parsed.Path) {
		return raw
	}
	for _, trusted := range trustedImageHosts {
		if hostMatches(host, trusted) {
			return raw
		}
	}
	// Host de Supabase Storage propio: también confiable
	if strings.Contains(host, ".supabase.co") {
		return raw
	}

	log.Warn().Str("url", raw).Msg("URL sin extensión de imagen ni host confiable, usando respaldo")
	return FallbackImageURL()
}
