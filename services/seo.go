package services

import (
	"encoding/xml"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// BuildSitemap arma el sitemap en caliente desde las tablas: portada,
// categorías y artículos publicados.
func BuildSitemap(db *gorm.DB, siteURL string) ([]byte, error) {
	siteURL = strings.TrimSuffix(siteURL, "/")

	sitemap := Sitemap{XMLNS: sitemapNamespace}
	sitemap.URLs = append(sitemap.URLs, SitemapURL{
		Loc:        siteURL + "/",
		ChangeFreq: "hourly",
		Priority:   "1.0",
	})

	var categories []models.Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, WrapError(KindUpstream, "No se pudo leer las categorías", err)
	}
	for _, cat := range categories {
		sitemap.URLs = append(sitemap.URLs, SitemapURL{
			Loc:        siteURL + "/categoria/" + cat.Slug,
			LastMod:    cat.UpdatedAt.Format(time.RFC3339),
			ChangeFreq: "daily",
			Priority:   "0.7",
		})
	}

	var articles []models.Article
	if err := db.Select("slug", "updated_at").
		Where("status = ?", models.StatusPublished).
		Order("published_at DESC").
		Find(&articles).Error; err != nil {
		return nil, WrapError(KindUpstream, "No se pudo leer los artículos", err)
	}
	for _, art := range articles {
		sitemap.URLs = append(sitemap.URLs, SitemapURL{
			Loc:        siteURL + "/noticia/" + art.Slug,
			LastMod:    art.UpdatedAt.Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	out, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, WrapError(KindUpstream, "No se pudo serializar el sitemap", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// BuildRobotsTxt genera robots.txt: se bloquea el CMS y la API del crawling.
func BuildRobotsTxt(siteURL string) string {
	var sb strings.Builder
	sb.WriteString("User-agent: *\n")
	for _, path := range []string{"/admin/", "/api/", "/auth/"} {
		sb.WriteString("Disallow: ")
		sb.WriteString(path)
		sb.WriteString("\n")
	}
	sb.WriteString("Allow: /\n")
	if siteURL != "" {
		sb.WriteString("\nSitemap: ")
		sb.WriteString(strings.TrimSuffix(siteURL, "/"))
		sb.WriteString("/sitemap.xml\n")
	}
	return sb.String()
}
