package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"bcpartners_backend/internal/config"
	"bcpartners_backend/internal/services"
	"bcpartners_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves the crawler-facing surface: sitemap and robots.
type SiteHandler struct {
	BaseHandler
	listingService services.ListingService
}

func NewSiteHandler(base BaseHandler, listingService services.ListingService) *SiteHandler {
	return &SiteHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

// RegisterRoutes mounts at the engine root, not under the API prefix;
// crawlers expect these paths at the origin.
func (h *SiteHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/sitemap.xml", h.Sitemap)
	r.GET("/robots.txt", h.Robots)
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap lists the home page plus every listing detail page. The home page
// outranks the listing pages; listings refresh weekly at most.
func (h *SiteHandler) Sitemap(c *gin.Context) {
	base := strings.TrimRight(config.GetConfig().Site.BaseURL, "/")

	listings, err := h.listingService.GetSitemapEntries(h.GetDB(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{
				Loc:        base + "/",
				ChangeFreq: "daily",
				Priority:   "1.0",
			},
		},
	}

	for i := range listings {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/partners/%s", base, listings[i].Slug),
			LastMod:    listings[i].UpdatedAt.UTC().Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}

// Robots keeps crawlers out of the moderation surface and points them at
// the sitemap.
func (h *SiteHandler) Robots(c *gin.Context) {
	base := strings.TrimRight(config.GetConfig().Site.BaseURL, "/")

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Disallow: /api/v1/admin/\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + base + "/sitemap.xml\n")

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}
