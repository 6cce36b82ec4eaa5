// internal/services/sitemap_service.go
package services

import (
	"encoding/xml"
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/Ayupanchal18/Renters-sub005/internal/models"
)

// SitemapService renders the sitemap.xml for crawlers. The document is
// rebuilt by the scheduler and kept in memory; requests between rebuilds
// serve the cached bytes.
type SitemapService struct {
	db      *gorm.DB
	baseURL string

	mu      sync.RWMutex
	cached  []byte
	builtAt time.Time
}

// Entries older than this are rebuilt on demand even if the scheduler
// missed a cycle.
const sitemapMaxAge = 6 * time.Hour

const sitemapEntryCap = 50000

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func NewSitemapService(db *gorm.DB, baseURL string) *SitemapService {
	return &SitemapService{
		db:      db,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Get returns the current sitemap document, rebuilding it when stale.
func (s *SitemapService) Get() ([]byte, error) {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.builtAt) < sitemapMaxAge {
		cached := s.cached
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	return s.Refresh()
}

// Refresh rebuilds the sitemap from the active listings.
func (s *SitemapService) Refresh() ([]byte, error) {
	var properties []models.Property
	if err := s.db.Model(&models.Property{}).
		Select("slug", "listing_type", "updated_at").
		Where("status = ?", models.PropertyStatusActive).
		Order("created_at DESC").
		Limit(sitemapEntryCap).
		Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sitemap entries: %w", err)
	}

	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: s.baseURL + "/", ChangeFreq: "daily", Priority: "1.0"},
			{Loc: s.baseURL + "/rent", ChangeFreq: "daily", Priority: "0.9"},
			{Loc: s.baseURL + "/buy", ChangeFreq: "daily", Priority: "0.9"},
		},
	}

	for _, property := range properties {
		if property.Slug == "" {
			continue
		}
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:        s.baseURL + property.CanonicalPath(),
			LastMod:    property.UpdatedAt.UTC().Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	body, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render sitemap: %w", err)
	}
	document := append([]byte(xml.Header), body...)

	s.mu.Lock()
	s.cached = document
	s.builtAt = time.Now()
	s.mu.Unlock()

	return document, nil
}
