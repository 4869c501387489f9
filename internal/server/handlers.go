package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/heyosj/dispatch/internal/core/catalog"
	"github.com/heyosj/dispatch/internal/core/render"
)

// docResponse is the full single-document payload: normalized metadata plus
// the rendered article and its relatives.
type docResponse struct {
	catalog.Item
	HTML        string           `json:"html"`
	TOC         []render.Section `json:"toc"`
	KeySections []render.Section `json:"key_sections"`
	Related     []catalog.Item   `json:"related"`
}

// featuredResponse mirrors the homepage spotlight: the freshest item across
// labs and playbooks.
type featuredResponse struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Date    string `json:"date"`
	Href    string `json:"href"`
	Section string `json:"section"`
}

func (s *Server) catalogFor(c *gin.Context) (*catalog.Catalog, bool) {
	cat, ok := s.catalogs[c.Param("kind")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown catalog " + c.Param("kind")})
	}
	return cat, ok
}

func (s *Server) handleList(c *gin.Context) {
	cat, ok := s.catalogFor(c)
	if !ok {
		return
	}

	var (
		items []catalog.Item
		err   error
	)

	switch {
	case c.Query("tag") != "":
		items, err = cat.ByTag(c.Query("tag"))
	case c.Query("pinned") != "":
		items, err = cat.Pinned(intQuery(c, "limit", 1))
	case c.Query("recent") != "":
		items, err = cat.Recent(intQuery(c, "limit", 5))
	default:
		items, err = cat.All()
	}
	if err != nil {
		s.log.Error().Err(err).Str("kind", cat.Kind().Name).Msg("list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func (s *Server) handleDoc(c *gin.Context) {
	cat, ok := s.catalogFor(c)
	if !ok {
		return
	}

	slug := c.Param("slug")

	item, err := cat.BySlug(slug)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found: " + slug})
		return
	}

	article, err := s.renderer.Article(item.Body)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	related, err := cat.Related(slug, 3)
	if err != nil {
		related = nil
	}

	c.JSON(http.StatusOK, docResponse{
		Item:        *item,
		HTML:        article.HTML,
		TOC:         article.TOC,
		KeySections: article.KeySections,
		Related:     related,
	})
}

// handleFeatured surfaces the single freshest lab or playbook, the way the
// homepage picks its spotlight card.
func (s *Server) handleFeatured(c *gin.Context) {
	var best *featuredResponse
	var bestTS int64

	for _, kind := range []catalog.Kind{catalog.Labs, catalog.Playbooks} {
		cat := s.catalogs[kind.Name+"s"]
		item, err := cat.Latest()
		if err != nil || item == nil || item.Title == "" || item.Date == "" {
			continue
		}

		ts := catalog.ParseDate(item.Updated).Unix()
		if best == nil || ts > bestTS {
			best = &featuredResponse{
				Title:   item.Title,
				Summary: item.Description,
				Date:    item.Date,
				Href:    "/" + kind.Dir + "/" + item.Slug,
				Section: kind.Dir,
			}
			bestTS = ts
		}
	}

	if best == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no featured content"})
		return
	}
	c.JSON(http.StatusOK, best)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(name)); err == nil && v > 0 {
		return v
	}
	return fallback
}
