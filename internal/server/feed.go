package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"

	"github.com/heyosj/dispatch/internal/core/catalog"
)

// handleFeed renders the posts catalog as RSS 2.0, newest first.
func (s *Server) handleFeed(c *gin.Context) {
	posts, err := s.catalogs["posts"].Recent(50)
	if err != nil {
		s.log.Error().Err(err).Msg("feed build failed")
		c.String(http.StatusInternalServerError, "feed unavailable")
		return
	}

	base := strings.TrimRight(s.cfg.Site.URL, "/")

	feed := &feeds.Feed{
		Title:       s.cfg.Site.Title,
		Link:        &feeds.Link{Href: base + "/rss.xml"},
		Description: s.cfg.Site.Description,
	}
	if s.cfg.Site.Author != "" {
		feed.Author = &feeds.Author{Name: s.cfg.Site.Author}
	}

	for _, p := range posts {
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: base + "/dispatch/" + p.Slug},
			Description: p.Description,
			Created:     catalog.ParseDate(p.Date),
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		s.log.Error().Err(err).Msg("feed render failed")
		c.String(http.StatusInternalServerError, "feed unavailable")
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, rss)
}
