package server

import (
	"fedisound/dal"
	"fedisound/logic"
	"fedisound/shared"
	"net/http"

	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"
)

const maxFeedItems = 50

// Serves per-user RSS feeds of published tracks.
type feedHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics logic.IMetrics
	repo    dal.IRepo
	idb     shared.IdBuilder
}

func NewFeedHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	repo dal.IRepo,
) IHandlerGroup {
	res := feedHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		repo:    repo,
		idb:     shared.IdBuilder{Host: cfg.Host},
	}
	return &res
}

func (hg *feedHandlerGroup) Prefix() string {
	return ""
}

func (hg *feedHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/user/{user}/feed.rss", func(w http.ResponseWriter, r *http.Request) { hg.getFeed(w, r) }},
	}
}

func (hg *feedHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *feedHandlerGroup) getFeed(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling feed GET: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("user/feed")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	actor, err := hg.repo.GetActorByName(hg.cfg.Host, userName)
	if err != nil {
		hg.logger.Errorf("Failed to retrieve actor '%s': %v", userName, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if actor == nil || !actor.Local || actor.Deleted {
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}

	tracks, err := hg.repo.GetTracksOf(actor.Id, maxFeedItems)
	if err != nil {
		hg.logger.Errorf("Failed to retrieve tracks of '%s': %v", userName, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	feedTitle := actor.Name
	if feedTitle == "" {
		feedTitle = actor.Handle
	}
	feed := &feeds.Feed{
		Title:       feedTitle,
		Link:        &feeds.Link{Href: actor.Iri},
		Description: actor.Summary,
		Author:      &feeds.Author{Name: shared.MakeFullMoniker(actor.Domain, actor.Handle)},
		Created:     actor.CreatedAt,
	}

	var feedItems []*feeds.Item
	for _, track := range tracks {
		feedItems = append(feedItems,
			&feeds.Item{
				Id:          track.Iri,
				Title:       track.Title,
				Link:        &feeds.Link{Href: track.MediaUrl},
				Description: track.Description,
				Enclosure:   &feeds.Enclosure{Url: track.MediaUrl, Type: track.MediaType, Length: "0"},
				Created:     track.Published,
			})
	}
	feed.Items = feedItems

	rss, err := feed.ToRss()
	if err != nil {
		hg.logger.Errorf("Failed to render feed of '%s': %v", userName, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write([]byte(rss)); err != nil {
		hg.logger.Errorf("Failed to write feed response: %v", err)
	}
}
