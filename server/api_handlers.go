package server

import (
	"encoding/json"
	"errors"
	"fedisound/logic"
	"fedisound/shared"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type apiHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	metrics   logic.IMetrics
	directory logic.IActorDirectory
	outbox    logic.IOutbox
	ingester  logic.ITrackIngester
	idb       shared.IdBuilder
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	directory logic.IActorDirectory,
	obox logic.IOutbox,
	ingester logic.ITrackIngester,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		directory: directory,
		outbox:    obox,
		ingester:  ingester,
		idb:       shared.IdBuilder{Host: cfg.Host},
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/users", func(w http.ResponseWriter, r *http.Request) { hg.postUsers(w, r) }},
		{"PUT", "/users/{user}", func(w http.ResponseWriter, r *http.Request) { hg.putUser(w, r) }},
		{"POST", "/users/{user}/tracks", func(w http.ResponseWriter, r *http.Request) { hg.postTracks(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type userReq struct {
	Handle  string `json:"handle"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

type userResp struct {
	Iri string `json:"iri"`
}

func (hg *apiHandlerGroup) postUsers(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling users POST: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("api/users")
	defer obs.Finish()

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var req userReq
	if err := json.Unmarshal(bodyBytes, &req); err != nil || req.Handle == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	actor, err := hg.directory.CreateLocalActor(req.Handle, req.Name, req.Summary)
	if errors.Is(err, logic.ErrActorExists) {
		writeErrorResponse(w, "User already exists", http.StatusConflict)
		return
	}
	if err != nil {
		hg.logger.Errorf("Failed to create local actor: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJsonResponse(hg.logger, w, userResp{Iri: actor.Iri})
}

// putUser changes a local user's profile and announces the change to the
// fediverse with an Update activity.
func (hg *apiHandlerGroup) putUser(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user PUT: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("api/users/update")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var req userReq
	if err := json.Unmarshal(bodyBytes, &req); err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	actor, err := hg.directory.UpdateLocalActor(userName, req.Name, req.Summary)
	if errors.Is(err, logic.ErrResourceNotFound) || errors.Is(err, logic.ErrResourceGone) {
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}
	if err != nil {
		hg.logger.Errorf("Failed to update local actor: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	doc, err := hg.directory.GetActorDoc(userName)
	if err != nil {
		hg.logger.Errorf("Failed to render updated actor doc: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	update := map[string]interface{}{
		"type":   "Update",
		"actor":  actor.Iri,
		"to":     []interface{}{shared.ActivityPublic},
		"cc":     []interface{}{actor.FollowersIri},
		"object": doc,
	}
	if _, err = hg.outbox.PostActivity(actor, update); err != nil {
		hg.logger.Errorf("Failed to publish profile update: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	writeJsonResponse(hg.logger, w, userResp{Iri: actor.Iri})
}

type trackReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MediaUrl    string `json:"mediaUrl"`
	MediaType   string `json:"mediaType"`
}

type trackResp struct {
	Iri string `json:"iri"`
}

// postTracks publishes a new audio track: the Audio object gets wrapped in a
// Create, stored in the actor's outbox, and fanned out to followers.
func (hg *apiHandlerGroup) postTracks(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling tracks POST: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("api/tracks")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var req trackReq
	if err := json.Unmarshal(bodyBytes, &req); err != nil || req.Title == "" || req.MediaUrl == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	actor, err := hg.directory.EnsureActorByIri(hg.idb.UserUrl(userName))
	if err != nil || !actor.Local || actor.Deleted {
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}

	audio := map[string]interface{}{
		"type":         "Audio",
		"name":         req.Title,
		"content":      req.Description,
		"attributedTo": actor.Iri,
		"to":           []interface{}{shared.ActivityPublic},
		"cc":           []interface{}{actor.FollowersIri},
		"url": map[string]interface{}{
			"type":      "Link",
			"href":      req.MediaUrl,
			"mediaType": req.MediaType,
		},
	}
	iri, err := hg.outbox.PostActivity(actor, audio)
	if err != nil {
		hg.logger.Errorf("Failed to publish track: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	// Mirror the published object into the local track catalog
	createDoc := map[string]interface{}{
		"id":    iri,
		"type":  "Create",
		"actor": actor.Iri,
		"object": map[string]interface{}{
			"id":           iri + "/activity",
			"type":         "Audio",
			"name":         req.Title,
			"content":      req.Description,
			"attributedTo": actor.Iri,
			"published":    time.Now().UTC().Format(time.RFC3339),
			"url":          audio["url"],
		},
	}
	createBytes, _ := json.Marshal(createDoc)
	if err = hg.ingester.CreateFromActivity(actor, createBytes); err != nil {
		hg.logger.Errorf("Failed to save local track: %v", err)
	}

	w.WriteHeader(http.StatusCreated)
	writeJsonResponse(hg.logger, w, trackResp{Iri: iri})
}
