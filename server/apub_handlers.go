package server

import (
	"encoding/json"
	"errors"
	"fedisound/dto"
	"fedisound/logic"
	"fedisound/shared"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gorilla/mux"
)

const sigFallbackFailedStr = "failed to verify request (using HTTP signatures or fetching the IRI)"

// Groups together the handlers needed to implement an ActivityPub server.
type apubHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    logic.IMetrics
	sigChecker logic.IHttpSigChecker
	fetcher    logic.IRemoteFetcher
	directory  logic.IActorDirectory
	inbox      logic.IInboxProcessor
	outbox     logic.IOutbox
	idb        shared.IdBuilder
	reResource *regexp.Regexp
}

func NewApubHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	sigChecker logic.IHttpSigChecker,
	fetcher logic.IRemoteFetcher,
	directory logic.IActorDirectory,
	ibox logic.IInboxProcessor,
	obox logic.IOutbox,
) IHandlerGroup {
	res := apubHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		sigChecker: sigChecker,
		fetcher:    fetcher,
		directory:  directory,
		inbox:      ibox,
		outbox:     obox,
		idb:        shared.IdBuilder{Host: cfg.Host},
	}
	res.reResource = regexp.MustCompile("^acct:([^@]+)@([^@]+)$")
	return &res
}

func (hg *apubHandlerGroup) Prefix() string {
	return ""
}

func (hg *apubHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/.well-known/webfinger", func(w http.ResponseWriter, r *http.Request) { hg.getWebfinger(w, r) }},
		{"GET", "/user/{user}", func(w http.ResponseWriter, r *http.Request) { hg.getUser(w, r) }},
		{"GET", "/user/{user}/outbox", func(w http.ResponseWriter, r *http.Request) { hg.getUserOutbox(w, r) }},
		{"GET", "/user/{user}/followers", func(w http.ResponseWriter, r *http.Request) { hg.getUserFollowers(w, r) }},
		{"GET", "/user/{user}/followings", func(w http.ResponseWriter, r *http.Request) { hg.getUserFollowings(w, r) }},
		{"GET", "/outbox/{id}", func(w http.ResponseWriter, r *http.Request) { hg.getActivity(w, r, false) }},
		{"GET", "/outbox/{id}/activity", func(w http.ResponseWriter, r *http.Request) { hg.getActivity(w, r, true) }},
		{"POST", "/user/{user}/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
		{"POST", "/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
	}
}

func (hg *apubHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *apubHandlerGroup) getWebfinger(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling webfinger GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("webfinger")
	defer obs.Finish()

	resourceParam := r.URL.Query().Get("resource")
	groups := hg.reResource.FindStringSubmatch(resourceParam)
	if groups == nil {
		hg.logger.Infof("Webfinger: Invalid request; 'resource' param is '%s'", resourceParam)
		writeErrorResponse(w, "Missing or invalid 'resource' param", http.StatusBadRequest)
		return
	}
	user, host := groups[1], groups[2]
	if host != hg.cfg.Host {
		hg.logger.Infof("Webfinger: Request for foreign host '%s'", host)
		writeErrorResponse(w, "No such resource", http.StatusNotFound)
		return
	}

	resp, err := hg.directory.GetWebfinger(user)
	if err != nil {
		hg.logger.Infof("Webfinger: No such resource; 'resource' param is '%s'", resourceParam)
		writeErrorResponse(w, "No such resource", http.StatusNotFound)
		return
	}

	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apubHandlerGroup) getUser(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	actorDoc, err := hg.directory.GetActorDoc(userName)
	if errors.Is(err, logic.ErrResourceGone) {
		hg.writeTombstone(w, hg.idb.UserUrl(userName), "Person")
		return
	}
	if err != nil {
		hg.logger.Infof("Info requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}

	writeActivityJsonResponse(hg.logger, w, http.StatusOK, actorDoc)
}

func (hg *apubHandlerGroup) getUserOutbox(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user outbox GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/outbox")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	col, err := hg.directory.GetOutboxCollection(userName)
	hg.writeCollection(w, userName, col, err)
}

func (hg *apubHandlerGroup) getUserFollowers(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user followers GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/followers")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	col, err := hg.directory.GetFollowersCollection(userName)
	hg.writeCollection(w, userName, col, err)
}

func (hg *apubHandlerGroup) getUserFollowings(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user followings GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/followings")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	col, err := hg.directory.GetFollowingsCollection(userName)
	hg.writeCollection(w, userName, col, err)
}

func (hg *apubHandlerGroup) writeCollection(w http.ResponseWriter, userName string, col *dto.OrderedCollection, err error) {
	if errors.Is(err, logic.ErrResourceGone) {
		hg.writeTombstone(w, hg.idb.UserUrl(userName), "Person")
		return
	}
	if err != nil {
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}
	writeActivityJsonResponse(hg.logger, w, http.StatusOK, col)
}

func (hg *apubHandlerGroup) getActivity(w http.ResponseWriter, r *http.Request, objectOnly bool) {

	hg.logger.Infof("Handling activity GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("outbox/activity")
	defer obs.Finish()

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}

	act, doc, err := hg.outbox.GetActivity(id)
	if errors.Is(err, logic.ErrResourceGone) {
		hg.writeTombstone(w, act.Iri, act.Type)
		return
	}
	if err != nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}

	if objectOnly {
		if obj, ok := doc["object"].(map[string]interface{}); ok {
			obj["@context"] = "https://www.w3.org/ns/activitystreams"
			writeActivityJsonResponse(hg.logger, w, http.StatusOK, obj)
			return
		}
	}
	writeActivityJsonResponse(hg.logger, w, http.StatusOK, doc)
}

func (hg *apubHandlerGroup) writeTombstone(w http.ResponseWriter, iri, formerType string) {
	tomb := dto.Tombstone{
		Context:    "https://www.w3.org/ns/activitystreams",
		Id:         iri,
		Type:       "Tombstone",
		FormerType: formerType,
	}
	writeActivityJsonResponse(hg.logger, w, http.StatusGone, &tomb)
}

func (hg *apubHandlerGroup) postInbox(w http.ResponseWriter, r *http.Request) {

	var err error
	hg.logger.Infof("Handling inbox POST: %s", r.URL.Path)
	userName := mux.Vars(r)["user"]

	if userName == "" {
		obs := hg.metrics.StartApubRequestIn("inbox")
		defer obs.Finish()
	} else {
		obs := hg.metrics.StartApubRequestIn("user/inbox")
		defer obs.Finish()
	}

	bodyBytes := readBody(hg.logger, w, r)
	if len(bodyBytes) == 0 {
		hg.logger.Info("Empty request body")
		writeErrorResponse(w, "Request body must not be empty", http.StatusInternalServerError)
		return
	}

	// First, parse a rudimentary version of the activity to know who signed it
	var act dto.ActivityInBase
	if err = json.Unmarshal(bodyBytes, &act); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v", err)
		writeErrorResponse(w, "Request body is not valid JSON", http.StatusInternalServerError)
		return
	}

	// Verify signature; tolerate senders that sign badly but serve a
	// fetchable copy of what they sent
	var senderDoc *dto.ActorDoc
	var sigProblem string
	senderDoc, sigProblem, err = hg.sigChecker.Check(act.Actor, r)
	if err != nil {
		hg.logger.Errorf("Unexpected error trying to verify signature: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if sigProblem != "" {
		hg.logger.Infof("Cannot verify signature (%s), trying to fetch IRI %s", sigProblem, act.Id)
		var fetched *dto.ActivityInBase
		var fetchedBytes []byte
		fetched, fetchedBytes, err = hg.fetcher.RetrieveActivity(act.Id)
		if err == nil {
			senderDoc, err = hg.fetcher.RetrieveActor(fetched.Actor)
		}
		if err != nil {
			hg.logger.Warnf("Inbox POST failed both signature check and IRI fetch: %s", act.Id)
			writeErrorResponse(w, sigFallbackFailedStr, http.StatusUnprocessableEntity)
			return
		}
		bodyBytes = fetchedBytes
	}

	if err = hg.inbox.Accept(senderDoc, bodyBytes); err != nil {
		hg.logger.Errorf("Failed to accept activity: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
