package server

import (
	"fedisound/dal"
	"fedisound/shared"
	"fedisound/test/mocks"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupFeedTest(t *testing.T) (*gomock.Controller, *mocks.MockIRepo, *feedHandlerGroup) {

	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	setupDummyLogger(mockLogger)
	setupDummyMetrics(ctrl, mockMetrics)

	cfg := &shared.Config{Host: testHost}
	hg := NewFeedHandlerGroup(cfg, mockLogger, mockMetrics, mockRepo).(*feedHandlerGroup)
	return ctrl, mockRepo, hg
}

func TestGetFeed_RendersTracks(t *testing.T) {
	ctrl, mockRepo, hg := setupFeedTest(t)
	defer ctrl.Finish()

	aliceIri := "https://" + testHost + "/user/alice"
	actor := &dal.Actor{
		Id:        1,
		CreatedAt: time.Now().UTC(),
		Iri:       aliceIri,
		Domain:    testHost,
		Handle:    "alice",
		Name:      "Alice of the Airwaves",
		Summary:   "late night sounds",
		Local:     true,
	}
	tracks := []*dal.Track{
		{
			Iri:         "https://" + testHost + "/outbox/1/activity",
			Title:       "Night Drive",
			Description: "synths and rain",
			Published:   time.Now().UTC(),
			MediaUrl:    "https://" + testHost + "/media/1.mp3",
			MediaType:   "audio/mpeg",
		},
	}
	mockRepo.EXPECT().GetActorByName(testHost, "alice").Return(actor, nil)
	mockRepo.EXPECT().GetTracksOf(actor.Id, maxFeedItems).Return(tracks, nil)

	req := httptest.NewRequest("GET", "https://"+testHost+"/user/alice/feed.rss", nil)
	req = mux.SetURLVars(req, map[string]string{"user": "alice"})
	w := httptest.NewRecorder()
	hg.getFeed(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "<title>Alice of the Airwaves</title>")
	assert.Contains(t, body, "Night Drive")
	assert.Contains(t, body, `url="https://`+testHost+`/media/1.mp3"`)
	assert.Contains(t, body, `type="audio/mpeg"`)
}

func TestGetFeed_HandleFallsBackAsTitle(t *testing.T) {
	ctrl, mockRepo, hg := setupFeedTest(t)
	defer ctrl.Finish()

	actor := &dal.Actor{
		Id:        1,
		CreatedAt: time.Now().UTC(),
		Iri:       "https://" + testHost + "/user/alice",
		Domain:    testHost,
		Handle:    "alice",
		Local:     true,
	}
	mockRepo.EXPECT().GetActorByName(testHost, "alice").Return(actor, nil)
	mockRepo.EXPECT().GetTracksOf(actor.Id, maxFeedItems).Return([]*dal.Track{}, nil)

	req := httptest.NewRequest("GET", "https://"+testHost+"/user/alice/feed.rss", nil)
	req = mux.SetURLVars(req, map[string]string{"user": "alice"})
	w := httptest.NewRecorder()
	hg.getFeed(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>alice</title>")
}

func TestGetFeed_UnknownUser(t *testing.T) {
	ctrl, mockRepo, hg := setupFeedTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().GetActorByName(testHost, "ghost").Return(nil, nil)

	req := httptest.NewRequest("GET", "https://"+testHost+"/user/ghost/feed.rss", nil)
	req = mux.SetURLVars(req, map[string]string{"user": "ghost"})
	w := httptest.NewRecorder()
	hg.getFeed(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFeed_RemoteUserHidden(t *testing.T) {
	ctrl, mockRepo, hg := setupFeedTest(t)
	defer ctrl.Finish()

	actor := &dal.Actor{Id: 5, Domain: testHost, Handle: "carol", Local: false}
	mockRepo.EXPECT().GetActorByName(testHost, "carol").Return(actor, nil)

	req := httptest.NewRequest("GET", "https://"+testHost+"/user/carol/feed.rss", nil)
	req = mux.SetURLVars(req, map[string]string{"user": "carol"})
	w := httptest.NewRecorder()
	hg.getFeed(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
