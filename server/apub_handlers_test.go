package server

import (
	"encoding/json"
	"fedisound/dto"
	"fedisound/logic"
	"fedisound/shared"
	"fedisound/test/mocks"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const senderIri = "https://loud.example.net/user/carol"

type apubHarness struct {
	cfg            *shared.Config
	mockLogger     *mocks.MockILogger
	mockMetrics    *mocks.MockIMetrics
	mockSigChecker *mocks.MockIHttpSigChecker
	mockFetcher    *mocks.MockIRemoteFetcher
	mockDirectory  *mocks.MockIActorDirectory
	mockInbox      *mocks.MockIInboxProcessor
	mockOutbox     *mocks.MockIOutbox
}

func setupApubTest(t *testing.T) (*gomock.Controller, *apubHarness, *apubHandlerGroup) {

	ctrl := gomock.NewController(t)

	h := &apubHarness{
		cfg:            &shared.Config{Host: testHost},
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
		mockSigChecker: mocks.NewMockIHttpSigChecker(ctrl),
		mockFetcher:    mocks.NewMockIRemoteFetcher(ctrl),
		mockDirectory:  mocks.NewMockIActorDirectory(ctrl),
		mockInbox:      mocks.NewMockIInboxProcessor(ctrl),
		mockOutbox:     mocks.NewMockIOutbox(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(ctrl, h.mockMetrics)

	hg := NewApubHandlerGroup(h.cfg, h.mockLogger, h.mockMetrics, h.mockSigChecker,
		h.mockFetcher, h.mockDirectory, h.mockInbox, h.mockOutbox).(*apubHandlerGroup)
	return ctrl, h, hg
}

func makeCreateBody() string {
	return `{
		"id": "https://loud.example.net/activities/1",
		"type": "Create",
		"actor": "` + senderIri + `",
		"to": ["https://www.w3.org/ns/activitystreams#Public"],
		"object": {"id": "https://loud.example.net/tracks/1", "type": "Audio", "name": "x"}
	}`
}

func TestPostInbox_VerifiedSignature(t *testing.T) {
	ctrl, h, hg := setupApubTest(t)
	defer ctrl.Finish()

	body := makeCreateBody()
	senderDoc := &dto.ActorDoc{Id: senderIri, Type: "Person"}
	h.mockSigChecker.EXPECT().Check(senderIri, gomock.Any()).Return(senderDoc, "", nil)
	h.mockInbox.EXPECT().Accept(senderDoc, []byte(body)).Return(nil)

	req := httptest.NewRequest("POST", "https://"+testHost+"/inbox", strings.NewReader(body))
	w := httptest.NewRecorder()
	hg.postInbox(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPostInbox_BadSignatureFetchedCopy(t *testing.T) {
	ctrl, h, hg := setupApubTest(t)
	defer ctrl.Finish()

	body := makeCreateBody()
	fetchedBytes := []byte(body)
	var fetched dto.ActivityInBase
	assert.Nil(t, json.Unmarshal(fetchedBytes, &fetched))
	senderDoc := &dto.ActorDoc{Id: senderIri, Type: "Person"}

	h.mockSigChecker.EXPECT().Check(senderIri, gomock.Any()).Return(nil, "no signature header", nil)
	h.mockFetcher.EXPECT().RetrieveActivity("https://loud.example.net/activities/1").
		Return(&fetched, fetchedBytes, nil)
	h.mockFetcher.EXPECT().RetrieveActor(senderIri).Return(senderDoc, nil)
	h.mockInbox.EXPECT().Accept(senderDoc, fetchedBytes).Return(nil)

	req := httptest.NewRequest("POST", "https://"+testHost+"/inbox", strings.NewReader(body))
	w := httptest.NewRecorder()
	hg.postInbox(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPostInbox_BadSignatureUnfetchable(t *testing.T) {
	ctrl, h, hg := setupApubTest(t)
	defer ctrl.Finish()

	body := makeCreateBody()
	h.mockSigChecker.EXPECT().Check(senderIri, gomock.Any()).Return(nil, "key mismatch", nil)
	h.mockFetcher.EXPECT().RetrieveActivity("https://loud.example.net/activities/1").
		Return(nil, nil, logic.ErrResourceNotFound)
	// No Accept: the activity gets dropped

	req := httptest.NewRequest("POST", "https://"+testHost+"/inbox", strings.NewReader(body))
	w := httptest.NewRecorder()
	hg.postInbox(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), sigFallbackFailedStr)
}

func TestPostInbox_EmptyBody(t *testing.T) {
	ctrl, _, hg := setupApubTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest("POST", "https://"+testHost+"/inbox", strings.NewReader(""))
	w := httptest.NewRecorder()
	hg.postInbox(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetWebfinger_Ok(t *testing.T) {
	ctrl, h, hg := setupApubTest(t)
	defer ctrl.Finish()

	h.mockDirectory.EXPECT().GetWebfinger("alice").
		Return(&dto.WebfingerResp{Subject: "acct:alice@" + testHost}, nil)

	req := httptest.NewRequest("GET",
		"https://"+testHost+"/.well-known/webfinger?resource=acct:alice@"+testHost, nil)
	w := httptest.NewRecorder()
	hg.getWebfinger(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.WebfingerResp
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "acct:alice@"+testHost, resp.Subject)
}

func TestGetWebfinger_BadResource(t *testing.T) {
	ctrl, _, hg := setupApubTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest("GET", "https://"+testHost+"/.well-known/webfinger?resource=banana", nil)
	w := httptest.NewRecorder()
	hg.getWebfinger(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWebfinger_ForeignHost(t *testing.T) {
	ctrl, _, hg := setupApubTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest("GET",
		"https://"+testHost+"/.well-known/webfinger?resource=acct:alice@elsewhere.example", nil)
	w := httptest.NewRecorder()
	hg.getWebfinger(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUser_Ok(t *testing.T) {
	ctrl, h, hg := setupApubTest(t)
	defer ctrl.Finish()

	doc := &dto.ActorDoc{Id: "https://" + testHost + "/user/alice", Type: "Person", PreferredUserName: "alice"}
	h.mockDirectory.EXPECT().GetActorDoc("alice").Return(doc, nil)

	req := httptest.NewRequest("GET", "https://"+testHost+"/user/alice", nil)
	req = mux.SetURLVars(req, map[string]string{"user": "alice"})
	w := httptest.NewRecorder()
	hg.getUser(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/activity+json", w.Header().Get("Content-Type"))
}

func TestGetUser_DeletedGetsTombstone(t *testing.T) {
	ctrl, h, hg := setupApubTest(t)
	defer ctrl.Finish()

	h.mockDirectory.EXPECT().GetActorDoc("alice").Return(nil, logic.ErrResourceGone)

	req := httptest.NewRequest("GET", "https://"+testHost+"/user/alice", nil)
	req = mux.SetURLVars(req, map[string]string{"user": "alice"})
	w := httptest.NewRecorder()
	hg.getUser(w, req)

	assert.Equal(t, http.StatusGone, w.Code)
	var tomb dto.Tombstone
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &tomb))
	assert.Equal(t, "Tombstone", tomb.Type)
	assert.Equal(t, "https://"+testHost+"/user/alice", tomb.Id)
	assert.Equal(t, "Person", tomb.FormerType)
}

func TestGetUserFollowers_Ok(t *testing.T) {
	ctrl, h, hg := setupApubTest(t)
	defer ctrl.Finish()

	col := &dto.OrderedCollection{
		Id:           "https://" + testHost + "/user/alice/followers",
		Type:         "OrderedCollection",
		TotalItems:   1,
		OrderedItems: []string{senderIri},
	}
	h.mockDirectory.EXPECT().GetFollowersCollection("alice").Return(col, nil)

	req := httptest.NewRequest("GET", "https://"+testHost+"/user/alice/followers", nil)
	req = mux.SetURLVars(req, map[string]string{"user": "alice"})
	w := httptest.NewRecorder()
	hg.getUserFollowers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var parsed dto.OrderedCollection
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	assert.Equal(t, uint(1), parsed.TotalItems)
}

func TestGetUserFollowers_DeletedGetsTombstone(t *testing.T) {
	ctrl, h, hg := setupApubTest(t)
	defer ctrl.Finish()

	h.mockDirectory.EXPECT().GetFollowersCollection("alice").Return(nil, logic.ErrResourceGone)

	req := httptest.NewRequest("GET", "https://"+testHost+"/user/alice/followers", nil)
	req = mux.SetURLVars(req, map[string]string{"user": "alice"})
	w := httptest.NewRecorder()
	hg.getUserFollowers(w, req)

	assert.Equal(t, http.StatusGone, w.Code)
	var tomb dto.Tombstone
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &tomb))
	assert.Equal(t, "https://"+testHost+"/user/alice", tomb.Id)
}

func TestGetActivity_ObjectOnlyAddsContext(t *testing.T) {
	ctrl, h, hg := setupApubTest(t)
	defer ctrl.Finish()

	doc := map[string]interface{}{
		"id":   "https://" + testHost + "/outbox/42",
		"type": "Create",
		"object": map[string]interface{}{
			"id":   "https://" + testHost + "/outbox/42/activity",
			"type": "Audio",
		},
	}
	h.mockOutbox.EXPECT().GetActivity(uint64(42)).Return(nil, doc, nil)

	req := httptest.NewRequest("GET", "https://"+testHost+"/outbox/42/activity", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	w := httptest.NewRecorder()
	hg.getActivity(w, req, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var obj map[string]interface{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &obj))
	assert.Equal(t, "https://www.w3.org/ns/activitystreams", obj["@context"])
	assert.Equal(t, "Audio", obj["type"])
}

func TestGetActivity_BadId(t *testing.T) {
	ctrl, _, hg := setupApubTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest("GET", "https://"+testHost+"/outbox/banana", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "banana"})
	w := httptest.NewRecorder()
	hg.getActivity(w, req, false)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
