package logic

import (
	"encoding/json"
	"errors"
	"fedisound/dal"
	"fedisound/shared"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type outboxHarness struct {
	repo      *fakeRepo
	directory *fakeDirectory
	queue     *fakeQueue
}

func newTestOutbox() (*outboxHarness, *outbox) {
	cfg := &shared.Config{Host: testHost}
	h := &outboxHarness{
		repo:  newFakeRepo(),
		queue: &fakeQueue{},
	}
	h.directory = &fakeDirectory{actorsByIri: h.repo.actorsByIri}
	ob := &outbox{
		cfg:       cfg,
		logger:    nopLogger{},
		repo:      h.repo,
		directory: h.directory,
		queue:     h.queue,
		idb:       shared.IdBuilder{Host: cfg.Host},
	}
	return h, ob
}

func localActorWithFollowers(h *outboxHarness, followerCount int) *dal.Actor {
	actor := &dal.Actor{
		Id:           1,
		Iri:          aliceIri,
		Handle:       "alice",
		FollowersIri: aliceIri + "/followers",
		Local:        true,
	}
	h.repo.actorsByIri[actor.Iri] = actor
	for i := 0; i < followerCount; i++ {
		follower := &dal.Actor{
			Id:    10 + i,
			Iri:   "https://elsewhere.example/user/f" + string(rune('a'+i)),
			Inbox: "https://elsewhere.example/user/f" + string(rune('a'+i)) + "/inbox",
		}
		h.repo.followersByTarget[actor.Id] = append(h.repo.followersByTarget[actor.Id], follower)
	}
	return actor
}

func TestPostActivity_WrapsAudioAndFansOut(t *testing.T) {
	h, ob := newTestOutbox()
	alice := localActorWithFollowers(h, 3)

	doc := map[string]interface{}{
		"type":    "Audio",
		"name":    "First track",
		"content": "A test upload",
		"to":      []interface{}{shared.ActivityPublic},
		"cc":      []interface{}{alice.FollowersIri},
		"bto":     []interface{}{"https://elsewhere.example/user/fa"},
		"source":  map[string]interface{}{"content": "raw", "mediaType": "text/markdown"},
	}
	iri, err := ob.PostActivity(alice, doc)

	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(iri, "https://"+testHost+"/outbox/"))

	// One queue item per follower inbox; the public address delivers to nobody
	assert.Equal(t, 3, len(h.queue.items))
	for _, item := range h.queue.items {
		assert.Equal(t, alice.Iri, item.sendingActorIri)
		assert.Equal(t, iri, item.activityIri)
	}

	// Stored and queued payload is the wrapped Create, with local-only
	// fields stripped
	stored := h.repo.activitiesByIri[iri]
	assert.NotNil(t, stored)
	assert.Equal(t, "Create", stored.Type)
	assert.True(t, stored.Local)
	assert.True(t, stored.Processed)
	var parsed map[string]interface{}
	assert.Nil(t, json.Unmarshal([]byte(stored.Payload), &parsed))
	assert.Equal(t, "Create", parsed["type"])
	assert.Nil(t, parsed["bto"])
	assert.Nil(t, parsed["source"])
	obj := parsed["object"].(map[string]interface{})
	assert.Equal(t, "Audio", obj["type"])
	assert.Nil(t, obj["bto"])
	assert.Equal(t, iri+"/activity", obj["id"])
}

func TestPostActivity_BareActivityNotWrapped(t *testing.T) {
	h, ob := newTestOutbox()
	alice := localActorWithFollowers(h, 0)
	bob := &dal.Actor{
		Id:    2,
		Iri:   senderIri,
		Inbox: senderIri + "/inbox",
	}
	h.repo.actorsByIri[bob.Iri] = bob

	doc := map[string]interface{}{
		"type":   "Accept",
		"actor":  alice.Iri,
		"to":     []interface{}{bob.Iri},
		"object": map[string]interface{}{"id": "https://loud.example.net/follows/1", "type": "Follow"},
	}
	iri, err := ob.PostActivity(alice, doc)

	assert.Nil(t, err)
	assert.Equal(t, "Accept", h.repo.activitiesByIri[iri].Type)
	assert.Equal(t, 1, len(h.queue.items))
	assert.Equal(t, bob.Inbox, h.queue.items[0].toInbox)
}

func TestPostActivity_DuplicateRecipientsGetOneDelivery(t *testing.T) {
	h, ob := newTestOutbox()
	alice := localActorWithFollowers(h, 0)
	bob := &dal.Actor{
		Id:    2,
		Iri:   senderIri,
		Inbox: senderIri + "/inbox",
	}
	h.repo.actorsByIri[bob.Iri] = bob

	doc := map[string]interface{}{
		"type": "Note",
		"name": "hello",
		"to":   []interface{}{bob.Iri},
		"cc":   []interface{}{bob.Iri, shared.ActivityPublic},
	}
	_, err := ob.PostActivity(alice, doc)

	assert.Nil(t, err)
	assert.Equal(t, 1, len(h.queue.items))
}

func TestPostActivity_MissingType(t *testing.T) {
	h, ob := newTestOutbox()
	alice := localActorWithFollowers(h, 0)

	_, err := ob.PostActivity(alice, map[string]interface{}{"name": "no type"})

	assert.NotNil(t, err)
	assert.Equal(t, 0, len(h.queue.items))
}

func TestGetActivity_DeletedYieldsGone(t *testing.T) {
	h, ob := newTestOutbox()
	iri := "https://" + testHost + "/outbox/55"
	h.repo.activitiesByIri[iri] = &dal.Activity{
		Id:      55,
		Iri:     iri,
		Type:    "Create",
		Box:     dal.BoxOutbox,
		Payload: `{"id": "` + iri + `", "type": "Create"}`,
		Deleted: true,
	}

	act, doc, err := ob.GetActivity(55)

	assert.True(t, errors.Is(err, ErrResourceGone))
	assert.Nil(t, doc)
	// The row still comes back so callers can render a typed tombstone
	assert.NotNil(t, act)
	assert.Equal(t, "Create", act.Type)
}

func TestGetActivity_InboxRowsAreInvisible(t *testing.T) {
	h, ob := newTestOutbox()
	iri := "https://loud.example.net/activities/31"
	h.repo.activitiesByIri[iri] = &dal.Activity{
		Id:  56,
		Iri: iri,
		Box: dal.BoxInbox,
	}

	_, _, err := ob.GetActivity(56)

	assert.True(t, errors.Is(err, ErrResourceNotFound))
}
