package dal

import (
	"fedisound/shared"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// The generated mocks import this package, so the logger stub lives here.
type testLogger struct{}

func (testLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (testLogger) Debugf(format string, args ...interface{})     {}
func (testLogger) Info(msg interface{}, keyvals ...interface{})  {}
func (testLogger) Infof(format string, args ...interface{})      {}
func (testLogger) Warn(msg interface{}, keyvals ...interface{})  {}
func (testLogger) Warnf(format string, args ...interface{})      {}
func (testLogger) Error(msg interface{}, keyvals ...interface{}) {}
func (testLogger) Errorf(format string, args ...interface{})     {}
func (testLogger) Printf(format string, args ...interface{})     {}

func newTestRepo(t *testing.T) IRepo {
	cfg := &shared.Config{DbFile: filepath.Join(t.TempDir(), "test.sqlite")}
	repo := NewRepo(cfg, testLogger{})
	repo.InitUpdateDb()
	return repo
}

func makeActor(iri, domain, handle string, local bool) *Actor {
	now := time.Now().UTC()
	return &Actor{
		CreatedAt: now,
		UpdatedAt: now,
		Iri:       iri,
		Domain:    domain,
		Handle:    handle,
		ActorType: "Person",
		Local:     local,
	}
}

func TestAddActor_DedupesByIri(t *testing.T) {
	repo := newTestRepo(t)

	alice := makeActor("https://sound.example.com/user/alice", "sound.example.com", "alice", true)
	isNew, err := repo.AddActorIfNotExist(alice, "privkey-pem")
	assert.Nil(t, err)
	assert.True(t, isNew)
	assert.NotEqual(t, 0, alice.Id)

	again := makeActor("https://sound.example.com/user/alice", "sound.example.com", "alice", true)
	isNew, err = repo.AddActorIfNotExist(again, "other-key")
	assert.Nil(t, err)
	assert.False(t, isNew)
	// The duplicate picks up the stored row's id
	assert.Equal(t, alice.Id, again.Id)

	privKey, err := repo.GetPrivKey(alice.Iri)
	assert.Nil(t, err)
	assert.Equal(t, "privkey-pem", privKey)
}

func TestGetActorByName(t *testing.T) {
	repo := newTestRepo(t)

	alice := makeActor("https://sound.example.com/user/alice", "sound.example.com", "alice", true)
	_, err := repo.AddActorIfNotExist(alice, "")
	assert.Nil(t, err)

	found, err := repo.GetActorByName("sound.example.com", "alice")
	assert.Nil(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, alice.Iri, found.Iri)

	missing, err := repo.GetActorByName("sound.example.com", "bob")
	assert.Nil(t, err)
	assert.Nil(t, missing)
}

func TestUpdateActorProfile(t *testing.T) {
	repo := newTestRepo(t)

	carol := makeActor("https://loud.example.net/user/carol", "loud.example.net", "carol", false)
	_, err := repo.AddActorIfNotExist(carol, "")
	assert.Nil(t, err)

	err = repo.UpdateActorProfile(carol.Iri, "Carol II", "new bio", "new-pem")
	assert.Nil(t, err)

	stored, err := repo.GetActorByIri(carol.Iri)
	assert.Nil(t, err)
	assert.Equal(t, "Carol II", stored.Name)
	assert.Equal(t, "new bio", stored.Summary)
	assert.Equal(t, "new-pem", stored.PubKey)
}

func TestSetActorDeleted(t *testing.T) {
	repo := newTestRepo(t)

	alice := makeActor("https://sound.example.com/user/alice", "sound.example.com", "alice", true)
	_, err := repo.AddActorIfNotExist(alice, "")
	assert.Nil(t, err)

	locals, err := repo.GetLocalActors()
	assert.Nil(t, err)
	assert.Equal(t, 1, len(locals))

	assert.Nil(t, repo.SetActorDeleted(alice.Iri))

	locals, err = repo.GetLocalActors()
	assert.Nil(t, err)
	assert.Equal(t, 0, len(locals))
	stored, err := repo.GetActorByIri(alice.Iri)
	assert.Nil(t, err)
	assert.True(t, stored.Deleted)
}

func TestFollowers_EdgeLifecycle(t *testing.T) {
	repo := newTestRepo(t)

	alice := makeActor("https://sound.example.com/user/alice", "sound.example.com", "alice", true)
	carol := makeActor("https://loud.example.net/user/carol", "loud.example.net", "carol", false)
	_, err := repo.AddActorIfNotExist(alice, "")
	assert.Nil(t, err)
	_, err = repo.AddActorIfNotExist(carol, "")
	assert.Nil(t, err)

	isNew, err := repo.AddFollower(carol.Id, alice.Id, "https://loud.example.net/follows/1")
	assert.Nil(t, err)
	assert.True(t, isNew)

	// Re-follow only refreshes the request id
	isNew, err = repo.AddFollower(carol.Id, alice.Id, "https://loud.example.net/follows/2")
	assert.Nil(t, err)
	assert.False(t, isNew)

	followers, err := repo.GetFollowersOf(alice.Id)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(followers))
	assert.Equal(t, carol.Iri, followers[0].Iri)

	followings, err := repo.GetFollowingsOf(carol.Id)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(followings))
	assert.Equal(t, alice.Iri, followings[0].Iri)

	count, err := repo.GetFollowerCount(alice.Id)
	assert.Nil(t, err)
	assert.Equal(t, uint(1), count)

	// Carol's remote followers don't count toward the local total
	isNew, err = repo.AddFollower(alice.Id, carol.Id, "https://sound.example.com/outbox/1")
	assert.Nil(t, err)
	assert.True(t, isNew)
	total, err := repo.GetTotalFollowerCount()
	assert.Nil(t, err)
	assert.Equal(t, uint(1), total)

	assert.Nil(t, repo.RemoveFollower(carol.Id, alice.Id))
	followers, err = repo.GetFollowersOf(alice.Id)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(followers))

	total, err = repo.GetTotalFollowerCount()
	assert.Nil(t, err)
	assert.Equal(t, uint(0), total)
}

func TestActivities_DedupeAndMeta(t *testing.T) {
	repo := newTestRepo(t)

	act := &Activity{
		Id:        int64(repo.GetNextId()),
		CreatedAt: time.Now().UTC(),
		Iri:       "https://loud.example.net/activities/1",
		ActorIri:  "https://loud.example.net/user/carol",
		Type:      "Create",
		Box:       BoxInbox,
		Payload:   `{"type": "Create"}`,
	}
	isNew, err := repo.AddActivityIfNotExist(act)
	assert.Nil(t, err)
	assert.True(t, isNew)

	isNew, err = repo.AddActivityIfNotExist(act)
	assert.Nil(t, err)
	assert.False(t, isNew)

	assert.Nil(t, repo.SetActivityMeta(act.Iri, true, true, false))
	stored, err := repo.GetActivityByIri(act.Iri)
	assert.Nil(t, err)
	assert.True(t, stored.Stream)
	assert.True(t, stored.Forwarded)
	assert.False(t, stored.Deleted)
	assert.Equal(t, BoxInbox, stored.Box)

	byId, err := repo.GetActivityById(act.Id)
	assert.Nil(t, err)
	assert.Equal(t, act.Iri, byId.Iri)
}

func TestUnprocessedInbox_Drain(t *testing.T) {
	repo := newTestRepo(t)

	for i := 0; i < 3; i++ {
		act := &Activity{
			Id:        int64(repo.GetNextId()),
			CreatedAt: time.Now().UTC(),
			Iri:       fmt.Sprintf("https://loud.example.net/activities/%d", i),
			ActorIri:  "https://loud.example.net/user/carol",
			Type:      "Create",
			Box:       BoxInbox,
			Payload:   "{}",
		}
		_, err := repo.AddActivityIfNotExist(act)
		assert.Nil(t, err)
	}

	pending, err := repo.GetUnprocessedInbox(10)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(pending))
	// Oldest first
	assert.True(t, pending[0].Id < pending[1].Id)

	assert.Nil(t, repo.MarkActivityProcessed(pending[0].Id))
	pending, err = repo.GetUnprocessedInbox(10)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(pending))
}

func TestOutbox_IrisAndCount(t *testing.T) {
	repo := newTestRepo(t)
	actorIri := "https://sound.example.com/user/alice"

	for i := 0; i < 2; i++ {
		act := &Activity{
			Id:        int64(repo.GetNextId()),
			CreatedAt: time.Now().UTC(),
			Iri:       fmt.Sprintf("https://sound.example.com/outbox/%d", i+1),
			ActorIri:  actorIri,
			Type:      "Create",
			Box:       BoxOutbox,
			Payload:   "{}",
			Local:     true,
			Processed: true,
		}
		_, err := repo.AddActivityIfNotExist(act)
		assert.Nil(t, err)
	}

	iris, err := repo.GetOutboxIrisOf(actorIri)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(iris))
	// Newest first
	assert.Equal(t, "https://sound.example.com/outbox/2", iris[0])

	count, err := repo.GetOutboxCountOf(actorIri)
	assert.Nil(t, err)
	assert.Equal(t, uint(2), count)

	assert.Nil(t, repo.SetActivityDeleted(iris[0]))
	count, err = repo.GetOutboxCountOf(actorIri)
	assert.Nil(t, err)
	assert.Equal(t, uint(1), count)
}

func TestTracks_DedupeByActorAndHash(t *testing.T) {
	repo := newTestRepo(t)

	track := &Track{
		CreatedAt: time.Now().UTC(),
		ActorId:   1,
		Iri:       "https://loud.example.net/tracks/7",
		Title:     "Night Drive",
		Published: time.Now().UTC(),
		MediaUrl:  "https://loud.example.net/media/7.mp3",
		MediaType: "audio/mpeg",
		MediaHash: 12345,
	}
	isNew, err := repo.AddTrackIfNotExist(track)
	assert.Nil(t, err)
	assert.True(t, isNew)

	// Same actor, same media: a re-sent upload
	dupe := *track
	dupe.Iri = "https://loud.example.net/tracks/7-resent"
	isNew, err = repo.AddTrackIfNotExist(&dupe)
	assert.Nil(t, err)
	assert.False(t, isNew)

	// A different actor may carry the same media
	other := *track
	other.ActorId = 2
	isNew, err = repo.AddTrackIfNotExist(&other)
	assert.Nil(t, err)
	assert.True(t, isNew)

	stored, err := repo.GetTrackByIri(track.Iri)
	assert.Nil(t, err)
	assert.Equal(t, "Night Drive", stored.Title)
}

func TestTracks_UpdateAndDelete(t *testing.T) {
	repo := newTestRepo(t)

	track := &Track{
		CreatedAt: time.Now().UTC(),
		ActorId:   1,
		Iri:       "https://loud.example.net/tracks/8",
		Title:     "Old title",
		Published: time.Now().UTC(),
		MediaHash: 777,
	}
	_, err := repo.AddTrackIfNotExist(track)
	assert.Nil(t, err)

	assert.Nil(t, repo.UpdateTrack(track.Iri, "New title", "new words"))
	stored, err := repo.GetTrackByIri(track.Iri)
	assert.Nil(t, err)
	assert.Equal(t, "New title", stored.Title)
	assert.Equal(t, "new words", stored.Description)

	tracks, err := repo.GetTracksOf(1, 10)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(tracks))

	assert.Nil(t, repo.SetTrackDeleted(track.Iri))
	tracks, err = repo.GetTracksOf(1, 10)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(tracks))
}

func TestDeliverQueue_Lifecycle(t *testing.T) {
	repo := newTestRepo(t)

	for i := 0; i < 2; i++ {
		dqi := &DeliverQueueItem{
			SendingUser: "alice",
			ToInbox:     "https://loud.example.net/inbox",
			CreatedAt:   time.Now().UTC(),
			ActivityIri: "https://sound.example.com/outbox/1",
			Payload:     "{}",
		}
		assert.Nil(t, repo.AddDeliverQueueItem(dqi))
	}

	items, qlen, err := repo.GetDeliverQueueItems(0, 10)
	assert.Nil(t, err)
	assert.Equal(t, 2, qlen)
	assert.Equal(t, 2, len(items))

	// Paging resumes above the last seen id
	items, _, err = repo.GetDeliverQueueItems(items[0].Id, 10)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(items))

	assert.Nil(t, repo.UpdateDeliverAttempts(items[0].Id, 3))
	refetched, _, err := repo.GetDeliverQueueItems(0, 10)
	assert.Nil(t, err)
	assert.Equal(t, 3, refetched[1].Attempts)

	assert.Nil(t, repo.DeleteDeliverQueueItem(refetched[0].Id))
	_, qlen, err = repo.GetDeliverQueueItems(0, 10)
	assert.Nil(t, err)
	assert.Equal(t, 1, qlen)
}
