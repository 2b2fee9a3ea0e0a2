package logic

// In-package fakes for the interfaces the inbox processor and outbox lean on.
// The generated mocks under test/mocks import this package, so internal tests
// cannot use them without a cycle; these fakes cover the same ground.

import (
	"fedisound/dal"
	"fedisound/dto"
	"fedisound/shared"
	"fmt"
)

const testHost = "sound.example.com"

type nopLogger struct{}

func (nopLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Debugf(format string, args ...interface{})     {}
func (nopLogger) Info(msg interface{}, keyvals ...interface{})  {}
func (nopLogger) Infof(format string, args ...interface{})      {}
func (nopLogger) Warn(msg interface{}, keyvals ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})      {}
func (nopLogger) Error(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Errorf(format string, args ...interface{})     {}
func (nopLogger) Printf(format string, args ...interface{})     {}

type nopMetrics struct{}

func (nopMetrics) StartWebRequestIn(label string) IRequestObserver  { return nopObserver{} }
func (nopMetrics) StartApubRequestIn(label string) IRequestObserver { return nopObserver{} }
func (nopMetrics) StartApubRequestOut(label string) IRequestObserver {
	return nopObserver{}
}
func (nopMetrics) ActivityReceived(label string)  {}
func (nopMetrics) ActivityForwarded()             {}
func (nopMetrics) TrackSaved()                    {}
func (nopMetrics) DeliveryFailed()                {}
func (nopMetrics) ServiceStarted()                {}
func (nopMetrics) TotalFollowers(count int)       {}
func (nopMetrics) DeliverQueueLength(length int)  {}

type nopObserver struct{}

func (nopObserver) Finish() {}

// recordingMetrics keeps the gauge values the code under test pushes.
type recordingMetrics struct {
	nopMetrics
	followerTotals []int
}

func (m *recordingMetrics) TotalFollowers(count int) {
	m.followerTotals = append(m.followerTotals, count)
}

type followerEdge struct {
	actorId   int
	targetId  int
	requestId string
}

// fakeRepo serves canned rows and records mutations. Methods the test at hand
// doesn't exercise panic through the embedded nil interface.
type fakeRepo struct {
	dal.IRepo
	nextId            uint64
	actorsByIri       map[string]*dal.Actor
	activitiesByIri   map[string]*dal.Activity
	followersByTarget map[int][]*dal.Actor
	tracksByIri       map[string]*dal.Track
	addedFollowers    []followerEdge
	removedFollowers  []followerEdge
	deletedActivities []string
	metaByIri         map[string][3]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		nextId:            1000,
		actorsByIri:       make(map[string]*dal.Actor),
		activitiesByIri:   make(map[string]*dal.Activity),
		followersByTarget: make(map[int][]*dal.Actor),
		tracksByIri:       make(map[string]*dal.Track),
		metaByIri:         make(map[string][3]bool),
	}
}

func (r *fakeRepo) GetNextId() uint64 {
	r.nextId++
	return r.nextId
}

func (r *fakeRepo) GetActorByIri(iri string) (*dal.Actor, error) {
	return r.actorsByIri[iri], nil
}

func (r *fakeRepo) GetActorByName(domain, handle string) (*dal.Actor, error) {
	for _, actor := range r.actorsByIri {
		if actor.Domain == domain && actor.Handle == handle {
			return actor, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) AddActorIfNotExist(actor *dal.Actor, privKey string) (bool, error) {
	if _, exists := r.actorsByIri[actor.Iri]; exists {
		return false, nil
	}
	actor.Id = len(r.actorsByIri) + 1
	r.actorsByIri[actor.Iri] = actor
	return true, nil
}

func (r *fakeRepo) UpdateActorProfile(iri, name, summary, pubKey string) error {
	if actor, ok := r.actorsByIri[iri]; ok {
		actor.Name = name
		actor.Summary = summary
		actor.PubKey = pubKey
	}
	return nil
}

func (r *fakeRepo) GetLocalActors() ([]*dal.Actor, error) {
	var res []*dal.Actor
	for _, actor := range r.actorsByIri {
		if actor.Local && !actor.Deleted {
			res = append(res, actor)
		}
	}
	return res, nil
}

func (r *fakeRepo) AddFollower(actorId, targetId int, requestId string) (bool, error) {
	for _, e := range r.addedFollowers {
		if e.actorId == actorId && e.targetId == targetId {
			return false, nil
		}
	}
	r.addedFollowers = append(r.addedFollowers, followerEdge{actorId, targetId, requestId})
	return true, nil
}

func (r *fakeRepo) RemoveFollower(actorId, targetId int) error {
	r.removedFollowers = append(r.removedFollowers, followerEdge{actorId: actorId, targetId: targetId})
	return nil
}

func (r *fakeRepo) GetFollowersOf(targetId int) ([]*dal.Actor, error) {
	return r.followersByTarget[targetId], nil
}

func (r *fakeRepo) GetTotalFollowerCount() (uint, error) {
	count := 0
	for _, e := range r.addedFollowers {
		removed := false
		for _, rm := range r.removedFollowers {
			if rm.actorId == e.actorId && rm.targetId == e.targetId {
				removed = true
				break
			}
		}
		if !removed {
			count++
		}
	}
	return uint(count), nil
}

func (r *fakeRepo) AddActivityIfNotExist(act *dal.Activity) (bool, error) {
	if _, exists := r.activitiesByIri[act.Iri]; exists {
		return false, nil
	}
	r.activitiesByIri[act.Iri] = act
	return true, nil
}

func (r *fakeRepo) GetActivityByIri(iri string) (*dal.Activity, error) {
	return r.activitiesByIri[iri], nil
}

func (r *fakeRepo) GetActivityById(id int64) (*dal.Activity, error) {
	for _, act := range r.activitiesByIri {
		if act.Id == id {
			return act, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) SetActivityDeleted(iri string) error {
	r.deletedActivities = append(r.deletedActivities, iri)
	if act, ok := r.activitiesByIri[iri]; ok {
		act.Deleted = true
	}
	return nil
}

func (r *fakeRepo) SetActivityMeta(iri string, stream, forwarded, deleted bool) error {
	r.metaByIri[iri] = [3]bool{stream, forwarded, deleted}
	return nil
}

func (r *fakeRepo) GetTrackByIri(iri string) (*dal.Track, error) {
	return r.tracksByIri[iri], nil
}

func (r *fakeRepo) AddTrackIfNotExist(track *dal.Track) (bool, error) {
	if _, exists := r.tracksByIri[track.Iri]; exists {
		return false, nil
	}
	r.tracksByIri[track.Iri] = track
	return true, nil
}

type fetchedActivity struct {
	act *dto.ActivityInBase
	raw []byte
	err error
}

type fakeFetcher struct {
	activities map[string]fetchedActivity
	actors     map[string]*dto.ActorDoc
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		activities: make(map[string]fetchedActivity),
		actors:     make(map[string]*dto.ActorDoc),
	}
}

func (f *fakeFetcher) RetrieveActor(iri string) (*dto.ActorDoc, error) {
	if doc, ok := f.actors[iri]; ok {
		return doc, nil
	}
	return nil, ErrResourceNotFound
}

func (f *fakeFetcher) RetrieveActivity(iri string) (*dto.ActivityInBase, []byte, error) {
	res, ok := f.activities[iri]
	if !ok {
		return nil, nil, ErrResourceNotFound
	}
	return res.act, res.raw, res.err
}

type postedActivity struct {
	sender *dal.Actor
	doc    map[string]interface{}
}

type fakeOutbox struct {
	posted []postedActivity
}

func (ob *fakeOutbox) PostActivity(sender *dal.Actor, doc map[string]interface{}) (string, error) {
	ob.posted = append(ob.posted, postedActivity{sender, doc})
	return fmt.Sprintf("https://%s/outbox/%d", testHost, len(ob.posted)), nil
}

func (ob *fakeOutbox) GetActivity(id uint64) (*dal.Activity, map[string]interface{}, error) {
	return nil, nil, ErrResourceNotFound
}

// fakeDirectory resolves actors from the same map the fake repo uses.
type fakeDirectory struct {
	IActorDirectory
	actorsByIri   map[string]*dal.Actor
	updatedDocs   []*dto.ActorDoc
	deletedActors []string
}

func (d *fakeDirectory) EnsureActorByIri(iri string) (*dal.Actor, error) {
	if actor, ok := d.actorsByIri[iri]; ok {
		return actor, nil
	}
	return nil, ErrResourceNotFound
}

func (d *fakeDirectory) EnsureActorFromDoc(doc *dto.ActorDoc) (*dal.Actor, error) {
	return d.EnsureActorByIri(doc.Id)
}

func (d *fakeDirectory) UpdateActorFromDoc(doc *dto.ActorDoc) error {
	d.updatedDocs = append(d.updatedDocs, doc)
	return nil
}

func (d *fakeDirectory) DeleteActor(iri string) error {
	if _, ok := d.actorsByIri[iri]; !ok {
		return ErrResourceNotFound
	}
	d.deletedActors = append(d.deletedActors, iri)
	return nil
}

type queuedDelivery struct {
	sendingActorIri string
	toInbox         string
	activityIri     string
	payload         []byte
}

type fakeQueue struct {
	items []queuedDelivery
}

func (q *fakeQueue) Enqueue(sendingActorIri, toInbox, activityIri string, payload []byte) error {
	q.items = append(q.items, queuedDelivery{sendingActorIri, toInbox, activityIri, payload})
	return nil
}

type fakeForwarder struct {
	forwarded []string
}

func (fw *fakeForwarder) ForwardActivity(iri string) error {
	fw.forwarded = append(fw.forwarded, iri)
	return nil
}

type fakeIngester struct {
	created []string
	updated int
	deleted []string
}

func (ing *fakeIngester) CreateFromActivity(sender *dal.Actor, bodyBytes []byte) error {
	ing.created = append(ing.created, string(bodyBytes))
	return nil
}

func (ing *fakeIngester) UpdateFromActivity(bodyBytes []byte) error {
	ing.updated++
	return nil
}

func (ing *fakeIngester) DeleteObject(objectIri string) error {
	ing.deleted = append(ing.deleted, objectIri)
	return nil
}

type processorHarness struct {
	cfg       *shared.Config
	repo      *fakeRepo
	fetcher   *fakeFetcher
	directory *fakeDirectory
	outbox    *fakeOutbox
	forwarder *fakeForwarder
	ingester  *fakeIngester
	metrics   *recordingMetrics
}

// newTestProcessor builds an inbox processor without starting its loop, so
// tests can call classify and dispatch synchronously.
func newTestProcessor() (*processorHarness, *inboxProcessor) {
	h := &processorHarness{
		cfg:       &shared.Config{Host: testHost},
		repo:      newFakeRepo(),
		fetcher:   newFakeFetcher(),
		outbox:    &fakeOutbox{},
		forwarder: &fakeForwarder{},
		ingester:  &fakeIngester{},
		metrics:   &recordingMetrics{},
	}
	h.directory = &fakeDirectory{actorsByIri: h.repo.actorsByIri}
	ib := &inboxProcessor{
		cfg:       h.cfg,
		logger:    nopLogger{},
		repo:      h.repo,
		directory: h.directory,
		fetcher:   h.fetcher,
		outbox:    h.outbox,
		forwarder: h.forwarder,
		ingester:  h.ingester,
		metrics:   h.metrics,
		idb:       shared.IdBuilder{Host: h.cfg.Host},
	}
	return h, ib
}
