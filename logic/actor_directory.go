package logic

import (
	"fedisound/dal"
	"fedisound/dto"
	"fedisound/shared"
	"fmt"
	"strings"
	"time"
)

const pageSize = 25

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_actor_directory.go -package mocks fedisound/logic IActorDirectory

type IActorDirectory interface {
	GetWebfinger(user string) (*dto.WebfingerResp, error)
	GetActorDoc(handle string) (*dto.ActorDoc, error)
	CreateLocalActor(handle, name, summary string) (*dal.Actor, error)
	UpdateLocalActor(handle, name, summary string) (*dal.Actor, error)
	EnsureActorByIri(iri string) (*dal.Actor, error)
	EnsureActorFromDoc(doc *dto.ActorDoc) (*dal.Actor, error)
	UpdateActorFromDoc(doc *dto.ActorDoc) error
	DeleteActor(iri string) error
	GetFollowersCollection(handle string) (*dto.OrderedCollection, error)
	GetFollowingsCollection(handle string) (*dto.OrderedCollection, error)
	GetOutboxCollection(handle string) (*dto.OrderedCollection, error)
}

type actorDirectory struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	idb      shared.IdBuilder
	keyStore IKeyStore
	fetcher  IRemoteFetcher
}

func NewActorDirectory(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	keyStore IKeyStore,
	fetcher IRemoteFetcher,
) IActorDirectory {
	return &actorDirectory{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		idb:      shared.IdBuilder{Host: cfg.Host},
		keyStore: keyStore,
		fetcher:  fetcher,
	}
}

func (ad *actorDirectory) GetWebfinger(user string) (*dto.WebfingerResp, error) {

	cfgHost := ad.cfg.Host
	user = strings.ToLower(user)
	actor, err := ad.repo.GetActorByName(cfgHost, user)
	if err != nil {
		return nil, err
	}
	if actor == nil || !actor.Local {
		return nil, ErrResourceNotFound
	}

	resp := dto.WebfingerResp{
		Subject: fmt.Sprintf("acct:%s@%s", user, cfgHost),
		Aliases: []string{
			ad.idb.UserUrl(user),
		},
		Links: []dto.WebfingerLink{
			{
				Rel:  "http://webfinger.net/rel/profile-page",
				Type: "text/html",
				Href: ad.idb.UserUrl(user),
			},
			{
				Rel:  "self",
				Type: "application/activity+json",
				Href: ad.idb.UserUrl(user),
			},
		},
	}
	return &resp, nil
}

func (ad *actorDirectory) GetActorDoc(handle string) (*dto.ActorDoc, error) {

	handle = strings.ToLower(handle)
	actor, err := ad.repo.GetActorByName(ad.cfg.Host, handle)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrResourceNotFound
	}
	if actor.Deleted {
		return nil, ErrResourceGone
	}

	resp := dto.ActorDoc{
		Context: []string{
			"https://www.w3.org/ns/activitystreams",
			"https://w3id.org/security/v1",
		},
		Id:                actor.Iri,
		Type:              actor.ActorType,
		PreferredUserName: actor.Handle,
		Name:              actor.Name,
		Summary:           actor.Summary,
		Published:         actor.CreatedAt.Format(time.RFC3339),
		Inbox:             actor.Inbox,
		Outbox:            actor.Outbox,
		Followers:         actor.FollowersIri,
		Following:         ad.idb.UserFollowings(handle),
		Endpoints:         dto.ActorEndpoints{SharedInbox: actor.SharedInbox},
		PublicKey: dto.PublicKey{
			Id:           ad.idb.UserKeyId(handle),
			Owner:        actor.Iri,
			PublicKeyPem: actor.PubKey,
		},
	}
	return &resp, nil
}

func (ad *actorDirectory) CreateLocalActor(handle, name, summary string) (*dal.Actor, error) {

	handle = strings.ToLower(handle)
	existing, err := ad.repo.GetActorByName(ad.cfg.Host, handle)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrActorExists
	}

	pubKey, privKey, err := ad.keyStore.MakeKeyPair()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	actor := dal.Actor{
		CreatedAt:    now,
		UpdatedAt:    now,
		Iri:          ad.idb.UserUrl(handle),
		Domain:       ad.cfg.Host,
		Handle:       handle,
		Name:         name,
		Summary:      summary,
		ActorType:    "Person",
		Inbox:        ad.idb.UserInbox(handle),
		SharedInbox:  ad.idb.SharedInbox(),
		Outbox:       ad.idb.UserOutbox(handle),
		FollowersIri: ad.idb.UserFollowers(handle),
		PubKey:       pubKey,
		Local:        true,
	}
	isNew, err := ad.repo.AddActorIfNotExist(&actor, privKey)
	if err != nil {
		return nil, err
	}
	if !isNew {
		return nil, ErrActorExists
	}
	ad.logger.Infof("Created local actor %s", actor.Iri)
	return &actor, nil
}

func (ad *actorDirectory) UpdateLocalActor(handle, name, summary string) (*dal.Actor, error) {

	actor, err := ad.getLocalActor(handle)
	if err != nil {
		return nil, err
	}
	if err = ad.repo.UpdateActorProfile(actor.Iri, name, summary, actor.PubKey); err != nil {
		return nil, err
	}
	actor.Name = name
	actor.Summary = summary
	return actor, nil
}

func (ad *actorDirectory) EnsureActorByIri(iri string) (*dal.Actor, error) {

	actor, err := ad.repo.GetActorByIri(iri)
	if err != nil {
		return nil, err
	}
	if actor != nil {
		return actor, nil
	}

	doc, err := ad.fetcher.RetrieveActor(iri)
	if err != nil {
		return nil, err
	}
	return ad.EnsureActorFromDoc(doc)
}

func (ad *actorDirectory) EnsureActorFromDoc(doc *dto.ActorDoc) (*dal.Actor, error) {

	domain, err := shared.GetHostName(doc.Id)
	if err != nil {
		return nil, err
	}

	// Match by domain+handle first, then by IRI; create if neither hits.
	actor, err := ad.repo.GetActorByName(domain, doc.PreferredUserName)
	if err != nil {
		return nil, err
	}
	if actor != nil {
		return actor, nil
	}
	actor, err = ad.repo.GetActorByIri(doc.Id)
	if err != nil {
		return nil, err
	}
	if actor != nil {
		return actor, nil
	}

	followersIri := doc.Followers
	if followersIri == "" {
		followersIri = doc.Id + "/followers"
	}
	now := time.Now().UTC()
	newActor := dal.Actor{
		CreatedAt:    now,
		UpdatedAt:    now,
		Iri:          doc.Id,
		Domain:       domain,
		Handle:       doc.PreferredUserName,
		Name:         doc.Name,
		Summary:      doc.Summary,
		ActorType:    doc.Type,
		Inbox:        doc.Inbox,
		SharedInbox:  doc.Endpoints.SharedInbox,
		Outbox:       doc.Outbox,
		FollowersIri: followersIri,
		PubKey:       doc.PublicKey.PublicKeyPem,
		Local:        shared.IsLocalIRI(doc.Id, ad.idb.BaseUrl()),
	}
	// No private key: we don't own remote identities
	if _, err = ad.repo.AddActorIfNotExist(&newActor, ""); err != nil {
		return nil, err
	}
	ad.logger.Infof("Stored remote actor %s", newActor.Iri)
	return &newActor, nil
}

func (ad *actorDirectory) UpdateActorFromDoc(doc *dto.ActorDoc) error {
	return ad.repo.UpdateActorProfile(doc.Id, doc.Name, doc.Summary, doc.PublicKey.PublicKeyPem)
}

func (ad *actorDirectory) DeleteActor(iri string) error {

	actor, err := ad.repo.GetActorByIri(iri)
	if err != nil {
		return err
	}
	if actor == nil {
		return ErrResourceNotFound
	}
	if err = ad.repo.SetActorDeleted(iri); err != nil {
		return err
	}
	if err = ad.repo.DeleteActivitiesByActor(iri); err != nil {
		return err
	}
	return ad.repo.DeleteTracksByActor(actor.Id)
}

func (ad *actorDirectory) getLocalActor(handle string) (*dal.Actor, error) {
	handle = strings.ToLower(handle)
	actor, err := ad.repo.GetActorByName(ad.cfg.Host, handle)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrResourceNotFound
	}
	if actor.Deleted {
		return nil, ErrResourceGone
	}
	return actor, nil
}

// buildCollection renders the summary document plus an embedded first page.
// Pages past the first are not resolved; next only shows up when the first
// page is full.
func (ad *actorDirectory) buildCollection(colIri string, items []string) *dto.OrderedCollection {

	col := dto.OrderedCollection{
		Context:      "https://www.w3.org/ns/activitystreams",
		Id:           colIri,
		Type:         "OrderedCollection",
		TotalItems:   uint(len(items)),
		OrderedItems: make([]string, 0),
	}
	if len(items) == 0 {
		return &col
	}

	pageItems := items
	if len(pageItems) > pageSize {
		pageItems = pageItems[:pageSize]
	}
	page := dto.OrderedCollectionPage{
		Id:           ad.idb.CollectionPage(colIri, 1),
		Type:         "OrderedCollectionPage",
		PartOf:       colIri,
		OrderedItems: pageItems,
	}
	if len(pageItems) == pageSize {
		page.Next = ad.idb.CollectionPage(colIri, 2)
	}
	col.OrderedItems = pageItems
	col.First = &page
	return &col
}

func (ad *actorDirectory) GetFollowersCollection(handle string) (*dto.OrderedCollection, error) {

	actor, err := ad.getLocalActor(handle)
	if err != nil {
		return nil, err
	}
	followers, err := ad.repo.GetFollowersOf(actor.Id)
	if err != nil {
		return nil, err
	}
	items := make([]string, 0, len(followers))
	for _, f := range followers {
		items = append(items, f.Iri)
	}
	return ad.buildCollection(actor.FollowersIri, items), nil
}

func (ad *actorDirectory) GetFollowingsCollection(handle string) (*dto.OrderedCollection, error) {

	actor, err := ad.getLocalActor(handle)
	if err != nil {
		return nil, err
	}
	followings, err := ad.repo.GetFollowingsOf(actor.Id)
	if err != nil {
		return nil, err
	}
	items := make([]string, 0, len(followings))
	for _, f := range followings {
		items = append(items, f.Iri)
	}
	return ad.buildCollection(ad.idb.UserFollowings(actor.Handle), items), nil
}

func (ad *actorDirectory) GetOutboxCollection(handle string) (*dto.OrderedCollection, error) {

	actor, err := ad.getLocalActor(handle)
	if err != nil {
		return nil, err
	}
	items, err := ad.repo.GetOutboxIrisOf(actor.Iri)
	if err != nil {
		return nil, err
	}
	return ad.buildCollection(actor.Outbox, items), nil
}
