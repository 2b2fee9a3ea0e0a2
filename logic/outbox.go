package logic

import (
	"encoding/json"
	"fedisound/dal"
	"fedisound/shared"
	"fmt"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_outbox.go -package mocks fedisound/logic IOutbox

// IOutbox publishes a locally-originated activity: wraps bare objects in a
// Create, mints the IRI, persists, and fans deliveries out to recipients.
// Returns the new activity's IRI before any delivery completes.
type IOutbox interface {
	PostActivity(sender *dal.Actor, doc map[string]interface{}) (string, error)
	GetActivity(id uint64) (*dal.Activity, map[string]interface{}, error)
}

// Object types that get wrapped in a Create when posted bare.
var creatableTypes = map[string]struct{}{
	"Note":     {},
	"Audio":    {},
	"Article":  {},
	"Image":    {},
	"Video":    {},
	"Question": {},
}

type outbox struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	directory IActorDirectory
	queue     IDeliveryQueue
	idb       shared.IdBuilder
}

func NewOutbox(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	directory IActorDirectory,
	queue IDeliveryQueue,
) IOutbox {
	return &outbox{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		directory: directory,
		queue:     queue,
		idb:       shared.IdBuilder{Host: cfg.Host},
	}
}

func (ob *outbox) PostActivity(sender *dal.Actor, doc map[string]interface{}) (string, error) {

	typ, _ := doc["type"].(string)
	if typ == "" {
		return "", ErrNotAnActivity
	}

	published := time.Now().UTC().Format(time.RFC3339)
	if _, ok := creatableTypes[typ]; ok {
		obj := doc
		if _, ok := obj["published"]; !ok {
			obj["published"] = published
		}
		doc = map[string]interface{}{
			"@context":  "https://www.w3.org/ns/activitystreams",
			"type":      "Create",
			"actor":     sender.Iri,
			"published": published,
			"object":    obj,
		}
		if to, ok := obj["to"]; ok {
			doc["to"] = to
		}
		if cc, ok := obj["cc"]; ok {
			doc["cc"] = cc
		}
		typ = "Create"
	}

	id := ob.repo.GetNextId()
	iri := ob.idb.ActivityUrl(id)
	doc["id"] = iri
	if obj, ok := doc["object"].(map[string]interface{}); ok {
		if _, hasId := obj["id"]; !hasId {
			obj["id"] = ob.idb.ActivityObjectUrl(id)
		}
	}

	recipients := ob.collectRecipientIris(doc)

	payload, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	if payload, err = stripLocalFields(payload); err != nil {
		return "", err
	}

	act := dal.Activity{
		Id:        int64(id),
		CreatedAt: time.Now().UTC(),
		Iri:       iri,
		ActorIri:  sender.Iri,
		Type:      typ,
		Box:       dal.BoxOutbox,
		Payload:   string(payload),
		Local:     true,
		Processed: true,
	}
	if _, err = ob.repo.AddActivityIfNotExist(&act); err != nil {
		return "", err
	}

	inboxes, err := ob.resolveInboxes(sender, recipients)
	if err != nil {
		return "", err
	}
	for inboxUrl := range inboxes {
		if err = ob.queue.Enqueue(sender.Iri, inboxUrl, iri, payload); err != nil {
			return "", err
		}
	}

	ob.logger.Infof("Published %s from %s to %d inboxes", iri, sender.Iri, len(inboxes))
	return iri, nil
}

func (ob *outbox) collectRecipientIris(doc map[string]interface{}) []string {

	var res []string
	seen := make(map[string]struct{})
	addFrom := func(field string) {
		raw, ok := doc[field]
		if !ok {
			return
		}
		// Locally built documents address via []string; re-parsed JSON
		// comes back as string or []interface{}
		var vals []interface{}
		switch typed := raw.(type) {
		case string:
			vals = []interface{}{typed}
		case []string:
			for _, str := range typed {
				vals = append(vals, str)
			}
		case []interface{}:
			vals = typed
		}
		for _, v := range vals {
			str, ok := v.(string)
			if !ok {
				continue
			}
			if _, dup := seen[str]; dup {
				continue
			}
			seen[str] = struct{}{}
			res = append(res, str)
		}
	}
	addFrom("to")
	addFrom("cc")
	return res
}

// resolveInboxes maps recipient IRIs to inbox URLs. The sender's own
// followers collection expands to the inboxes of current followers; the
// public address delivers to nobody by itself.
func (ob *outbox) resolveInboxes(sender *dal.Actor, recipients []string) (map[string]struct{}, error) {

	inboxes := make(map[string]struct{})
	for _, recipient := range recipients {
		if recipient == shared.ActivityPublic {
			continue
		}
		if recipient == sender.FollowersIri {
			followers, err := ob.repo.GetFollowersOf(sender.Id)
			if err != nil {
				return nil, err
			}
			for _, f := range followers {
				inboxes[f.Inbox] = struct{}{}
			}
			continue
		}
		actor, err := ob.directory.EnsureActorByIri(recipient)
		if err != nil {
			ob.logger.Warnf("Cannot resolve recipient %s: %v", recipient, err)
			continue
		}
		if actor.Inbox == "" {
			ob.logger.Warnf("Recipient %s has no inbox", recipient)
			continue
		}
		inboxes[actor.Inbox] = struct{}{}
	}
	return inboxes, nil
}

// GetActivity loads a published activity by its local numeric id. The
// caller gets the row even when it's soft-deleted, so it can render a
// tombstone with the right former type.
func (ob *outbox) GetActivity(id uint64) (*dal.Activity, map[string]interface{}, error) {

	act, err := ob.repo.GetActivityById(int64(id))
	if err != nil {
		return nil, nil, err
	}
	if act == nil || act.Box != dal.BoxOutbox {
		return nil, nil, ErrResourceNotFound
	}
	if act.Deleted {
		return act, nil, ErrResourceGone
	}
	doc, err := activityDocFromPayload(act.Payload)
	if err != nil {
		return nil, nil, err
	}
	return act, doc, nil
}

// activityDocFromPayload re-parses a stored payload into a generic document.
func activityDocFromPayload(payload string) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("stored payload is not valid JSON: %v", err)
	}
	return doc, nil
}
