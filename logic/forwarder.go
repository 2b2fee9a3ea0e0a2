package logic

import (
	"encoding/json"
	"fedisound/dal"
	"fedisound/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_forwarder.go -package mocks fedisound/logic IForwarder

// IForwarder replays an already-stored activity to the followers of local
// actors. The payload goes out with its original signature intact, so
// recipients can still verify authorship.
type IForwarder interface {
	ForwardActivity(iri string) error
}

type forwarder struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	queue   IDeliveryQueue
	metrics IMetrics
}

func NewForwarder(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	queue IDeliveryQueue,
	metrics IMetrics,
) IForwarder {
	return &forwarder{cfg, logger, repo, queue, metrics}
}

func (fw *forwarder) ForwardActivity(iri string) error {

	act, err := fw.repo.GetActivityByIri(iri)
	if err != nil {
		return err
	}
	if act == nil {
		return ErrResourceNotFound
	}

	payload, err := stripLocalFields([]byte(act.Payload))
	if err != nil {
		return err
	}

	locals, err := fw.repo.GetLocalActors()
	if err != nil {
		return err
	}

	for _, local := range locals {
		followers, err := fw.repo.GetFollowersOf(local.Id)
		if err != nil {
			return err
		}
		// Collect distinct inboxes, preferring the shared one
		inboxes := make(map[string]struct{})
		for _, f := range followers {
			inboxName := f.SharedInbox
			if inboxName == "" {
				inboxName = f.Inbox
			}
			if _, exists := inboxes[inboxName]; !exists {
				inboxes[inboxName] = struct{}{}
			}
		}
		for inboxUrl := range inboxes {
			fw.logger.Debugf("Forwarding %s to %s", iri, inboxUrl)
			if err = fw.queue.Enqueue(local.Iri, inboxUrl, iri, payload); err != nil {
				return err
			}
		}
	}

	fw.metrics.ActivityForwarded()
	return nil
}

// stripLocalFields removes bto, bcc and source; those never leave the server.
func stripLocalFields(payload []byte) ([]byte, error) {

	var doc map[string]interface{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}
	changed := false
	for _, field := range []string{"bto", "bcc", "source"} {
		if _, ok := doc[field]; ok {
			delete(doc, field)
			changed = true
		}
		if obj, ok := doc["object"].(map[string]interface{}); ok {
			if _, ok := obj[field]; ok {
				delete(obj, field)
				changed = true
			}
		}
	}
	if !changed {
		return payload, nil
	}
	return json.Marshal(doc)
}
