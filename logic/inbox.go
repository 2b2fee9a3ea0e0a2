package logic

import (
	"encoding/json"
	"fedisound/dal"
	"fedisound/dto"
	"fedisound/shared"
	"fmt"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_inbox.go -package mocks fedisound/logic IInboxProcessor

// IInboxProcessor takes authenticated inbound activities. Accept persists
// synchronously and returns; classification and dispatch run on a background
// loop, one activity at a time.
type IInboxProcessor interface {
	Accept(senderDoc *dto.ActorDoc, bodyBytes []byte) error
}

const inboxLoopIdleWakeSec = 3
const inboxBatchSize = 10

type inboxProcessor struct {
	cfg           *shared.Config
	logger        shared.ILogger
	repo          dal.IRepo
	directory     IActorDirectory
	fetcher       IRemoteFetcher
	outbox        IOutbox
	forwarder     IForwarder
	ingester      ITrackIngester
	metrics       IMetrics
	idb           shared.IdBuilder
	newActivities chan struct{}
}

func NewInboxProcessor(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	directory IActorDirectory,
	fetcher IRemoteFetcher,
	outbox IOutbox,
	forwarder IForwarder,
	ingester ITrackIngester,
	metrics IMetrics,
) IInboxProcessor {

	ib := inboxProcessor{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		directory: directory,
		fetcher:   fetcher,
		outbox:    outbox,
		forwarder: forwarder,
		ingester:  ingester,
		metrics:   metrics,
		idb:       shared.IdBuilder{Host: cfg.Host},
	}

	ib.newActivities = make(chan struct{})
	go ib.processLoop()

	return &ib
}

func (ib *inboxProcessor) Accept(senderDoc *dto.ActorDoc, bodyBytes []byte) error {

	var actBase dto.ActivityInBase
	if err := json.Unmarshal(bodyBytes, &actBase); err != nil {
		return fmt.Errorf("invalid JSON in activity body: %v", err)
	}
	if actBase.Id == "" || actBase.Type == "" {
		return ErrNotAnActivity
	}

	// Make sure we know the sender before the activity hits the store
	if _, err := ib.directory.EnsureActorFromDoc(senderDoc); err != nil {
		return err
	}

	act := dal.Activity{
		CreatedAt: time.Now().UTC(),
		Iri:       actBase.Id,
		ActorIri:  actBase.Actor,
		Type:      actBase.Type,
		Box:       dal.BoxInbox,
		Payload:   string(bodyBytes),
		Local:     shared.IsLocalIRI(actBase.Id, ib.idb.BaseUrl()),
	}
	isNew, err := ib.repo.AddActivityIfNotExist(&act)
	if err != nil {
		return err
	}
	if !isNew {
		ib.logger.Infof("Activity has already been handled: %s", actBase.Id)
		return nil
	}

	ib.metrics.ActivityReceived(actBase.Type)

	go func() {
		ib.newActivities <- struct{}{}
	}()

	return nil
}

func (ib *inboxProcessor) processLoop() {

	processBatch := func() {
		items, err := ib.repo.GetUnprocessedInbox(inboxBatchSize)
		if err != nil {
			ib.logger.Errorf("Failed to get unprocessed activities: %v", err)
			return
		}
		for _, act := range items {
			ib.processActivity(act)
			// Terminal either way; a poisoned message must not stall the rest
			if err = ib.repo.MarkActivityProcessed(act.Id); err != nil {
				ib.logger.Errorf("Failed to mark activity processed: %s: %v", act.Iri, err)
			}
		}
	}

	for {
		select {
		case <-ib.newActivities:
			ib.logger.Debug("New activities in inbox")
			processBatch()
		case <-time.After(inboxLoopIdleWakeSec * time.Second):
			processBatch()
		}
	}
}

func (ib *inboxProcessor) processActivity(act *dal.Activity) {

	var actBase dto.ActivityInBase
	if err := json.Unmarshal([]byte(act.Payload), &actBase); err != nil {
		ib.logger.Errorf("Stored activity has unparseable payload: %s: %v", act.Iri, err)
		return
	}

	tagStream, shouldForward, shouldDelete, err := ib.classify(&actBase)
	if err != nil {
		ib.logger.Errorf("Failed to classify activity, no retry: %s: %v", act.Iri, err)
		return
	}

	if err = ib.repo.SetActivityMeta(act.Iri, tagStream, shouldForward, shouldDelete); err != nil {
		ib.logger.Errorf("Failed to update activity meta: %s: %v", act.Iri, err)
		return
	}

	if shouldForward {
		ib.logger.Infof("Will forward %s to followers", act.Iri)
		if err = ib.forwarder.ForwardActivity(act.Iri); err != nil {
			ib.logger.Errorf("Failed to forward activity: %s: %v", act.Iri, err)
		}
	}
	if shouldDelete {
		ib.logger.Infof("Soft deleted %s", act.Iri)
	}

	if err = ib.dispatch(act, &actBase); err != nil {
		ib.logger.Errorf("Failed to dispatch activity, no retry: %s: %v", act.Iri, err)
	}
}
