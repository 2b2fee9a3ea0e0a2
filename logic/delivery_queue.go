package logic

import (
	"fedisound/dal"
	"fedisound/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_delivery_queue.go -package mocks fedisound/logic IDeliveryQueue

// IDeliveryQueue takes one serialized activity bound for one remote inbox.
// Items survive restarts; each is retried independently.
type IDeliveryQueue interface {
	Enqueue(sendingActorIri, toInbox, activityIri string, payload []byte) error
}

const maxParallelSends = 5
const maxDeliverAttempts = 3
const deliverLoopIdleWakeSec = 5

type deliverResult struct {
	id       int
	drop     bool
	attempts int
}

type deliveryQueue struct {
	cfg             *shared.Config
	logger          shared.ILogger
	repo            dal.IRepo
	keyStore        IKeyStore
	sender          IActivitySender
	metrics         IMetrics
	newItemsInQueue chan struct{}
	dqProgress      map[int]interface{}
}

func NewDeliveryQueue(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	keyStore IKeyStore,
	sender IActivitySender,
	metrics IMetrics,
) IDeliveryQueue {

	q := deliveryQueue{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		keyStore: keyStore,
		sender:   sender,
		metrics:  metrics,
	}

	q.newItemsInQueue = make(chan struct{})
	q.dqProgress = make(map[int]interface{})
	go q.deliverQueueLoop()

	return &q
}

func (q *deliveryQueue) Enqueue(sendingActorIri, toInbox, activityIri string, payload []byte) error {

	err := q.repo.AddDeliverQueueItem(&dal.DeliverQueueItem{
		SendingUser: sendingActorIri,
		ToInbox:     toInbox,
		CreatedAt:   time.Now().UTC(),
		ActivityIri: activityIri,
		Payload:     string(payload),
	})
	if err != nil {
		return err
	}

	go func() {
		q.newItemsInQueue <- struct{}{}
	}()

	return nil
}

func (q *deliveryQueue) deliverQueueLoop() {

	itemDone := make(chan deliverResult)

	sendItems := func() {
		if len(q.dqProgress) >= maxParallelSends {
			return
		}
		maxId := -1
		for id := range q.dqProgress {
			maxId = max(maxId, id)
		}
		var err error
		var items []*dal.DeliverQueueItem
		var qlen int
		items, qlen, err = q.repo.GetDeliverQueueItems(maxId, maxParallelSends-len(q.dqProgress))
		if err != nil {
			q.logger.Errorf("Failed to get delivery queue items: %v", err)
			return
		}
		q.metrics.DeliverQueueLength(qlen)
		for _, item := range items {
			q.dqProgress[item.Id] = struct{}{}
			go q.sendQueuedItem(item, itemDone)
		}
	}

	finishItem := func(res deliverResult) {
		var err error
		if res.drop {
			err = q.repo.DeleteDeliverQueueItem(res.id)
		} else {
			err = q.repo.UpdateDeliverAttempts(res.id, res.attempts)
		}
		if err != nil {
			q.logger.Errorf("Failed to update delivery queue item: %d: %v", res.id, err)
		}
		delete(q.dqProgress, res.id)
	}

	for {
		select {
		case <-q.newItemsInQueue:
			q.logger.Debug("New items in delivery queue")
			sendItems()
		case <-time.After(deliverLoopIdleWakeSec * time.Second):
			sendItems()
		case res := <-itemDone:
			q.logger.Debugf("Delivery finished: %d", res.id)
			finishItem(res)
			sendItems()
		}
	}
}

func (q *deliveryQueue) sendQueuedItem(item *dal.DeliverQueueItem, itemDone chan deliverResult) {

	err := q.deliverOne(item)
	res := deliverResult{id: item.Id, drop: true}

	if err != nil {
		if IsPermanentDeliveryError(err) {
			q.logger.Warnf("Delivery to %s failed permanently, not retrying: %v", item.ToInbox, err)
			q.metrics.DeliveryFailed()
		} else if item.Attempts+1 >= maxDeliverAttempts {
			q.logger.Warnf("Delivery to %s failed %d times, giving up: %v", item.ToInbox, item.Attempts+1, err)
			q.metrics.DeliveryFailed()
		} else {
			q.logger.Infof("Delivery to %s failed, will retry: %v", item.ToInbox, err)
			res.drop = false
			res.attempts = item.Attempts + 1
		}
	}

	itemDone <- res
}

func (q *deliveryQueue) deliverOne(item *dal.DeliverQueueItem) error {

	q.logger.Infof("Delivering %s to inbox: %s", item.ActivityIri, item.ToInbox)

	privKey, err := q.keyStore.GetPrivKey(item.SendingUser)
	if err != nil {
		// Without a signing key this item can never go out
		return &TransportError{StatusCode: 400, Msg: err.Error()}
	}

	return q.sender.Send(privKey, item.SendingUser, item.ToInbox, []byte(item.Payload))
}
