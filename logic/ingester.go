package logic

import (
	"encoding/json"
	"fedisound/dal"
	"fedisound/dto"
	"fedisound/shared"
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/twmb/murmur3"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_track_ingester.go -package mocks fedisound/logic ITrackIngester

// ITrackIngester projects Audio objects from the activity stream into the
// local track catalog.
type ITrackIngester interface {
	CreateFromActivity(sender *dal.Actor, bodyBytes []byte) error
	UpdateFromActivity(bodyBytes []byte) error
	DeleteObject(objectIri string) error
}

type trackIngester struct {
	cfg         *shared.Config
	logger      shared.ILogger
	repo        dal.IRepo
	metrics     IMetrics
	titlePolicy *bluemonday.Policy
	descPolicy  *bluemonday.Policy
}

func NewTrackIngester(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	metrics IMetrics,
) ITrackIngester {
	return &trackIngester{
		cfg:         cfg,
		logger:      logger,
		repo:        repo,
		metrics:     metrics,
		titlePolicy: bluemonday.StrictPolicy(),
		descPolicy:  bluemonday.UGCPolicy(),
	}
}

func (ti *trackIngester) CreateFromActivity(sender *dal.Actor, bodyBytes []byte) error {

	var act dto.ActivityIn[dto.Audio]
	if err := json.Unmarshal(bodyBytes, &act); err != nil {
		return fmt.Errorf("invalid JSON in Create activity body: %v", err)
	}
	if act.Object.Type != "Audio" {
		// Notes and other objects stay in the activity store only
		ti.logger.Debugf("Create carries %s, not ingesting", act.Object.Type)
		return nil
	}

	link := act.Object.MediaLink()
	if link == nil {
		return fmt.Errorf("audio object has no usable media link: %s", act.Object.Id)
	}

	published := time.Now().UTC()
	if act.Object.Published != "" {
		if t, err := time.Parse(time.RFC3339, act.Object.Published); err == nil {
			published = t.UTC()
		}
	}

	track := dal.Track{
		CreatedAt:   time.Now().UTC(),
		ActorId:     sender.Id,
		Iri:         act.Object.Id,
		Title:       ti.titlePolicy.Sanitize(act.Object.Name),
		Description: ti.descPolicy.Sanitize(act.Object.Content),
		Published:   published,
		MediaUrl:    link.Href,
		MediaType:   link.MediaType,
		MediaHash:   int64(murmur3.Sum64([]byte(link.Href))),
	}
	isNew, err := ti.repo.AddTrackIfNotExist(&track)
	if err != nil {
		return err
	}
	if !isNew {
		ti.logger.Infof("Track already known, skipping: %s", link.Href)
		return nil
	}

	ti.logger.Infof("Saved track '%s' by %s", track.Title, sender.Iri)
	ti.metrics.TrackSaved()
	return nil
}

func (ti *trackIngester) UpdateFromActivity(bodyBytes []byte) error {

	var act dto.ActivityIn[dto.Audio]
	if err := json.Unmarshal(bodyBytes, &act); err != nil {
		return fmt.Errorf("invalid JSON in Update activity body: %v", err)
	}
	if act.Object.Id == "" {
		return ErrNotAnActivity
	}

	track, err := ti.repo.GetTrackByIri(act.Object.Id)
	if err != nil {
		return err
	}
	if track == nil {
		ti.logger.Infof("Update for unknown track, ignoring: %s", act.Object.Id)
		return nil
	}

	return ti.repo.UpdateTrack(
		act.Object.Id,
		ti.titlePolicy.Sanitize(act.Object.Name),
		ti.descPolicy.Sanitize(act.Object.Content))
}

func (ti *trackIngester) DeleteObject(objectIri string) error {
	return ti.repo.SetTrackDeleted(objectIri)
}
