package logic

import (
	"encoding/json"
	"fedisound/dto"
	"fedisound/shared"
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_remote_fetcher.go -package mocks fedisound/logic IRemoteFetcher

// The content type federated servers expect on ActivityPub requests.
const apubContentType = `application/ld+json; profile="https://www.w3.org/ns/activitystreams"`

const fetchTimeoutSec = 10

// IRemoteFetcher dereferences remote ActivityPub documents.
type IRemoteFetcher interface {
	RetrieveActor(iri string) (*dto.ActorDoc, error)
	RetrieveActivity(iri string) (*dto.ActivityInBase, []byte, error)
}

type remoteFetcher struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
}

func NewRemoteFetcher(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IRemoteFetcher {
	return &remoteFetcher{cfg, logger, userAgent, metrics}
}

func (rf *remoteFetcher) get(iri string) ([]byte, error) {

	obs := rf.metrics.StartApubRequestOut("get")
	defer obs.Finish()

	client := &http.Client{}
	client.Timeout = time.Second * fetchTimeoutSec
	var req *http.Request
	var err error
	if req, err = http.NewRequest("GET", iri, nil); err != nil {
		return nil, err
	}
	req.Header.Set("Accept", apubContentType)
	rf.userAgent.AddUserAgent(req)
	var resp *http.Response
	if resp, err = client.Do(req); err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusGone {
		return nil, ErrResourceGone
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrResourceNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s; got status %v", iri, resp.StatusCode)
	}

	var bodyBytes []byte
	if bodyBytes, err = io.ReadAll(resp.Body); err != nil {
		return nil, err
	}
	return bodyBytes, nil
}

func (rf *remoteFetcher) RetrieveActor(iri string) (*dto.ActorDoc, error) {

	bodyBytes, err := rf.get(iri)
	if err != nil {
		return nil, err
	}

	var obj dto.ActorDoc
	if err = json.Unmarshal(bodyBytes, &obj); err != nil {
		return nil, err
	}
	if obj.Id == "" {
		return nil, fmt.Errorf("document at %s is not an actor", iri)
	}

	return &obj, nil
}

func (rf *remoteFetcher) RetrieveActivity(iri string) (*dto.ActivityInBase, []byte, error) {

	bodyBytes, err := rf.get(iri)
	if err != nil {
		return nil, nil, err
	}

	var obj dto.ActivityInBase
	if err = json.Unmarshal(bodyBytes, &obj); err != nil {
		return nil, nil, err
	}
	if obj.Id == "" || obj.Type == "" {
		return nil, nil, ErrNotAnActivity
	}

	return &obj, bodyBytes, nil
}
