package logic

import (
	"bytes"
	"crypto/rsa"
	"fedisound/shared"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-fed/httpsig"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_activity_sender.go -package mocks fedisound/logic IActivitySender

// IActivitySender signs and POSTs one serialized activity to one remote inbox.
// The payload goes out byte for byte as provided: if it carries an embedded
// signature from its original author, that must survive the relay.
type IActivitySender interface {
	Send(privKey *rsa.PrivateKey, sendingActorIri, inboxUrl string, payload []byte) error
}

const activityTimeoutSec = 10

type activitySender struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
}

func NewActivitySender(cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IActivitySender {
	return &activitySender{cfg, logger, userAgent, metrics}
}

func (sender *activitySender) Send(
	privKey *rsa.PrivateKey,
	sendingActorIri,
	inboxUrl string,
	payload []byte,
) error {

	obs := sender.metrics.StartApubRequestOut("post")
	defer obs.Finish()

	host := strings.Replace(inboxUrl, "https://", "", -1)
	slashIx := strings.IndexByte(host, '/')
	if slashIx == -1 {
		return fmt.Errorf("invalid inbox url: %v", inboxUrl)
	}
	host = host[:slashIx]

	dateStr := time.Now().UTC().Format(http.TimeFormat)

	req, err := http.NewRequest("POST", inboxUrl, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	sender.userAgent.AddUserAgent(req)
	req.Header.Set("Content-Type", apubContentType)
	req.Header.Set("Accept", apubContentType)
	req.Header.Set("host", host)
	req.Header.Set("date", dateStr)

	signer, _, err := httpsig.NewSigner(
		[]httpsig.Algorithm{httpsig.RSA_SHA256},
		httpsig.DigestSha256,
		[]string{httpsig.RequestTarget, "Host", "date", "digest"},
		httpsig.Signature,
		0)
	if err != nil {
		return err
	}

	keyId := sendingActorIri + "#main-key"
	err = signer.SignRequest(privKey, keyId, req, payload)
	if err != nil {
		return err
	}

	client := http.Client{}
	client.Timeout = time.Second * activityTimeoutSec
	resp, err := client.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 300 {
		te := &TransportError{StatusCode: resp.StatusCode, Msg: string(respBody)}
		sender.logger.Warnf("Activity POST to %s failed: %v", inboxUrl, te)
		return te
	}

	return nil
}
