package logic

import (
	"crypto/x509"
	"encoding/pem"
	"fedisound/dto"
	"fedisound/shared"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-fed/httpsig"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_httpsig_checker.go -package mocks fedisound/logic IHttpSigChecker

type IHttpSigChecker interface {
	Check(actor string, r *http.Request) (*dto.ActorDoc, string, error)
}

type httpSigChecker struct {
	logger  shared.ILogger
	fetcher IRemoteFetcher
	reKeyId *regexp.Regexp
}

func NewHttpSigChecker(logger shared.ILogger, fetcher IRemoteFetcher) IHttpSigChecker {
	reKeyId := regexp.MustCompile("keyId=['\"]([^'\"]+)['\"]")
	return &httpSigChecker{logger, fetcher, reKeyId}
}

func (chk *httpSigChecker) Check(actor string, r *http.Request) (*dto.ActorDoc, string, error) {

	var err error

	var sigHeader = r.Header.Get("Signature")
	groups := chk.reKeyId.FindStringSubmatch(sigHeader)
	if groups == nil {
		return nil, "Missing or invalid 'Signature' header", nil
	}
	keyId := groups[1]

	if !strings.HasPrefix(keyId, actor) {
		return nil, fmt.Sprintf("Actor is not prefix of keyId; actor: %s, keyId: %s", actor, keyId), nil
	}

	var actorDoc *dto.ActorDoc
	if actorDoc, err = chk.fetcher.RetrieveActor(actor); err != nil {
		return nil, fmt.Sprintf("Failed to retrieve actor document: %s: %v", actor, err), nil
	}

	verifier, err := httpsig.NewVerifier(r)
	if err != nil {
		chk.logger.Errorf("Failed to create signature verifier: %v", err)
		return nil, "", err
	}

	pubKeyStr := actorDoc.PublicKey.PublicKeyPem
	block, _ := pem.Decode([]byte(pubKeyStr))
	if block == nil {
		return nil, fmt.Sprintf("Sender's public key is not valid PEM: %s", actor), nil
	}

	var pubKey interface{}
	if pubKey, err = x509.ParsePKIXPublicKey(block.Bytes); err != nil {
		return nil, fmt.Sprintf("Failed to parse sender's public key: %v", err), nil
	}

	if err = verifier.Verify(pubKey, httpsig.RSA_SHA256); err != nil {
		return nil, fmt.Sprintf("Incorrect signature: %v", err), nil
	}

	return actorDoc, "", nil
}
