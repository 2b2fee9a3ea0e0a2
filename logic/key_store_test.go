package logic

import (
	"crypto/x509"
	"encoding/pem"
	"fedisound/dal"
	"fedisound/shared"
	"testing"

	"github.com/stretchr/testify/assert"
)

type privKeyRepo struct {
	dal.IRepo
	keys map[string]string
}

func (r *privKeyRepo) GetPrivKey(iri string) (string, error) {
	return r.keys[iri], nil
}

func TestMakeKeyPair_RoundTrip(t *testing.T) {
	repo := &privKeyRepo{keys: make(map[string]string)}
	ks := NewKeyStore(&shared.Config{Host: testHost}, repo)

	pubKey, privKey, err := ks.MakeKeyPair()
	assert.Nil(t, err)

	// Other servers parse our public key as PKIX
	block, _ := pem.Decode([]byte(pubKey))
	assert.NotNil(t, block)
	assert.Equal(t, "PUBLIC KEY", block.Type)
	_, err = x509.ParsePKIXPublicKey(block.Bytes)
	assert.Nil(t, err)

	repo.keys[aliceIri] = privKey
	parsed, err := ks.GetPrivKey(aliceIri)
	assert.Nil(t, err)
	assert.NotNil(t, parsed)
	assert.Nil(t, parsed.Validate())
}

func TestGetPrivKey_MissingKey(t *testing.T) {
	repo := &privKeyRepo{keys: make(map[string]string)}
	ks := NewKeyStore(&shared.Config{Host: testHost}, repo)

	_, err := ks.GetPrivKey("https://elsewhere.example/user/remote")

	assert.NotNil(t, err)
}
