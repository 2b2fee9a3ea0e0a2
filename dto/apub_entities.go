package dto

import (
	"encoding/json"
	"fmt"
)

// ActorDoc is the ActivityPub representation of an actor, both as we render
// local users and as we parse remote profiles.
type ActorDoc struct {
	Context           any            `json:"@context"`
	Id                string         `json:"id"`
	Type              string         `json:"type"`
	PreferredUserName string         `json:"preferredUsername"`
	Name              string         `json:"name"`
	Summary           string         `json:"summary"`
	ManuallyApproves  bool           `json:"manuallyApprovesFollowers"`
	Published         string         `json:"published,omitempty"`
	Inbox             string         `json:"inbox"`
	Outbox            string         `json:"outbox"`
	Followers         string         `json:"followers"`
	Following         string         `json:"following"`
	Endpoints         ActorEndpoints `json:"endpoints"`
	PublicKey         PublicKey      `json:"publicKey"`
	Icon              *Image         `json:"icon,omitempty"`
}

type ActorEndpoints struct {
	SharedInbox string `json:"sharedInbox"`
}

type PublicKey struct {
	Id           string `json:"id"`
	Owner        string `json:"owner"`
	PublicKeyPem string `json:"publicKeyPem"`
}

type Image struct {
	Type string `json:"type"`
	Url  string `json:"url"`
}

type Tombstone struct {
	Context    any    `json:"@context"`
	Id         string `json:"id"`
	Type       string `json:"type"`
	FormerType string `json:"formerType,omitempty"`
}

type OrderedCollection struct {
	Context      any                    `json:"@context"`
	Id           string                 `json:"id"`
	Type         string                 `json:"type"`
	TotalItems   uint                   `json:"totalItems"`
	OrderedItems []string               `json:"orderedItems"`
	First        *OrderedCollectionPage `json:"first,omitempty"`
}

type OrderedCollectionPage struct {
	Id           string   `json:"id"`
	Type         string   `json:"type"`
	PartOf       string   `json:"partOf"`
	Next         string   `json:"next,omitempty"`
	OrderedItems []string `json:"orderedItems"`
}

func getRecipient(raw any) ([]string, error) {
	var res []string
	if raw == nil {
		return res, nil
	}
	if slice, ok := raw.([]interface{}); ok {
		for _, s := range slice {
			if str, ok := s.(string); ok {
				res = append(res, str)
			} else {
				return res, fmt.Errorf("list of recipients must only contain strings")
			}
		}
	} else if str, ok := raw.(string); ok {
		res = []string{str}
	} else {
		return res, fmt.Errorf("to and cc must be single string or array of strings")
	}
	return res, nil
}

// ActivityInBase is the first-pass parse of any incoming activity: enough to
// know its IRI, type, actor and audience, with the object left raw.
type ActivityInBase struct {
	Id     string   `json:"id"`
	Type   string   `json:"type"`
	Actor  string   `json:"actor"`
	To     []string `json:"-"`
	RawTo  any      `json:"to"`
	Cc     []string `json:"-"`
	RawCc  any      `json:"cc"`
	Object any      `json:"object"`
}

func (x *ActivityInBase) UnmarshalJSON(data []byte) error {
	var err error
	type Y ActivityInBase
	var y = (*Y)(x)
	if err = json.Unmarshal(data, y); err != nil {
		return err
	}
	if y.To, err = getRecipient(y.RawTo); err != nil {
		return err
	}
	if y.Cc, err = getRecipient(y.RawCc); err != nil {
		return err
	}
	return nil
}

// ObjectId returns the IRI of the activity's object, whether the object is a
// bare string or an embedded document.
func (x *ActivityInBase) ObjectId() string {
	if str, ok := x.Object.(string); ok {
		return str
	}
	if obj, ok := x.Object.(map[string]interface{}); ok {
		if id, ok := obj["id"].(string); ok {
			return id
		}
	}
	return ""
}

// ObjectInReplyTo returns the embedded object's inReplyTo IRI, or empty.
func (x *ActivityInBase) ObjectInReplyTo() string {
	if obj, ok := x.Object.(map[string]interface{}); ok {
		if iri, ok := obj["inReplyTo"].(string); ok {
			return iri
		}
	}
	return ""
}

// ObjectType returns the embedded object's type field, or empty.
func (x *ActivityInBase) ObjectType() string {
	if obj, ok := x.Object.(map[string]interface{}); ok {
		if t, ok := obj["type"].(string); ok {
			return t
		}
	}
	return ""
}

// IsPublic tells whether the activity is addressed to the public stream.
func (x *ActivityInBase) IsPublic(publicIri string) bool {
	for _, str := range x.To {
		if str == publicIri {
			return true
		}
	}
	for _, str := range x.Cc {
		if str == publicIri {
			return true
		}
	}
	return false
}

// ActivityIn parses an incoming activity with a typed object.
type ActivityIn[T any] struct {
	Id     string   `json:"id"`
	Type   string   `json:"type"`
	Actor  string   `json:"actor"`
	To     []string `json:"-"`
	RawTo  any      `json:"to"`
	Cc     []string `json:"-"`
	RawCc  any      `json:"cc"`
	Object T        `json:"object"`
}

func (x *ActivityIn[T]) UnmarshalJSON(data []byte) error {
	var err error
	type Y ActivityIn[T]
	var y = (*Y)(x)
	if err = json.Unmarshal(data, y); err != nil {
		return err
	}
	if y.To, err = getRecipient(y.RawTo); err != nil {
		return err
	}
	if y.Cc, err = getRecipient(y.RawCc); err != nil {
		return err
	}
	return nil
}

// ActivityOut is a typed outgoing activity for documents we synthesize
// ourselves (Accept, Update and the like).
type ActivityOut struct {
	Context any       `json:"@context"`
	Id      string    `json:"id,omitempty"`
	Type    string    `json:"type"`
	Actor   string    `json:"actor"`
	To      *[]string `json:"to,omitempty"`
	Cc      *[]string `json:"cc,omitempty"`
	Object  any       `json:"object,omitempty"`
}

// Audio is the media object at the heart of this service's Create activities.
type Audio struct {
	Context      any      `json:"@context,omitempty"`
	Id           string   `json:"id,omitempty"`
	Type         string   `json:"type"`
	Published    string   `json:"published,omitempty"`
	Name         string   `json:"name"`
	Content      string   `json:"content,omitempty"`
	AttributedTo string   `json:"attributedTo"`
	InReplyTo    *string  `json:"inReplyTo"`
	To           []string `json:"-"`
	RawTo        any      `json:"to,omitempty"`
	Cc           []string `json:"-"`
	RawCc        any      `json:"cc,omitempty"`
	Url          any      `json:"url,omitempty"`
}

func (x *Audio) UnmarshalJSON(data []byte) error {
	var err error
	type Y Audio
	var y = (*Y)(x)
	if err = json.Unmarshal(data, y); err != nil {
		return err
	}
	if y.To, err = getRecipient(y.RawTo); err != nil {
		return err
	}
	if y.Cc, err = getRecipient(y.RawCc); err != nil {
		return err
	}
	return nil
}

func (x *Audio) MarshalJSON() ([]byte, error) {
	type Y Audio
	var y = (*Y)(x)
	// Empty audiences stay off the wire instead of serializing as null
	y.RawTo = nil
	y.RawCc = nil
	if len(y.To) != 0 {
		y.RawTo = y.To
	}
	if len(y.Cc) != 0 {
		y.RawCc = y.Cc
	}
	return json.Marshal(y)
}

type Link struct {
	Type      string `json:"type"`
	Href      string `json:"href"`
	MediaType string `json:"mediaType"`
}

// MediaLink digs the first usable link out of an Audio's url field, which
// remote software serves as an object, an array, or a bare string.
func (x *Audio) MediaLink() *Link {
	fromMap := func(obj map[string]interface{}) *Link {
		var lnk Link
		lnk.Type, _ = obj["type"].(string)
		lnk.Href, _ = obj["href"].(string)
		lnk.MediaType, _ = obj["mediaType"].(string)
		if lnk.Href == "" {
			return nil
		}
		return &lnk
	}
	switch v := x.Url.(type) {
	case string:
		return &Link{Type: "Link", Href: v}
	case map[string]interface{}:
		return fromMap(v)
	case []interface{}:
		for _, item := range v {
			if obj, ok := item.(map[string]interface{}); ok {
				if lnk := fromMap(obj); lnk != nil {
					return lnk
				}
			}
		}
	}
	return nil
}
