package dal

import (
	"time"
)

// Box says which collection an activity belongs to.
type Box string

const (
	BoxInbox   Box = "inbox"
	BoxOutbox  Box = "outbox"
	BoxReplies Box = "replies"
)

type Actor struct {
	Id           int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Iri          string // https://sound.example/user/alice
	Domain       string // sound.example
	Handle       string // alice
	Name         string // Alice of the Airwaves
	Summary      string
	ActorType    string // Person
	Inbox        string // https://sound.example/user/alice/inbox
	SharedInbox  string // https://sound.example/inbox
	Outbox       string
	FollowersIri string // the collection IRI the actor advertises
	PubKey       string
	Local        bool
	Deleted      bool
}

type Activity struct {
	Id        int64
	CreatedAt time.Time
	Iri       string
	ActorIri  string
	Type      string
	Box       Box
	Payload   string
	Local     bool
	Processed bool
	Stream    bool // shows up in the public stream
	Forwarded bool // was relayed to our followers
	Deleted   bool
}

type Track struct {
	Id          int
	CreatedAt   time.Time
	ActorId     int
	Iri         string
	Title       string
	Description string
	Published   time.Time
	MediaUrl    string
	MediaType   string
	MediaHash   int64 // hash of the media URL; dedupes re-sent uploads per actor
	Deleted     bool
}

type DeliverQueueItem struct {
	Id          int
	SendingUser string // IRI of the local actor whose key signs the request
	ToInbox     string
	CreatedAt   time.Time
	ActivityIri string
	Payload     string
	Attempts    int
}
