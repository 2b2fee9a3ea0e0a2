package logic

import (
	"encoding/json"
	"errors"
	"fedisound/dto"
	"fedisound/shared"
	"strings"
)

// classify decides what happens to a freshly stored inbound activity:
// whether it shows up in the public stream, whether it gets relayed to our
// followers, and whether it is soft-deleted right away.
//
// The Create branch raises the forward flag, clears it, conditionally
// re-raises it, then forces it back down. The net policy is narrow: only a
// reply within the sending actor's own thread, addressed to that actor's
// followers collection, gets forwarded. Each reset is load-bearing.
func (ib *inboxProcessor) classify(actBase *dto.ActivityInBase) (tagStream, shouldForward, shouldDelete bool, err error) {

	senderIri := actBase.Actor

	switch actBase.Type {

	case "Announce":
		tagStream, shouldDelete, err = ib.classifyAnnounce(actBase)

	case "Create":
		inReplyTo := actBase.ObjectInReplyTo()
		// Part of the stream if it's not a reply, or replies within the
		// sender's own thread
		if inReplyTo == "" || strings.HasPrefix(inReplyTo, senderIri) {
			tagStream = true
		}

		if inReplyTo != "" {
			var reply *dto.ActivityInBase
			var replyBytes []byte
			reply, replyBytes, err = ib.fetcher.RetrieveActivity(inReplyTo)
			if errors.Is(err, ErrNotAnActivity) {
				shouldDelete = true
				err = nil
			} else if err != nil {
				return
			} else {
				if (strings.HasPrefix(reply.Id, senderIri) || hasMention(replyBytes, senderIri)) &&
					actBase.IsPublic(shared.ActivityPublic) {
					shouldForward = true
				}
			}
		}

		shouldForward = false
		localFollowers := senderIri + "/followers"
		for _, str := range actBase.To {
			if str == localFollowers {
				shouldForward = true
			}
		}
		for _, str := range actBase.Cc {
			if str == localFollowers {
				shouldForward = true
			}
		}
		if !(inReplyTo != "" && strings.HasPrefix(inReplyTo, senderIri)) {
			shouldForward = false
		}

	case "Delete":
		if objId := actBase.ObjectId(); objId != "" {
			stored, getErr := ib.repo.GetActivityByIri(objId)
			// If the deleted activity was originally forwarded, forward the
			// delete too
			if getErr == nil && stored != nil && stored.Forwarded {
				shouldForward = true
			}
		}

	case "Like":
		// Some servers relay likes they received; only keep likes of
		// things we host
		if !shared.IsLocalIRI(actBase.ObjectId(), ib.idb.BaseUrl()) {
			shouldDelete = true
		}
	}

	return
}

func (ib *inboxProcessor) classifyAnnounce(actBase *dto.ActivityInBase) (tagStream, shouldDelete bool, err error) {

	objId := actBase.ObjectId()
	if objId == "" {
		// Most likely an OStatus notice
		shouldDelete = true
		return
	}
	if actBase.ObjectType() != "" {
		// Object came embedded; nothing to resolve
		tagStream = true
		return
	}
	_, _, fetchErr := ib.fetcher.RetrieveActivity(objId)
	if fetchErr == nil {
		tagStream = true
		return
	}
	if errors.Is(fetchErr, ErrNotAnActivity) {
		shouldDelete = true
		return
	}
	if errors.Is(fetchErr, ErrResourceGone) || errors.Is(fetchErr, ErrResourceNotFound) {
		// The announced activity is deleted; drop the announce
		shouldDelete = true
		return
	}
	err = fetchErr
	return
}

// hasMention reports whether the document's tag list mentions the given IRI.
func hasMention(raw []byte, iri string) bool {

	var doc struct {
		Tag []struct {
			Type string `json:"type"`
			Href string `json:"href"`
		} `json:"tag"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false
	}
	for _, tag := range doc.Tag {
		if tag.Type == "Mention" && tag.Href == iri {
			return true
		}
	}
	return false
}
