package logic

import (
	"encoding/json"
	"fedisound/dal"
	"fedisound/dto"
	"fmt"
)

// dispatch runs the type-specific side effects of an inbound activity.
// Unknown types are rejected; everything here must stay idempotent, the loop
// may see the same activity again after a crash.
func (ib *inboxProcessor) dispatch(act *dal.Activity, actBase *dto.ActivityInBase) error {

	switch actBase.Type {
	case "Follow":
		return ib.handleFollow(actBase)
	case "Accept":
		if actBase.ObjectType() == "Follow" {
			return ib.handleAcceptFollow(act, actBase)
		}
		ib.logger.Infof("Ignoring Accept of %s", actBase.ObjectType())
		return nil
	case "Undo":
		return ib.handleUndo(act, actBase)
	case "Create":
		sender, err := ib.directory.EnsureActorByIri(actBase.Actor)
		if err != nil {
			return err
		}
		return ib.ingester.CreateFromActivity(sender, []byte(act.Payload))
	case "Update":
		return ib.handleUpdate(act, actBase)
	case "Delete":
		return ib.handleDelete(actBase)
	case "Announce", "Like":
		// Stored and classified; nothing further to mutate
		return nil
	default:
		return fmt.Errorf("unsupported activity type: %s", actBase.Type)
	}
}

func (ib *inboxProcessor) handleFollow(actBase *dto.ActivityInBase) error {

	targetIri := actBase.ObjectId()
	target, err := ib.repo.GetActorByIri(targetIri)
	if err != nil {
		return err
	}
	if target == nil || !target.Local {
		return fmt.Errorf("follow target is not a local actor: %s", targetIri)
	}
	if target.Deleted {
		return ErrResourceGone
	}

	sender, err := ib.directory.EnsureActorByIri(actBase.Actor)
	if err != nil {
		return err
	}

	ib.logger.Infof("Handling Follow of %s by %s", target.Iri, sender.Iri)

	// Reply with an Accept embedding the original request
	accept := map[string]interface{}{
		"@context": "https://www.w3.org/ns/activitystreams",
		"type":     "Accept",
		"actor":    target.Iri,
		"to":       []string{sender.Iri},
		"object": map[string]interface{}{
			"id":     actBase.Id,
			"type":   "Follow",
			"actor":  sender.Iri,
			"object": target.Iri,
		},
	}
	if _, err = ib.outbox.PostActivity(target, accept); err != nil {
		return err
	}

	if _, err = ib.repo.AddFollower(sender.Id, target.Id, actBase.Id); err != nil {
		return err
	}
	ib.refreshFollowerGauge()
	return nil
}

// refreshFollowerGauge re-counts follower edges after a change. The count is
// advisory; a failure must not fail the activity that triggered it.
func (ib *inboxProcessor) refreshFollowerGauge() {
	count, err := ib.repo.GetTotalFollowerCount()
	if err != nil {
		ib.logger.Errorf("Failed to count followers: %v", err)
		return
	}
	ib.metrics.TotalFollowers(int(count))
}

func (ib *inboxProcessor) handleAcceptFollow(act *dal.Activity, actBase *dto.ActivityInBase) error {

	// The embedded Follow: its actor is ours, its object is the accepter
	var actAccept dto.ActivityIn[dto.ActivityInBase]
	if err := json.Unmarshal([]byte(act.Payload), &actAccept); err != nil {
		return fmt.Errorf("invalid JSON in Accept activity body: %v", err)
	}
	followActorIri := actAccept.Object.Actor
	followIri := actAccept.Object.Id

	local, err := ib.repo.GetActorByIri(followActorIri)
	if err != nil {
		return err
	}
	if local == nil || !local.Local {
		return fmt.Errorf("accepted Follow was not sent by a local actor: %s", followActorIri)
	}

	accepter, err := ib.directory.EnsureActorByIri(actBase.Actor)
	if err != nil {
		return err
	}

	ib.logger.Infof("%s now follows %s", local.Iri, accepter.Iri)
	if _, err = ib.repo.AddFollower(local.Id, accepter.Id, followIri); err != nil {
		return err
	}
	ib.refreshFollowerGauge()
	return nil
}

func (ib *inboxProcessor) handleUndo(act *dal.Activity, actBase *dto.ActivityInBase) error {

	switch actBase.ObjectType() {
	case "Follow":
		return ib.handleUndoFollow(act)
	case "Like", "Announce":
		// Retract the stored activity; repeating this is a no-op
		objIri := actBase.ObjectId()
		if objIri == "" {
			return ErrNotAnActivity
		}
		return ib.repo.SetActivityDeleted(objIri)
	case "":
		// Object given by IRI only; resolve it from the store
		objIri := actBase.ObjectId()
		stored, err := ib.repo.GetActivityByIri(objIri)
		if err != nil {
			return err
		}
		if stored == nil {
			ib.logger.Infof("Undo references unknown activity, ignoring: %s", objIri)
			return nil
		}
		if stored.Type == "Follow" {
			return ib.undoFollowByPayload([]byte(stored.Payload))
		}
		return ib.repo.SetActivityDeleted(objIri)
	default:
		return fmt.Errorf("cannot undo activity of type %s", actBase.ObjectType())
	}
}

func (ib *inboxProcessor) handleUndoFollow(act *dal.Activity) error {

	var actUndoFollow dto.ActivityIn[dto.ActivityInBase]
	if err := json.Unmarshal([]byte(act.Payload), &actUndoFollow); err != nil {
		return fmt.Errorf("invalid JSON in Undo Follow activity body: %v", err)
	}
	inner, err := json.Marshal(actUndoFollow.Object)
	if err != nil {
		return err
	}
	return ib.undoFollowByPayload(inner)
}

// undoFollowByPayload removes the edge a Follow once created. Both directions
// come through here: a remote unfollowing us, and a remote confirming our own
// retraction. Missing rows mean the edge is already gone; that's fine.
func (ib *inboxProcessor) undoFollowByPayload(followBytes []byte) error {

	var follow dto.ActivityInBase
	if err := json.Unmarshal(followBytes, &follow); err != nil {
		return fmt.Errorf("invalid JSON in Follow object: %v", err)
	}

	follower, err := ib.repo.GetActorByIri(follow.Actor)
	if err != nil {
		return err
	}
	followed, err := ib.repo.GetActorByIri(follow.ObjectId())
	if err != nil {
		return err
	}
	if follower == nil || followed == nil {
		ib.logger.Infof("Undo Follow for unknown actors: %s -> %s", follow.Actor, follow.ObjectId())
		return nil
	}

	ib.logger.Infof("%s no longer follows %s", follower.Iri, followed.Iri)
	if err = ib.repo.RemoveFollower(follower.Id, followed.Id); err != nil {
		return err
	}
	ib.refreshFollowerGauge()
	return nil
}

func (ib *inboxProcessor) handleUpdate(act *dal.Activity, actBase *dto.ActivityInBase) error {

	switch actBase.ObjectType() {
	case "Person", "Service", "Application":
		var actUpdate dto.ActivityIn[dto.ActorDoc]
		if err := json.Unmarshal([]byte(act.Payload), &actUpdate); err != nil {
			return fmt.Errorf("invalid JSON in Update activity body: %v", err)
		}
		ib.logger.Infof("Updating actor profile %s", actUpdate.Object.Id)
		return ib.directory.UpdateActorFromDoc(&actUpdate.Object)
	case "Audio":
		return ib.ingester.UpdateFromActivity([]byte(act.Payload))
	default:
		return fmt.Errorf("cannot update object of type %s", actBase.ObjectType())
	}
}

func (ib *inboxProcessor) handleDelete(actBase *dto.ActivityInBase) error {

	objIri := actBase.ObjectId()
	if objIri == "" {
		return ErrNotAnActivity
	}

	// Deleting the sending actor itself tears down everything it owns
	if objIri == actBase.Actor {
		ib.logger.Infof("Actor deleted itself: %s", objIri)
		err := ib.directory.DeleteActor(objIri)
		if err == ErrResourceNotFound {
			return nil
		}
		return err
	}

	if err := ib.repo.SetActivityDeleted(objIri); err != nil {
		return err
	}
	return ib.ingester.DeleteObject(objIri)
}
