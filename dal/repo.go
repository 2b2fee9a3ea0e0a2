package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fedisound/shared"
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks fedisound/dal IRepo

type IRepo interface {
	InitUpdateDb()
	GetNextId() uint64
	AddActorIfNotExist(actor *Actor, privKey string) (isNew bool, err error)
	GetActorByIri(iri string) (*Actor, error)
	GetActorByName(domain, handle string) (*Actor, error)
	GetLocalActors() ([]*Actor, error)
	GetPrivKey(iri string) (string, error)
	UpdateActorProfile(iri, name, summary, pubKey string) error
	SetActorDeleted(iri string) error
	AddFollower(actorId, targetId int, requestId string) (isNew bool, err error)
	RemoveFollower(actorId, targetId int) error
	GetFollowersOf(targetId int) ([]*Actor, error)
	GetFollowingsOf(actorId int) ([]*Actor, error)
	GetFollowerCount(targetId int) (uint, error)
	GetFollowingCount(actorId int) (uint, error)
	GetTotalFollowerCount() (uint, error)
	AddActivityIfNotExist(act *Activity) (isNew bool, err error)
	GetActivityById(id int64) (*Activity, error)
	GetActivityByIri(iri string) (*Activity, error)
	SetActivityDeleted(iri string) error
	SetActivityMeta(iri string, stream, forwarded, deleted bool) error
	DeleteActivitiesByActor(actorIri string) error
	MarkActivityProcessed(id int64) error
	GetUnprocessedInbox(maxCount int) ([]*Activity, error)
	GetOutboxIrisOf(actorIri string) ([]string, error)
	GetOutboxCountOf(actorIri string) (uint, error)
	AddTrackIfNotExist(track *Track) (isNew bool, err error)
	GetTrackByIri(iri string) (*Track, error)
	UpdateTrack(iri, title, description string) error
	SetTrackDeleted(iri string) error
	DeleteTracksByActor(actorId int) error
	GetTracksOf(actorId, maxCount int) ([]*Track, error)
	AddDeliverQueueItem(dqi *DeliverQueueItem) error
	GetDeliverQueueItems(aboveId, maxCount int) ([]*DeliverQueueItem, int, error)
	UpdateDeliverAttempts(id, attempts int) error
	DeleteDeliverQueueItem(id int) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
	muId   sync.Mutex
	nextId uint64
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
		nextId: uint64(time.Now().UnixNano()),
	}

	return &repo
}

func (repo *Repo) GetNextId() uint64 {
	repo.muId.Lock()
	res := repo.nextId + 1
	repo.nextId = res
	repo.muId.Unlock()
	return res
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", i, err)
			panic(err)
		}
	}
}

func isDuplicateKey(err error) bool {
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			return true
		}
	}
	return false
}

func (repo *Repo) AddActorIfNotExist(actor *Actor, privKey string) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO actors
    	(created_at, updated_at, iri, domain, handle, name, summary, actor_type,
    	 inbox, shared_inbox, outbox, followers_iri, pubkey, privkey, local, deleted)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		actor.CreatedAt, actor.UpdatedAt, actor.Iri, actor.Domain, actor.Handle, actor.Name, actor.Summary,
		actor.ActorType, actor.Inbox, actor.SharedInbox, actor.Outbox, actor.FollowersIri,
		actor.PubKey, privKey, actor.Local, actor.Deleted)
	if err == nil {
		var stored *Actor
		if stored, err = repo.getActorByIri(actor.Iri); err == nil && stored != nil {
			actor.Id = stored.Id
		}
		return
	}
	// Duplicate key: actor with this IRI, or this domain+handle, already exists
	if isDuplicateKey(err) {
		isNew = false
		var stored *Actor
		if stored, err = repo.getActorByIri(actor.Iri); err == nil && stored != nil {
			actor.Id = stored.Id
		}
		return
	}
	return
}

const actorFields = `id, created_at, updated_at, iri, domain, handle, name, summary, actor_type,
	inbox, shared_inbox, outbox, followers_iri, pubkey, local, deleted`

// Same list, prefixed for queries that join followers (it has created_at too).
const joinedActorFields = `actors.id, actors.created_at, actors.updated_at, actors.iri, actors.domain,
	actors.handle, actors.name, actors.summary, actors.actor_type, actors.inbox, actors.shared_inbox,
	actors.outbox, actors.followers_iri, actors.pubkey, actors.local, actors.deleted`

func scanActor(row interface{ Scan(...any) error }) (*Actor, error) {
	var res Actor
	err := row.Scan(&res.Id, &res.CreatedAt, &res.UpdatedAt, &res.Iri, &res.Domain, &res.Handle,
		&res.Name, &res.Summary, &res.ActorType, &res.Inbox, &res.SharedInbox, &res.Outbox,
		&res.FollowersIri, &res.PubKey, &res.Local, &res.Deleted)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) GetActorByIri(iri string) (*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	return repo.getActorByIri(iri)
}

func (repo *Repo) getActorByIri(iri string) (*Actor, error) {
	row := repo.db.QueryRow(`SELECT `+actorFields+` FROM actors WHERE iri=?`, iri)
	res, err := scanActor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetActorByName(domain, handle string) (*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+actorFields+` FROM actors WHERE domain=? AND handle=?`, domain, handle)
	res, err := scanActor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetLocalActors() ([]*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT ` + actorFields + ` FROM actors WHERE local=1 AND deleted=0 ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readActors(rows)
}

func (repo *Repo) GetPrivKey(iri string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT privkey FROM actors WHERE iri=?`, iri)
	var err error
	var res string
	err = row.Scan(&res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return res, nil
}

func (repo *Repo) UpdateActorProfile(iri, name, summary, pubKey string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE actors SET name=?, summary=?, pubkey=?, updated_at=? WHERE iri=?`,
		name, summary, pubKey, time.Now().UTC(), iri)
	return err
}

func (repo *Repo) SetActorDeleted(iri string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE actors SET deleted=1, updated_at=? WHERE iri=?`,
		time.Now().UTC(), iri)
	return err
}

func (repo *Repo) AddFollower(actorId, targetId int, requestId string) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO followers (actor_id, target_id, request_id, created_at)
		VALUES(?, ?, ?, ?)`,
		actorId, targetId, requestId, time.Now().UTC())
	if err == nil {
		return
	}
	// Duplicate key: this follow edge already exists
	if isDuplicateKey(err) {
		isNew = false
		err = nil
		_, err = repo.db.Exec(`UPDATE followers SET request_id=? WHERE actor_id=? AND target_id=?`,
			requestId, actorId, targetId)
		return
	}
	return
}

func (repo *Repo) RemoveFollower(actorId, targetId int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM followers WHERE actor_id=? AND target_id=?`, actorId, targetId)
	return err
}

func (repo *Repo) GetFollowersOf(targetId int) ([]*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT ` + joinedActorFields + ` FROM actors JOIN followers
		ON actors.id=followers.actor_id WHERE followers.target_id=? ORDER BY followers.created_at ASC`
	rows, err := repo.db.Query(query, targetId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readActors(rows)
}

func (repo *Repo) GetFollowingsOf(actorId int) ([]*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT ` + joinedActorFields + ` FROM actors JOIN followers
		ON actors.id=followers.target_id WHERE followers.actor_id=? ORDER BY followers.created_at ASC`
	rows, err := repo.db.Query(query, actorId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readActors(rows)
}

func readActors(rows *sql.Rows) ([]*Actor, error) {
	res := make([]*Actor, 0)
	for rows.Next() {
		a, err := scanActor(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetFollowerCount(targetId int) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM followers WHERE target_id=?`, targetId)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) GetFollowingCount(actorId int) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM followers WHERE actor_id=?`, actorId)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) GetTotalFollowerCount() (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT COUNT(*) FROM followers JOIN actors
		ON followers.target_id=actors.id WHERE actors.local=1`
	row := repo.db.QueryRow(query)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) AddActivityIfNotExist(act *Activity) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	var idVal any
	if act.Id != 0 {
		idVal = act.Id
	}
	_, err = repo.db.Exec(`INSERT INTO activities
    	(id, created_at, iri, actor_iri, typ, box, payload, local, processed, stream, forwarded, deleted)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		idVal, act.CreatedAt, act.Iri, act.ActorIri, act.Type, string(act.Box),
		act.Payload, act.Local, act.Processed, act.Stream, act.Forwarded, act.Deleted)
	if err == nil {
		return
	}
	// Duplicate key: activity with this IRI was stored before
	if isDuplicateKey(err) {
		isNew = false
		err = nil
		return
	}
	return
}

const activityFields = `id, created_at, iri, actor_iri, typ, box, payload, local, processed, stream, forwarded, deleted`

func scanActivity(row interface{ Scan(...any) error }) (*Activity, error) {
	var res Activity
	var box string
	err := row.Scan(&res.Id, &res.CreatedAt, &res.Iri, &res.ActorIri, &res.Type, &box,
		&res.Payload, &res.Local, &res.Processed, &res.Stream, &res.Forwarded, &res.Deleted)
	if err != nil {
		return nil, err
	}
	res.Box = Box(box)
	return &res, nil
}

func (repo *Repo) GetActivityById(id int64) (*Activity, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+activityFields+` FROM activities WHERE id=?`, id)
	res, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetActivityByIri(iri string) (*Activity, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+activityFields+` FROM activities WHERE iri=?`, iri)
	res, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) SetActivityDeleted(iri string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE activities SET deleted=1 WHERE iri=?`, iri)
	return err
}

func (repo *Repo) SetActivityMeta(iri string, stream, forwarded, deleted bool) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE activities SET stream=?, forwarded=?, deleted=? WHERE iri=?`,
		stream, forwarded, deleted, iri)
	return err
}

func (repo *Repo) DeleteActivitiesByActor(actorIri string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE activities SET deleted=1 WHERE actor_iri=?`, actorIri)
	return err
}

func (repo *Repo) MarkActivityProcessed(id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE activities SET processed=1 WHERE id=?`, id)
	return err
}

func (repo *Repo) GetUnprocessedInbox(maxCount int) ([]*Activity, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+activityFields+` FROM activities
		WHERE box=? AND processed=0 AND deleted=0 ORDER BY id ASC LIMIT ?`,
		string(BoxInbox), maxCount)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*Activity, 0, maxCount)
	for rows.Next() {
		act, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, act)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetOutboxIrisOf(actorIri string) ([]string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT iri FROM activities
		WHERE actor_iri=? AND box=? AND deleted=0 ORDER BY id DESC`,
		actorIri, string(BoxOutbox))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]string, 0)
	for rows.Next() {
		var iri string
		if err = rows.Scan(&iri); err != nil {
			return nil, err
		}
		res = append(res, iri)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetOutboxCountOf(actorIri string) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM activities WHERE actor_iri=? AND box=? AND deleted=0`,
		actorIri, string(BoxOutbox))
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) AddTrackIfNotExist(track *Track) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO tracks
    	(created_at, actor_id, iri, title, description, published, media_url, media_type, media_hash, deleted)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		track.CreatedAt, track.ActorId, track.Iri, track.Title, track.Description,
		track.Published, track.MediaUrl, track.MediaType, track.MediaHash, track.Deleted)
	if err == nil {
		return
	}
	// Duplicate key: this actor already has a track with this media hash
	if isDuplicateKey(err) {
		isNew = false
		err = nil
		return
	}
	return
}

const trackFields = `id, created_at, actor_id, iri, title, description, published, media_url, media_type, media_hash, deleted`

func scanTrack(row interface{ Scan(...any) error }) (*Track, error) {
	var res Track
	err := row.Scan(&res.Id, &res.CreatedAt, &res.ActorId, &res.Iri, &res.Title, &res.Description,
		&res.Published, &res.MediaUrl, &res.MediaType, &res.MediaHash, &res.Deleted)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) GetTrackByIri(iri string) (*Track, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+trackFields+` FROM tracks WHERE iri=?`, iri)
	res, err := scanTrack(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) UpdateTrack(iri, title, description string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE tracks SET title=?, description=? WHERE iri=?`, title, description, iri)
	return err
}

func (repo *Repo) SetTrackDeleted(iri string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE tracks SET deleted=1 WHERE iri=?`, iri)
	return err
}

func (repo *Repo) DeleteTracksByActor(actorId int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE tracks SET deleted=1 WHERE actor_id=?`, actorId)
	return err
}

func (repo *Repo) GetTracksOf(actorId, maxCount int) ([]*Track, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+trackFields+` FROM tracks
		WHERE actor_id=? AND deleted=0 ORDER BY published DESC LIMIT ?`, actorId, maxCount)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*Track, 0, maxCount)
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) AddDeliverQueueItem(dqi *DeliverQueueItem) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO deliver_queue (sending_user, to_inbox, created_at, activity_iri, payload, attempts)
		VALUES(?, ?, ?, ?, ?, ?)`,
		dqi.SendingUser, dqi.ToInbox, dqi.CreatedAt, dqi.ActivityIri, dqi.Payload, dqi.Attempts)
	return err
}

func (repo *Repo) GetDeliverQueueItems(aboveId, maxCount int) ([]*DeliverQueueItem, int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var qlen int
	row := repo.db.QueryRow(`SELECT COUNT(*) FROM deliver_queue`)
	if err := row.Scan(&qlen); err != nil {
		return nil, 0, err
	}

	rows, err := repo.db.Query(`SELECT id, sending_user, to_inbox, created_at, activity_iri, payload, attempts
		FROM deliver_queue WHERE id>? ORDER BY id ASC LIMIT ?`, aboveId, maxCount)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	res := make([]*DeliverQueueItem, 0, maxCount)
	for rows.Next() {
		dqi := DeliverQueueItem{}
		err = rows.Scan(&dqi.Id, &dqi.SendingUser, &dqi.ToInbox, &dqi.CreatedAt,
			&dqi.ActivityIri, &dqi.Payload, &dqi.Attempts)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, &dqi)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return res, qlen, nil
}

func (repo *Repo) UpdateDeliverAttempts(id, attempts int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE deliver_queue SET attempts=? WHERE id=?`, attempts, id)
	return err
}

func (repo *Repo) DeleteDeliverQueueItem(id int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM deliver_queue WHERE id=?`, id)
	return err
}
