package shared

import (
	"fmt"
	"strconv"
)

const ActivityPublic = "https://www.w3.org/ns/activitystreams#Public"

// IdBuilder derives all IRIs this server mints from the configured host.
type IdBuilder struct {
	Host string
}

func (idb *IdBuilder) BaseUrl() string {
	return fmt.Sprintf("https://%s", idb.Host)
}

func (idb *IdBuilder) SharedInbox() string {
	return fmt.Sprintf("https://%s/inbox", idb.Host)
}

func (idb *IdBuilder) UserUrl(user string) string {
	return fmt.Sprintf("https://%s/user/%s", idb.Host, user)
}

func (idb *IdBuilder) UserKeyId(user string) string {
	return fmt.Sprintf("https://%s/user/%s#main-key", idb.Host, user)
}

func (idb *IdBuilder) UserInbox(user string) string {
	return fmt.Sprintf("https://%s/user/%s/inbox", idb.Host, user)
}

func (idb *IdBuilder) UserOutbox(user string) string {
	return fmt.Sprintf("https://%s/user/%s/outbox", idb.Host, user)
}

func (idb *IdBuilder) UserFollowers(user string) string {
	return fmt.Sprintf("https://%s/user/%s/followers", idb.Host, user)
}

func (idb *IdBuilder) UserFollowings(user string) string {
	return fmt.Sprintf("https://%s/user/%s/followings", idb.Host, user)
}

func (idb *IdBuilder) UserFeed(user string) string {
	return fmt.Sprintf("https://%s/user/%s/feed.rss", idb.Host, user)
}

func (idb *IdBuilder) ActivityUrl(id uint64) string {
	idStr := strconv.FormatUint(id, 10)
	return fmt.Sprintf("https://%s/outbox/%s", idb.Host, idStr)
}

func (idb *IdBuilder) ActivityObjectUrl(id uint64) string {
	idStr := strconv.FormatUint(id, 10)
	return fmt.Sprintf("https://%s/outbox/%s/activity", idb.Host, idStr)
}

func (idb *IdBuilder) CollectionPage(collectionUrl string, page int) string {
	return fmt.Sprintf("%s?page=%d", collectionUrl, page)
}
