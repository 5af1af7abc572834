package redis

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// KeyPrefixBookmark is the prefix for bookmark record keys
	KeyPrefixBookmark = "barky:bookmark:"
	// KeyAllBookmarks is the set of all stored bookmark IDs
	KeyAllBookmarks = "barky:bookmarks:all"
	// KeyBookmarkSeq is the counter used to assign IDs
	KeyBookmarkSeq = "barky:bookmarks:seq"
)

// BookmarkKey returns the Redis key for a bookmark record
func BookmarkKey(id int64) string {
	return KeyPrefixBookmark + strconv.FormatInt(id, 10)
}

// ParseMemberID converts a member of KeyAllBookmarks back into an ID.
func ParseMemberID(member string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(member), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bookmark member %q: %w", member, err)
	}
	return id, nil
}
