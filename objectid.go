package storefront

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"time"
)

// Object ids are the store's primary key format: 24 hex characters,
// a 4 byte unix timestamp followed by 8 random bytes. The timestamp
// prefix keeps insertion order roughly sortable.

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NewObjectID generates a fresh 24 character hex id.
func NewObjectID() string {
	var raw [12]byte
	binary.BigEndian.PutUint32(raw[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(raw[4:]); err != nil {
		// crypto/rand never fails on supported platforms; if it does
		// there is nothing sensible to fall back to.
		panic(err)
	}
	return hex.EncodeToString(raw[:])
}

// IsObjectID reports whether s is a well formed 24 character hex id.
func IsObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}
