package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"botscope/internal/cache"
	"botscope/internal/listing"
)

func encodeJSON(payload interface{}) ([]byte, error) {
	return json.Marshal(payload)
}

// listingCacheKey identifies a listing response by catalog version and every
// filter field echoed in the response.
func listingCacheKey(version string, state listing.FilterState) string {
	raw, _ := json.Marshal(state)
	sum := sha256.Sum256(raw)
	return cache.Key("bots", version, hex.EncodeToString(sum[:12]))
}
