// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// ListingSessionPrefix is the prefix for listing workflow sessions in Redis.
const ListingSessionPrefix = "listingSession:"

// ListingSessionTTL is how long an idle listing session is retained.
const ListingSessionTTL = 24 * time.Hour

// DraftPrefix is the prefix for persisted listing drafts in Redis.
const DraftPrefix = "draft:"

// DraftIndexPrefix is the prefix for the per-user draft index set.
const DraftIndexPrefix = "draftIndex:"
