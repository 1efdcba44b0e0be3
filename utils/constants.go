package utils

import "time"

// VendorCachePrefix is the prefix used for Redis vendor-resolution cache keys.
const VendorCachePrefix = "vendor:"

// VendorCacheTTL is the time-to-live for vendor-resolution cache entries.
const VendorCacheTTL = 10 * time.Minute

// SessionKeyPrefix namespaces wizard session blobs in the session cache DB.
const SessionKeyPrefix = "onboarding:"
