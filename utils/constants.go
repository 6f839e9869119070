// File: utils/constants.go
package utils

import "time"

// CalendarCachePrefix is the prefix used for Redis calendar-grid cache keys.
const CalendarCachePrefix = "calendar:"

// DayFlagsCachePrefix is the prefix used for Redis day-flags cache keys.
const DayFlagsCachePrefix = "dayflags:"

// DayScheduleCachePrefix is the prefix used for Redis day-schedule cache keys.
const DayScheduleCachePrefix = "dayslots:"

// AvailabilityCacheTTL is the time-to-live for cached availability reads.
// Short on purpose: cached grids are advisory and every booking write
// re-checks conflicts against the store.
const AvailabilityCacheTTL = 60 * time.Second
