package reminder

import (
	"fmt"
	"hash/fnv"
)

// Jitter derives a minute offset in [-maxMinutes, +maxMinutes] from an
// FNV-1a hash of the session id and interval. The same inputs always
// produce the same offset, so rescheduling the same session lands the
// reminders on the same minute while different sessions spread out.
func Jitter(sessionID string, intervalDays, maxMinutes int) int {
	if maxMinutes <= 0 {
		return 0
	}
	h := fnv.New32a()
	fmt.Fprintf(h, "%s:%d", sessionID, intervalDays)
	span := uint32(2*maxMinutes + 1)
	return int(h.Sum32()%span) - maxMinutes
}
