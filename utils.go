package main

import "time"

func getTimeStamp() int64 {
	return time.Now().UTC().UnixNano()
}

func strrg_contains(rg []string, item string) bool {
	for _, i := range rg {
		if i == item {
			return true
		}
	}
	return false
}

// pct is the share of total as a percentage. A zero total happens when every
// ballot is exhausted; everyone displays as zero.
func pct(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
