package domain

import "time"

type Link struct {
	ID        string
	TargetURL string
	CreatedAt time.Time
}

// Visit captures the request headers recorded for a single redirect.
// Empty fields mean the header was absent.
type Visit struct {
	Referer   string
	UserAgent string
}

// CountedStatistic is a grouped visit count for one link. Referer and
// UserAgent are nil when the recorded header was absent.
type CountedStatistic struct {
	Amount    int64
	Referer   *string
	UserAgent *string
}
