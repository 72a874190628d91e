package prefs

import "time"

// ViewPrefs holds per-instance dashboard preferences: the last time
// range and pinned period used while viewing an instance, restored the
// next time its metrics screen opens.
type ViewPrefs struct {
	ID         int64
	Service    string
	InstanceID string

	// TimeRange is the label of the last selected range ("3 hours").
	TimeRange string

	// PeriodSeconds is the pinned period, 0 when the period was left
	// on auto.
	PeriodSeconds int

	// Timezone is the IANA zone selected for axis labels, empty for
	// local time.
	Timezone string

	UpdatedAt time.Time
}
