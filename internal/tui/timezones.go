package tui

import "time"

// TimezoneOption is one entry of the timezone panel.
type TimezoneOption struct {
	Label string
	Name  string // IANA name, empty for local time
}

// TimezoneOptions lists the zones offered by the timezone panel. Local
// first, then UTC, then common operations regions.
func TimezoneOptions() []TimezoneOption {
	return []TimezoneOption{
		{Label: "Local", Name: ""},
		{Label: "UTC", Name: "UTC"},
		{Label: "US East", Name: "America/New_York"},
		{Label: "US West", Name: "America/Los_Angeles"},
		{Label: "Europe", Name: "Europe/Berlin"},
		{Label: "India", Name: "Asia/Kolkata"},
		{Label: "Singapore", Name: "Asia/Singapore"},
		{Label: "Japan", Name: "Asia/Tokyo"},
		{Label: "Australia", Name: "Australia/Sydney"},
	}
}

// loadLocation resolves a timezone option, falling back to local time
// when the zone database does not know the name.
func loadLocation(opt TimezoneOption) *time.Location {
	if opt.Name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(opt.Name)
	if err != nil {
		return time.Local
	}
	return loc
}

// timezoneIndex returns the option index for an IANA name, or 0.
func timezoneIndex(name string) int {
	for i, opt := range TimezoneOptions() {
		if opt.Name == name {
			return i
		}
	}
	return 0
}
