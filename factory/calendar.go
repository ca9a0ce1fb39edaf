/*
Package factory provides JSON to holiday-calendar conversion.

PURPOSE:
  Converts JSON holiday-calendar definitions into vacation.Holiday records.
  This enables calendar configuration without code changes - admins can
  define national and regional holiday sets in JSON, and the factory
  produces validated records ready for the holiday store.

JSON SCHEMA:
  {
    "name": "Germany 2025",
    "holidays": [
      {"date": "2025-01-01", "name": "Neujahr", "scope": "national"},
      {"date": "2025-12-25", "name": "1. Weihnachtstag", "scope": "national"},
      {"date": "2025-08-15", "name": "Mariä Himmelfahrt",
       "scope": "regional", "region": "BY"}
    ]
  }

KEY FEATURES:
  - Validates dates (YYYY-MM-DD), scopes, and regional constraints
  - Ships built-in fixed-date national defaults for seeding
  - Region filtering for regional holiday sets

USAGE:
  calendar, err := factory.ParseCalendar(jsonString)
  for _, h := range calendar.Holidays {
      store.AddHoliday(ctx, h)
  }

SEE ALSO:
  - vacation/types.go: Holiday type and validation
  - api/scenarios.go: Uses the defaults when seeding demo data
*/
package factory

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/CychoGit/Urlaubsplaner-sub000/coverage"
	"github.com/CychoGit/Urlaubsplaner-sub000/vacation"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// CalendarJSON is the JSON representation of a holiday calendar.
type CalendarJSON struct {
	Name     string        `json:"name"`
	Holidays []HolidayJSON `json:"holidays"`
}

// HolidayJSON represents one holiday entry.
type HolidayJSON struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Name   string `json:"name"`
	Scope  string `json:"scope"`            // national | regional
	Region string `json:"region,omitempty"` // required for regional
}

// Calendar is the parsed, validated result.
type Calendar struct {
	Name     string
	Holidays []vacation.Holiday
}

// =============================================================================
// PARSING
// =============================================================================

// ParseCalendar converts a JSON calendar definition into validated holiday
// records.
func ParseCalendar(jsonStr string) (*Calendar, error) {
	var raw CalendarJSON
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("invalid calendar JSON: %w", err)
	}
	if len(raw.Holidays) == 0 {
		return nil, fmt.Errorf("calendar %q defines no holidays", raw.Name)
	}

	cal := &Calendar{Name: raw.Name}
	for i, h := range raw.Holidays {
		date, err := coverage.ParseDate(h.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday %d: bad date %q: %w", i, h.Date, err)
		}
		holiday := vacation.Holiday{
			Date:   date,
			Name:   h.Name,
			Scope:  vacation.HolidayScope(h.Scope),
			Region: h.Region,
		}
		if err := vacation.ValidateHoliday(holiday); err != nil {
			return nil, fmt.Errorf("holiday %d (%s): %w", i, h.Name, err)
		}
		cal.Holidays = append(cal.Holidays, holiday)
	}
	return cal, nil
}

// ForRegion returns the calendar's holidays applicable in one region:
// every national holiday plus the regional ones matching region.
func (c *Calendar) ForRegion(region string) []vacation.Holiday {
	var out []vacation.Holiday
	for _, h := range c.Holidays {
		if h.Scope == vacation.ScopeNational || h.Region == region {
			out = append(out, h)
		}
	}
	return out
}

// =============================================================================
// BUILT-IN DEFAULTS
// =============================================================================

// fixedNationalHolidays are the fixed-date German national holidays.
// Movable feasts (Easter-derived) are intentionally left to explicit
// calendar uploads; computing them here buys little and risks divergence
// from the official calendars organizations actually follow.
var fixedNationalHolidays = []struct {
	month time.Month
	day   int
	name  string
}{
	{time.January, 1, "Neujahr"},
	{time.May, 1, "Tag der Arbeit"},
	{time.October, 3, "Tag der Deutschen Einheit"},
	{time.December, 25, "1. Weihnachtstag"},
	{time.December, 26, "2. Weihnachtstag"},
}

// DefaultNationalHolidays returns the built-in fixed-date national holidays
// for one year.
func DefaultNationalHolidays(year int) []vacation.Holiday {
	out := make([]vacation.Holiday, 0, len(fixedNationalHolidays))
	for _, h := range fixedNationalHolidays {
		out = append(out, vacation.Holiday{
			Date:  coverage.NewDate(year, h.month, h.day),
			Name:  h.name,
			Scope: vacation.ScopeNational,
		})
	}
	return out
}
