package config

import (
	"os"
	"strconv"
	"time"
)

const (
	timezoneEnv              = "TT_TIMEZONE"
	reminderLeadMinutesEnv   = "REMINDER_LEAD_MINUTES"
	matchToleranceMinutesEnv = "MATCH_TOLERANCE_MINUTES"
	activityCacheSecondsEnv  = "ACTIVITY_CACHE_SECONDS"

	defaultReminderLeadMinutes   = 15
	defaultMatchToleranceMinutes = 45
	defaultActivityCacheSeconds  = 600
)

type ScheduleConfig struct {
	// Location is the zone local days are computed in. Defaults to the
	// process zone when TT_TIMEZONE is unset.
	Location *time.Location

	ReminderLead     time.Duration
	MatchTolerance   time.Duration
	ActivityCacheTTL time.Duration
}

func LoadScheduleConfig() (*ScheduleConfig, error) {
	loc := time.Local
	if v := os.Getenv(timezoneEnv); v != "" {
		parsed, err := time.LoadLocation(v)
		if err != nil {
			return nil, ErrInvalidTimezone
		}
		loc = parsed
	}

	reminderLead := defaultReminderLeadMinutes
	if v := os.Getenv(reminderLeadMinutesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			reminderLead = parsed
		}
	}

	matchTolerance := defaultMatchToleranceMinutes
	if v := os.Getenv(matchToleranceMinutesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			matchTolerance = parsed
		}
	}

	cacheSeconds := defaultActivityCacheSeconds
	if v := os.Getenv(activityCacheSecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cacheSeconds = parsed
		}
	}

	return &ScheduleConfig{
		Location:         loc,
		ReminderLead:     time.Duration(reminderLead) * time.Minute,
		MatchTolerance:   time.Duration(matchTolerance) * time.Minute,
		ActivityCacheTTL: time.Duration(cacheSeconds) * time.Second,
	}, nil
}
