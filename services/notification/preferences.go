package notification

import (
	"time"

	"farmmarket/models"
)

// ShouldSend decides whether a notification may go out on the given channel
// and category. A user with no materialized preference record gets every
// notification (fail-open). The channel's global flag always wins over the
// category-specific flag.
func ShouldSend(prefs *models.NotificationPreferences, channel models.NotificationChannel, category models.NotificationCategory) bool {
	if prefs == nil {
		return true
	}

	switch channel {
	case models.ChannelEmail:
		if !prefs.EmailEnabled {
			return false
		}
	case models.ChannelPush:
		if !prefs.PushEnabled {
			return false
		}
	case models.ChannelInApp:
		if !prefs.InAppEnabled {
			return false
		}
	}

	if flag, ok := categoryFlag(prefs, channel, category); ok {
		return flag
	}
	return true
}

// categoryFlag looks up the explicit (channel, category) toggle. The second
// return is false for combinations with no dedicated flag, which callers
// treat as allowed.
func categoryFlag(prefs *models.NotificationPreferences, channel models.NotificationChannel, category models.NotificationCategory) (bool, bool) {
	switch channel {
	case models.ChannelEmail:
		switch category {
		case models.CategoryOrder:
			return prefs.EmailOrders, true
		case models.CategoryProduct:
			return prefs.EmailProducts, true
		case models.CategoryAccount:
			return prefs.EmailAccount, true
		case models.CategoryMarketing:
			return prefs.EmailMarketing, true
		case models.CategorySystem:
			return prefs.EmailSystem, true
		}
	case models.ChannelPush:
		switch category {
		case models.CategoryOrder:
			return prefs.PushOrders, true
		case models.CategoryProduct:
			return prefs.PushProducts, true
		case models.CategoryAccount:
			return prefs.PushAccount, true
		case models.CategoryMarketing:
			return prefs.PushMarketing, true
		case models.CategorySystem:
			return prefs.PushSystem, true
		}
	case models.ChannelInApp:
		switch category {
		case models.CategoryOrder:
			return prefs.InAppOrders, true
		case models.CategoryProduct:
			return prefs.InAppProducts, true
		case models.CategoryAccount:
			return prefs.InAppAccount, true
		case models.CategoryMarketing:
			return prefs.InAppMarketing, true
		case models.CategorySystem:
			return prefs.InAppSystem, true
		}
	}
	return false, false
}

// IsQuietHours reports whether now falls inside the user's configured quiet
// window. Start and end are "HH:MM" local times; a window with start after
// end spans midnight.
func IsQuietHours(prefs *models.NotificationPreferences, now time.Time) bool {
	if prefs == nil || !prefs.QuietHoursEnabled {
		return false
	}
	if prefs.QuietHoursStart == "" || prefs.QuietHoursEnd == "" {
		return false
	}

	start, err := time.Parse("15:04", prefs.QuietHoursStart)
	if err != nil {
		return false
	}
	end, err := time.Parse("15:04", prefs.QuietHoursEnd)
	if err != nil {
		return false
	}

	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	nowMin := now.Hour()*60 + now.Minute()

	if startMin <= endMin {
		return startMin <= nowMin && nowMin <= endMin
	}
	// Quiet hours span midnight.
	return nowMin >= startMin || nowMin <= endMin
}
