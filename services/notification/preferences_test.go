package notification

import (
	"testing"
	"time"

	"farmmarket/models"
)

func TestShouldSendNilPreferences(t *testing.T) {
	// No materialized record means everything goes through.
	if !ShouldSend(nil, models.ChannelEmail, models.CategoryMarketing) {
		t.Fatal("expected send allowed with nil preferences")
	}
	if !ShouldSend(nil, models.ChannelPush, models.CategoryOrder) {
		t.Fatal("expected send allowed with nil preferences")
	}
}

func TestShouldSendGlobalFlagWins(t *testing.T) {
	prefs := models.DefaultNotificationPreferences("u1")
	prefs.EmailEnabled = false
	prefs.EmailOrders = true

	if ShouldSend(prefs, models.ChannelEmail, models.CategoryOrder) {
		t.Fatal("disabled channel must block even when the category flag is on")
	}
	// Other channels are unaffected.
	if !ShouldSend(prefs, models.ChannelInApp, models.CategoryOrder) {
		t.Fatal("in-app should still be allowed")
	}
}

func TestShouldSendCategoryFlag(t *testing.T) {
	prefs := models.DefaultNotificationPreferences("u1")
	prefs.InAppProducts = false

	if ShouldSend(prefs, models.ChannelInApp, models.CategoryProduct) {
		t.Fatal("category flag off must block")
	}
	if !ShouldSend(prefs, models.ChannelInApp, models.CategoryOrder) {
		t.Fatal("other categories unaffected")
	}
}

func TestShouldSendDefaults(t *testing.T) {
	prefs := models.DefaultNotificationPreferences("u1")

	cases := []struct {
		channel  models.NotificationChannel
		category models.NotificationCategory
		want     bool
	}{
		{models.ChannelEmail, models.CategoryOrder, true},
		{models.ChannelEmail, models.CategoryMarketing, false},
		{models.ChannelPush, models.CategoryMarketing, false},
		{models.ChannelPush, models.CategoryProduct, false},
		{models.ChannelPush, models.CategoryOrder, true},
		{models.ChannelInApp, models.CategoryMarketing, false},
		{models.ChannelInApp, models.CategorySystem, true},
	}
	for _, tc := range cases {
		if got := ShouldSend(prefs, tc.channel, tc.category); got != tc.want {
			t.Errorf("ShouldSend(%s, %s) = %v, want %v", tc.channel, tc.category, got, tc.want)
		}
	}
}

func TestShouldSendUnknownCategory(t *testing.T) {
	prefs := models.DefaultNotificationPreferences("u1")
	if !ShouldSend(prefs, models.ChannelEmail, models.NotificationCategory("mystery")) {
		t.Fatal("categories without a dedicated flag must be allowed")
	}
}

func TestIsQuietHours(t *testing.T) {
	at := func(hhmm string) time.Time {
		parsed, err := time.Parse("15:04", hhmm)
		if err != nil {
			t.Fatalf("bad test time %q: %v", hhmm, err)
		}
		return time.Date(2026, 3, 10, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	}

	quiet := models.DefaultNotificationPreferences("u1")
	quiet.QuietHoursEnabled = true
	quiet.QuietHoursStart = "22:00"
	quiet.QuietHoursEnd = "07:00"

	cases := []struct {
		now  string
		want bool
	}{
		{"23:30", true}, // after start, before midnight
		{"03:00", true}, // after midnight, before end
		{"07:00", true}, // boundary inclusive
		{"22:00", true}, // boundary inclusive
		{"12:00", false},
		{"21:59", false},
	}
	for _, tc := range cases {
		if got := IsQuietHours(quiet, at(tc.now)); got != tc.want {
			t.Errorf("IsQuietHours at %s = %v, want %v", tc.now, got, tc.want)
		}
	}
}

func TestIsQuietHoursSameDayWindow(t *testing.T) {
	prefs := models.DefaultNotificationPreferences("u1")
	prefs.QuietHoursEnabled = true
	prefs.QuietHoursStart = "13:00"
	prefs.QuietHoursEnd = "14:00"

	inside := time.Date(2026, 3, 10, 13, 30, 0, 0, time.UTC)
	outside := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	if !IsQuietHours(prefs, inside) {
		t.Fatal("13:30 should fall inside a 13:00-14:00 window")
	}
	if IsQuietHours(prefs, outside) {
		t.Fatal("15:00 should fall outside a 13:00-14:00 window")
	}
}

func TestIsQuietHoursDisabledOrMalformed(t *testing.T) {
	prefs := models.DefaultNotificationPreferences("u1")
	prefs.QuietHoursStart = "22:00"
	prefs.QuietHoursEnd = "07:00"

	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	if IsQuietHours(prefs, now) {
		t.Fatal("disabled quiet hours must never match")
	}

	prefs.QuietHoursEnabled = true
	prefs.QuietHoursStart = "not-a-time"
	if IsQuietHours(prefs, now) {
		t.Fatal("unparseable window must be treated as no quiet hours")
	}

	if IsQuietHours(nil, now) {
		t.Fatal("nil preferences have no quiet hours")
	}
}
