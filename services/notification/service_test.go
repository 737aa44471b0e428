package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	notificationRepo "farmmarket/database/repository/notification"
	"farmmarket/models"
	"farmmarket/services/realtime"

	"github.com/google/uuid"
)

// ---- in-memory fakes ----

type fakeUsers struct {
	users map[string]*models.User
}

func (f *fakeUsers) GetUserByID(id string) (*models.User, error) {
	return f.users[id], nil
}

type fakeNotificationRepo struct {
	mu      sync.Mutex
	records map[string]*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{records: make(map[string]*models.Notification)}
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *n
	f.records[n.ID] = &cp
	return nil
}

func (f *fakeNotificationRepo) GetByID(id string) (*models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n, ok := f.records[id]; ok {
		cp := *n
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeNotificationRepo) MarkSent(id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.records[id]
	if !ok {
		return errors.New("not found")
	}
	n.Status = models.StatusSent
	n.SentAt = &at
	return nil
}

func (f *fakeNotificationRepo) MarkFailed(id string, reason string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.records[id]
	if !ok {
		return errors.New("not found")
	}
	n.Status = models.StatusFailed
	n.ErrorMessage = reason
	n.SentAt = &at
	n.RetryCount++
	return nil
}

func (f *fakeNotificationRepo) MarkRead(id, userID string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.records[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	n.Status = models.StatusRead
	n.ReadAt = &at
	return true, nil
}

func (f *fakeNotificationRepo) ListByUser(userID string, filter notificationRepo.NotificationFilter) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.records {
		if n.UserID != userID {
			continue
		}
		if filter.Channel != "" && n.Channel != filter.Channel {
			continue
		}
		if filter.Category != "" && n.Category != filter.Category {
			continue
		}
		if filter.UnreadOnly && n.Status == models.StatusRead {
			continue
		}
		out = append(out, *n)
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnreadInApp(userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, n := range f.records {
		if n.UserID == userID && n.Channel == models.ChannelInApp && n.Status != models.StatusRead {
			count++
		}
	}
	return count, nil
}

type fakeTemplateRepo struct {
	templates map[string]*models.NotificationTemplate
}

func (f *fakeTemplateRepo) GetActiveByName(name string) (*models.NotificationTemplate, error) {
	t, ok := f.templates[name]
	if !ok || !t.IsActive {
		return nil, nil
	}
	return t, nil
}

func (f *fakeTemplateRepo) UpsertByName(t *models.NotificationTemplate) error {
	if f.templates == nil {
		f.templates = make(map[string]*models.NotificationTemplate)
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	f.templates[t.Name] = t
	return nil
}

type fakePrefRepo struct {
	mu    sync.Mutex
	prefs map[string]*models.NotificationPreferences
}

func (f *fakePrefRepo) GetByUserID(userID string) (*models.NotificationPreferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.prefs[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePrefRepo) Save(p *models.NotificationPreferences) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.prefs == nil {
		f.prefs = make(map[string]*models.NotificationPreferences)
	}
	cp := *p
	f.prefs[p.UserID] = &cp
	return nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens []models.DeviceToken
}

func (f *fakeTokenRepo) DeactivateByToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tokens {
		if f.tokens[i].Token == token {
			f.tokens[i].IsActive = false
		}
	}
	return nil
}

func (f *fakeTokenRepo) Create(t *models.DeviceToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, *t)
	return nil
}

func (f *fakeTokenRepo) ListActiveByUser(userID string) ([]models.DeviceToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.DeviceToken
	for _, t := range f.tokens {
		if t.UserID == userID && t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeEmail struct {
	mu   sync.Mutex
	sent []string
	ok   bool
}

func (f *fakeEmail) Send(to, subject, body string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return f.ok
}

type fakePush struct {
	mu   sync.Mutex
	sent []string
	ok   bool
}

func (f *fakePush) Send(token, platform, title, body string, data map[string]string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, token)
	return f.ok
}

type fakePublisher struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (f *fakePublisher) Publish(ctx context.Context, userID string, event realtime.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

// ---- fixture ----

type fixture struct {
	svc    *DefaultNotificationService
	repo   *fakeNotificationRepo
	prefs  *fakePrefRepo
	tokens *fakeTokenRepo
	email  *fakeEmail
	push   *fakePush
	rt     *fakePublisher
}

func newFixture() *fixture {
	f := &fixture{
		repo:   newFakeNotificationRepo(),
		prefs:  &fakePrefRepo{},
		tokens: &fakeTokenRepo{},
		email:  &fakeEmail{ok: true},
		push:   &fakePush{ok: true},
		rt:     &fakePublisher{},
	}
	templates := &fakeTemplateRepo{}
	for _, tmpl := range DefaultTemplates() {
		t := tmpl
		templates.UpsertByName(&t)
	}
	f.svc = &DefaultNotificationService{
		Users: &fakeUsers{users: map[string]*models.User{
			"u1": {ID: "u1", Name: "Amina", Email: "amina@example.com", Role: "buyer"},
			"u2": {ID: "u2", Name: "Kofi", Email: "kofi@example.com", Role: "farmer"},
		}},
		Repo:      f.repo,
		Templates: templates,
		Prefs:     f.prefs,
		Tokens:    f.tokens,
		Email:     f.email,
		Push:      f.push,
		Realtime:  f.rt,
	}
	return f
}

// waitForTerminal polls until the background delivery goroutine settles the
// record out of pending.
func waitForTerminal(t *testing.T, repo *fakeNotificationRepo, id string) *models.Notification {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		n, _ := repo.GetByID(id)
		if n != nil && n.Status != models.StatusPending {
			return n
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("notification never left pending")
	return nil
}

// ---- tests ----

func TestSendNotificationReturnsPendingRecord(t *testing.T) {
	f := newFixture()

	n, err := f.svc.SendNotification(context.Background(), "u1", SendInput{
		Channel:  models.ChannelEmail,
		Category: models.CategoryOrder,
		Title:    "Order shipped",
		Message:  "Your order is on the way",
	})
	if err != nil {
		t.Fatal(err)
	}
	if n == nil {
		t.Fatal("expected a record")
	}
	if n.Status != models.StatusPending {
		t.Errorf("status = %s, want pending at return time", n.Status)
	}
	if n.Recipient != "amina@example.com" {
		t.Errorf("recipient = %q, want the user's email", n.Recipient)
	}

	final := waitForTerminal(t, f.repo, n.ID)
	if final.Status != models.StatusSent {
		t.Errorf("final status = %s, want sent", final.Status)
	}
	if final.SentAt == nil {
		t.Error("sentAt not stamped")
	}
}

func TestSendNotificationUnknownUser(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SendNotification(context.Background(), "ghost", SendInput{
		Channel:  models.ChannelEmail,
		Category: models.CategoryOrder,
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestSendNotificationBlockedByPreferences(t *testing.T) {
	f := newFixture()
	prefs := models.DefaultNotificationPreferences("u1")
	prefs.EmailEnabled = false
	f.prefs.Save(prefs)

	n, err := f.svc.SendNotification(context.Background(), "u1", SendInput{
		Channel:  models.ChannelEmail,
		Category: models.CategoryOrder,
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != nil {
		t.Fatal("blocked send must return nil record")
	}
	if len(f.repo.records) != 0 {
		t.Fatal("blocked send must not persist anything")
	}
}

func TestSendNotificationRendersTemplate(t *testing.T) {
	f := newFixture()

	n, err := f.svc.SendNotification(context.Background(), "u1", SendInput{
		Channel:      models.ChannelPush,
		Category:     models.CategoryOrder,
		Title:        "ignored",
		Message:      "ignored",
		TemplateName: "order_status_update",
		TemplateData: map[string]any{
			"orderId":       "ORD-9",
			"farmerName":    "Kofi",
			"statusName":    "confirmed",
			"statusMessage": "See you soon.",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n.Title != "Order #ORD-9 - confirmed" {
		t.Errorf("title = %q", n.Title)
	}
	if n.Message != "Your order from Kofi is now confirmed. See you soon." {
		t.Errorf("message = %q", n.Message)
	}
	if n.TemplateID == "" {
		t.Error("templateID not recorded")
	}
}

func TestSendNotificationTemplateSoftFail(t *testing.T) {
	f := newFixture()

	// Missing statusName forces the renderer onto the fallback path.
	n, err := f.svc.SendNotification(context.Background(), "u1", SendInput{
		Channel:      models.ChannelInApp,
		Category:     models.CategoryOrder,
		TemplateName: "order_status_update",
		TemplateData: map[string]any{"orderId": "ORD-9"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n == nil {
		t.Fatal("soft-fail must still create the notification")
	}
	if n.Title != "Notification" {
		t.Errorf("title = %q, want fallback subject", n.Title)
	}
}

func TestDeliverEmailFailure(t *testing.T) {
	f := newFixture()
	f.email.ok = false

	n := &models.Notification{
		ID:        "n1",
		UserID:    "u1",
		Channel:   models.ChannelEmail,
		Status:    models.StatusPending,
		Recipient: "amina@example.com",
	}
	f.repo.Create(n)

	f.svc.deliver(n)

	stored, _ := f.repo.GetByID("n1")
	if stored.Status != models.StatusFailed {
		t.Errorf("status = %s, want failed", stored.Status)
	}
	if stored.RetryCount != 1 {
		t.Errorf("retryCount = %d, want 1", stored.RetryCount)
	}
	if stored.ErrorMessage == "" {
		t.Error("errorMessage not recorded")
	}
	if stored.SentAt == nil {
		t.Error("sentAt is stamped on failed attempts too")
	}
}

func TestDeliverPushNoTokensFails(t *testing.T) {
	f := newFixture()

	n := &models.Notification{
		ID:      "n1",
		UserID:  "u1",
		Channel: models.ChannelPush,
		Status:  models.StatusPending,
	}
	f.repo.Create(n)

	f.svc.deliver(n)

	stored, _ := f.repo.GetByID("n1")
	if stored.Status != models.StatusFailed {
		t.Errorf("status = %s, want failed with no registered tokens", stored.Status)
	}
}

func TestDeliverPushFansOutToAllTokens(t *testing.T) {
	f := newFixture()
	f.tokens.Create(&models.DeviceToken{ID: "t1", UserID: "u1", Token: "tok-a", Platform: "android", IsActive: true})
	f.tokens.Create(&models.DeviceToken{ID: "t2", UserID: "u1", Token: "tok-b", Platform: "ios", IsActive: true})
	f.tokens.Create(&models.DeviceToken{ID: "t3", UserID: "u1", Token: "tok-c", Platform: "android", IsActive: false})
	f.push.ok = false // per-token outcomes do not affect the record

	n := &models.Notification{
		ID:      "n1",
		UserID:  "u1",
		Channel: models.ChannelPush,
		Status:  models.StatusPending,
	}
	f.repo.Create(n)

	f.svc.deliver(n)

	if len(f.push.sent) != 2 {
		t.Errorf("pushed to %d tokens, want 2 active", len(f.push.sent))
	}
	stored, _ := f.repo.GetByID("n1")
	if stored.Status != models.StatusSent {
		t.Errorf("status = %s, want sent when any active token exists", stored.Status)
	}
}

func TestDeliverInAppAlwaysSent(t *testing.T) {
	f := newFixture()

	n := &models.Notification{
		ID:      "n1",
		UserID:  "u1",
		Channel: models.ChannelInApp,
		Status:  models.StatusPending,
	}
	f.repo.Create(n)

	f.svc.deliver(n)

	stored, _ := f.repo.GetByID("n1")
	if stored.Status != models.StatusSent {
		t.Errorf("status = %s, want sent", stored.Status)
	}
}

func TestInAppSendPublishesRealtimeEvent(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SendNotification(context.Background(), "u1", SendInput{
		Channel:  models.ChannelInApp,
		Category: models.CategoryOrder,
		Title:    "hello",
	})
	if err != nil {
		t.Fatal(err)
	}

	f.rt.mu.Lock()
	defer f.rt.mu.Unlock()
	if len(f.rt.events) != 1 {
		t.Fatalf("published %d events, want 1", len(f.rt.events))
	}
	if f.rt.events[0].Type != realtime.EventNewNotification {
		t.Errorf("event type = %q", f.rt.events[0].Type)
	}
}

func TestMarkAsReadOwnerScoped(t *testing.T) {
	f := newFixture()
	f.repo.Create(&models.Notification{
		ID: "n1", UserID: "u1", Channel: models.ChannelInApp, Status: models.StatusSent,
	})

	ok, err := f.svc.MarkAsRead(context.Background(), "n1", "u2")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("other users must not be able to mark the notification read")
	}

	ok, err = f.svc.MarkAsRead(context.Background(), "n1", "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("owner must be able to mark the notification read")
	}
	stored, _ := f.repo.GetByID("n1")
	if stored.Status != models.StatusRead || stored.ReadAt == nil {
		t.Error("record not flipped to read")
	}
}

func TestUnreadCountIsInAppOnly(t *testing.T) {
	f := newFixture()
	f.repo.Create(&models.Notification{ID: "a", UserID: "u1", Channel: models.ChannelInApp, Status: models.StatusSent})
	f.repo.Create(&models.Notification{ID: "b", UserID: "u1", Channel: models.ChannelInApp, Status: models.StatusRead})
	f.repo.Create(&models.Notification{ID: "c", UserID: "u1", Channel: models.ChannelEmail, Status: models.StatusSent})
	f.repo.Create(&models.Notification{ID: "d", UserID: "u2", Channel: models.ChannelInApp, Status: models.StatusSent})

	count, err := f.svc.GetUnreadCount(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestGetPreferencesMaterializesDefaults(t *testing.T) {
	f := newFixture()

	prefs, err := f.svc.GetPreferences(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if prefs == nil || prefs.UserID != "u1" {
		t.Fatal("defaults not materialized")
	}
	if prefs.EmailMarketing || prefs.PushProducts {
		t.Error("marketing and push-products default off")
	}
	if !prefs.EmailOrders {
		t.Error("order email defaults on")
	}

	if stored, _ := f.prefs.GetByUserID("u1"); stored == nil {
		t.Error("materialized defaults must be persisted")
	}
}

func TestUpdatePreferencesPartialMerge(t *testing.T) {
	f := newFixture()
	off := false
	start := "22:00"

	prefs, err := f.svc.UpdatePreferences(context.Background(), "u1", models.PreferencesUpdate{
		EmailOrders:     &off,
		QuietHoursStart: &start,
	})
	if err != nil {
		t.Fatal(err)
	}
	if prefs.EmailOrders {
		t.Error("emailOrders should be off")
	}
	if prefs.QuietHoursStart != "22:00" {
		t.Errorf("quietHoursStart = %q", prefs.QuietHoursStart)
	}
	// Untouched fields keep their defaults.
	if !prefs.EmailAccount || !prefs.InAppOrders {
		t.Error("absent fields must keep stored values")
	}
}

func TestRegisterDeviceTokenDeactivatesPrior(t *testing.T) {
	f := newFixture()

	first, err := f.svc.RegisterDeviceToken(context.Background(), "u1", "tok-shared", "android")
	if err != nil {
		t.Fatal(err)
	}
	if !first.IsActive {
		t.Fatal("new registration must be active")
	}

	// Same handset changes owner.
	if _, err := f.svc.RegisterDeviceToken(context.Background(), "u2", "tok-shared", "android"); err != nil {
		t.Fatal(err)
	}

	u1Tokens, _ := f.tokens.ListActiveByUser("u1")
	if len(u1Tokens) != 0 {
		t.Error("previous owner's registration must be deactivated")
	}
	u2Tokens, _ := f.tokens.ListActiveByUser("u2")
	if len(u2Tokens) != 1 {
		t.Error("new owner's registration must be active")
	}
}

func TestSendBulkSkipsFailures(t *testing.T) {
	f := newFixture()
	prefs := models.DefaultNotificationPreferences("u2")
	prefs.InAppEnabled = false
	f.prefs.Save(prefs)

	notifs, err := f.svc.SendBulkNotification(context.Background(), []string{"u1", "ghost", "u2"}, SendInput{
		Channel:  models.ChannelInApp,
		Category: models.CategoryOrder,
		Title:    "bulk",
	})
	if err != nil {
		t.Fatal(err)
	}
	// ghost errors out, u2 is blocked; only u1 gets a record.
	if len(notifs) != 1 {
		t.Fatalf("created %d records, want 1", len(notifs))
	}
	if notifs[0].UserID != "u1" {
		t.Errorf("record for %s, want u1", notifs[0].UserID)
	}
}
