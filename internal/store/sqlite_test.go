package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ykvlv/birthday-bot/internal/domain"
)

func openTestRepo(t *testing.T) *SQLiteRepo {
	t.Helper()
	repo, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUpsertProfile_Idempotent(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	chat := int64(100)
	p := &domain.Profile{UserID: 1, Name: "Alice", BirthDate: testDate(1990, time.May, 15), ChatID: &chat}
	if err := repo.UpsertProfile(ctx, p); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.UpsertProfile(ctx, p); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.GetProfile(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.UserID != p.UserID || got.Name != p.Name ||
		!got.BirthDate.Equal(p.BirthDate) || got.ChatID == nil || *got.ChatID != chat {
		t.Fatalf("want %+v, got %+v", p, got)
	}
}

func TestUpsertProfile_NilChatPreservesStored(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	chat := int64(200)
	if err := repo.UpsertProfile(ctx, &domain.Profile{
		UserID: 2, Name: "Bob", BirthDate: testDate(1985, time.July, 4), ChatID: &chat,
	}); err != nil {
		t.Fatalf("upsert with chat: %v", err)
	}

	// A later upsert without a chat must not erase the stored one.
	if err := repo.UpsertProfile(ctx, &domain.Profile{
		UserID: 2, Name: "Bob", BirthDate: testDate(1985, time.July, 4),
	}); err != nil {
		t.Fatalf("upsert without chat: %v", err)
	}

	got, err := repo.GetProfile(ctx, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ChatID == nil || *got.ChatID != chat {
		t.Fatalf("chat id not preserved: %+v", got)
	}
}

func TestGetProfile_AbsentIsNil(t *testing.T) {
	repo := openTestRepo(t)

	got, err := repo.GetProfile(context.Background(), 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("want nil for absent profile, got %+v", got)
	}
	if got.State() != domain.StateEmpty {
		t.Fatal("absent profile must derive StateEmpty")
	}
}

func TestDeleteProfile_CascadesToLiveMessage(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	chat := int64(300)
	if err := repo.UpsertProfile(ctx, &domain.Profile{
		UserID: 3, Name: "Carol", BirthDate: testDate(2000, time.January, 1), ChatID: &chat,
	}); err != nil {
		t.Fatalf("upsert profile: %v", err)
	}
	if err := repo.UpsertLiveMessage(ctx, &domain.LiveMessage{UserID: 3, ChatID: chat, MessageID: 77}); err != nil {
		t.Fatalf("upsert live message: %v", err)
	}

	if err := repo.DeleteProfile(ctx, 3); err != nil {
		t.Fatalf("delete profile: %v", err)
	}

	msgs, err := repo.ListLiveMessages(ctx)
	if err != nil {
		t.Fatalf("list live messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("registration survived profile reset: %+v", msgs)
	}
}

func TestListLiveMessages_JoinsBirthDate(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	chat := int64(400)
	birth := testDate(1992, time.February, 29)
	if err := repo.UpsertProfile(ctx, &domain.Profile{
		UserID: 4, Name: "Dave", BirthDate: birth, ChatID: &chat,
	}); err != nil {
		t.Fatalf("upsert profile: %v", err)
	}
	if err := repo.UpsertLiveMessage(ctx, &domain.LiveMessage{UserID: 4, ChatID: chat, MessageID: 5}); err != nil {
		t.Fatalf("upsert live message: %v", err)
	}
	// Re-registering moves the pointer to the newer message.
	if err := repo.UpsertLiveMessage(ctx, &domain.LiveMessage{UserID: 4, ChatID: chat, MessageID: 9}); err != nil {
		t.Fatalf("re-upsert live message: %v", err)
	}

	msgs, err := repo.ListLiveMessages(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("want one registration, got %d", len(msgs))
	}
	m := msgs[0]
	if m.MessageID != 9 || m.ChatID != chat || !m.BirthDate.Equal(birth) {
		t.Fatalf("unexpected registration: %+v", m)
	}
}

func TestListNotifiable_SkipsChatlessProfiles(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	chat := int64(500)
	if err := repo.UpsertProfile(ctx, &domain.Profile{
		UserID: 5, Name: "Eve", BirthDate: testDate(1995, time.March, 3), ChatID: &chat,
	}); err != nil {
		t.Fatalf("upsert notifiable: %v", err)
	}
	// Mid-onboarding profile: date stored, no chat yet.
	if err := repo.UpsertProfile(ctx, &domain.Profile{
		UserID: 6, BirthDate: testDate(1999, time.September, 9),
	}); err != nil {
		t.Fatalf("upsert chatless: %v", err)
	}

	got, err := repo.ListNotifiable(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].UserID != 5 {
		t.Fatalf("want only user 5, got %+v", got)
	}
}
