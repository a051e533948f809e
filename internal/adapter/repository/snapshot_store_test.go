package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotrade/internal/domain/entity"
)

func TestFirstRunSeedsDemoData(t *testing.T) {
	dir := t.TempDir()

	store, err := NewSnapshotStore(dir)
	require.NoError(t, err)

	// Seed user and listing
	users := NewSnapshotUserRepository(store)
	demo, err := users.GetByUsername(context.Background(), "TraderPro")
	require.NoError(t, err)
	assert.InDelta(t, 4.8, demo.Rating, 0.001)
	assert.Equal(t, 24, demo.Deals)

	listings := NewSnapshotListingRepository(store)
	all, err := listings.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Dominus Empyreus", all[0].Title)
	assert.Equal(t, "TraderPro", all[0].Seller)

	// Seeding is persisted immediately
	_, err = os.Stat(filepath.Join(dir, snapshotFile))
	assert.NoError(t, err)
}

func TestSnapshotSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewSnapshotStore(dir)
	require.NoError(t, err)

	users := NewSnapshotUserRepository(store)
	require.NoError(t, users.Create(ctx, &entity.User{Username: "Alice", Password: "pw"}))

	chats := NewSnapshotChatRepository(store)
	chat := &entity.Chat{
		Participants: []string{"Alice", "TraderPro"},
		UnreadCount:  make(map[string]int),
	}
	require.NoError(t, chats.Create(ctx, chat))
	require.NoError(t, chats.CreateMessage(ctx, &entity.Message{ChatID: chat.ID, Sender: "Alice", Text: "hi"}))

	// A fresh store over the same directory sees everything.
	reloaded, err := NewSnapshotStore(dir)
	require.NoError(t, err)

	users2 := NewSnapshotUserRepository(reloaded)
	_, err = users2.GetByUsername(ctx, "Alice")
	require.NoError(t, err)

	chats2 := NewSnapshotChatRepository(reloaded)
	messages, err := chats2.GetMessagesByChat(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hi", messages[0].Text)
}

func TestChatUpdatePreservesMessages(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewSnapshotStore(dir)
	require.NoError(t, err)

	chats := NewSnapshotChatRepository(store)
	chat := &entity.Chat{
		Participants: []string{"Alice", "Bob"},
		UnreadCount:  make(map[string]int),
	}
	require.NoError(t, chats.Create(ctx, chat))
	require.NoError(t, chats.CreateMessage(ctx, &entity.Message{ChatID: chat.ID, Sender: "Alice", Text: "hi"}))

	// Updating metadata from a stale copy must not drop messages.
	stale := &entity.Chat{
		ID:           chat.ID,
		Participants: chat.Participants,
		Blocked:      true,
		UnreadCount:  map[string]int{"Bob": 1},
	}
	require.NoError(t, chats.Update(ctx, stale))

	stored, err := chats.GetByID(ctx, chat.ID)
	require.NoError(t, err)
	assert.True(t, stored.Blocked)
	assert.Len(t, stored.Messages, 1)
	assert.Equal(t, 1, stored.UnreadCount["Bob"])
}

func TestListingIDsUniquePerInstant(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewSnapshotStore(dir)
	require.NoError(t, err)

	listings := NewSnapshotListingRepository(store)
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		l := &entity.Listing{Title: "Item", Description: "Desc", Seller: "TraderPro"}
		require.NoError(t, listings.Create(ctx, l))
		assert.False(t, seen[l.ID])
		seen[l.ID] = true
	}
}

func TestSessionStoreRoundtrip(t *testing.T) {
	dir := t.TempDir()

	sessions, err := NewFSSessionStore(dir)
	require.NoError(t, err)

	_, err = sessions.Load()
	assert.Error(t, err)

	user := &entity.User{Username: "Alice", Password: "pw", Rating: 4.2}
	require.NoError(t, sessions.Save(user))

	loaded, err := sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, "Alice", loaded.Username)
	assert.InDelta(t, 4.2, loaded.Rating, 0.001)

	require.NoError(t, sessions.Clear())
	_, err = sessions.Load()
	assert.Error(t, err)

	// Clearing twice is fine.
	assert.NoError(t, sessions.Clear())
}
