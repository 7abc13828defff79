package server

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Ren-B-7/chess-backend/rules"
)

func testStore(t *testing.T) *GameStore {
	t.Helper()
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGameStore_PutGet(t *testing.T) {
	store := testStore(t)

	game := &Game{
		ID:        "abc123",
		FEN:       rules.FENStartPos,
		Moves:     []string{"e2-e4", "e7-e5"},
		Status:    "ongoing",
		CreatedAt: time.Now(),
	}
	if err := store.Put(game); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get("abc123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(game, got, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Fatalf("stored game mismatch:\n%s", diff)
	}
	if got.UpdatedAt.IsZero() {
		t.Fatalf("Put did not stamp UpdatedAt")
	}
}

func TestGameStore_GetMissing(t *testing.T) {
	store := testStore(t)
	if _, err := store.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("got %v, want ErrGameNotFound", err)
	}
}

func TestGameStore_Delete(t *testing.T) {
	store := testStore(t)
	if err := store.Put(&Game{ID: "gone", FEN: rules.FENStartPos}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete("gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get("gone"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("deleted game still readable: %v", err)
	}
	if err := store.Delete("never-existed"); err != nil {
		t.Fatalf("deleting a missing id errored: %v", err)
	}
}

func TestGameStore_List(t *testing.T) {
	store := testStore(t)
	for _, id := range []string{"a", "b", "c"} {
		if err := store.Put(&Game{ID: id, FEN: rules.FENStartPos}); err != nil {
			t.Fatalf("Put %s: %v", id, err)
		}
	}
	ids, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids); diff != "" {
		t.Fatalf("listed ids mismatch:\n%s", diff)
	}
}

func TestSessions_Lifecycle(t *testing.T) {
	sessions := NewSessions(time.Hour)
	token := sessions.New()
	if !sessions.Valid(token) {
		t.Fatalf("fresh token rejected")
	}
	if sessions.Valid("forged") {
		t.Fatalf("unknown token accepted")
	}

	expired := NewSessions(-time.Second)
	token = expired.New()
	if expired.Valid(token) {
		t.Fatalf("expired token accepted")
	}

	expired = NewSessions(-time.Second)
	expired.New()
	expired.New()
	expired.Purge()
	if n := len(expired.m); n != 0 {
		t.Fatalf("Purge left %d expired tokens", n)
	}
}
