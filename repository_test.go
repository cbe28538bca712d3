package postdesk

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupKV(t *testing.T) *KV {
	t.Helper()
	kv, err := OpenKV(filepath.Join(t.TempDir(), "postdesk.db"))
	if err != nil {
		t.Fatalf("failed to open kv store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestKVGetMissingSlot(t *testing.T) {
	kv := setupKV(t)

	_, ok, err := kv.Get("never-written")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("missing slot should report ok=false")
	}
}

func TestKVSetReplacesValue(t *testing.T) {
	kv := setupKV(t)

	if err := kv.Set("slot", "one"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set("slot", "two"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, ok, err := kv.Get("slot")
	if err != nil || !ok {
		t.Fatalf("Get = %v, ok=%v", err, ok)
	}
	if v != "two" {
		t.Errorf("value = %q, want %q", v, "two")
	}
}

func TestPostRepositoryRoundTrip(t *testing.T) {
	repo := NewPostRepository(setupKV(t))

	want := []BlogPost{
		{
			ID:          "a1",
			Title:       "First Post",
			Content:     "Enough content to pass.",
			Author:      "Ada",
			ImageURL:    "data:image/jpeg;base64,abcd",
			Category:    "Technology",
			Priority:    "High",
			IsPublished: true,
			PublishDate: date(2024, time.June, 1),
		},
		{
			ID:          "b2",
			Title:       "Second Post",
			Content:     "Also enough content here.",
			Author:      "Grace",
			Category:    "Travel",
			Priority:    "Low",
			PublishDate: date(2024, time.January, 1),
		},
	}

	if err := repo.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Load returned %d posts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Title != want[i].Title ||
			got[i].Content != want[i].Content || got[i].Author != want[i].Author ||
			got[i].ImageURL != want[i].ImageURL || got[i].Category != want[i].Category ||
			got[i].Priority != want[i].Priority || got[i].IsPublished != want[i].IsPublished {
			t.Errorf("post %d = %+v, want %+v", i, got[i], want[i])
		}
		if !got[i].PublishDate.Equal(want[i].PublishDate) {
			t.Errorf("post %d publish date = %v, want %v", i, got[i].PublishDate, want[i].PublishDate)
		}
	}
}

func TestPostRepositoryAbsentSlotIsEmpty(t *testing.T) {
	repo := NewPostRepository(setupKV(t))

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load of absent slot should not error, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load of absent slot = %d posts, want 0", len(got))
	}
}

func TestPostRepositoryMalformedPayload(t *testing.T) {
	kv := setupKV(t)
	if err := kv.Set(postsSlot, `[{"id":"a1","title":"Trunc`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	repo := NewPostRepository(kv)
	got, err := repo.Load()
	if err == nil {
		t.Fatal("Load of truncated JSON should report a read error")
	}
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("error = %T, want *ReadError", err)
	}
	if readErr.Slot != postsSlot {
		t.Errorf("Slot = %q, want %q", readErr.Slot, postsSlot)
	}
	if len(got) != 0 {
		t.Errorf("Load should fall back to an empty collection, got %d posts", len(got))
	}
}

func TestPostRepositoryRejectsSchemaViolations(t *testing.T) {
	kv := setupKV(t)
	payload := `[{"id":"a1","title":"ab","content":"x","author":"",` +
		`"category":"Technology","priority":"Low","isPublished":false,"publishDate":"2024-06-01T00:00:00Z"}]`
	if err := kv.Set(postsSlot, payload); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := NewPostRepository(kv).Load()
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("record violating length rules should yield *ReadError, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load should fall back to an empty collection, got %d posts", len(got))
	}
}

func TestPostRepositoryRejectsUnknownCategory(t *testing.T) {
	kv := setupKV(t)
	payload := `[{"id":"a1","title":"Valid Title","content":"Valid content here.","author":"Ada",` +
		`"category":"Gossip","priority":"Low","isPublished":false,"publishDate":"2024-06-01T00:00:00Z"}]`
	if err := kv.Set(postsSlot, payload); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	_, err := NewPostRepository(kv).Load()
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("unknown category should yield *ReadError, got %v", err)
	}
}

func TestElementRepositoryRoundTrip(t *testing.T) {
	repo := NewElementRepository(setupKV(t))

	want := []WebElement{
		{InternalID: "i1", ElementID: "login-btn", ElementType: "button", Value: "Sign in"},
		{InternalID: "i2", ElementID: "search", ElementType: "input"},
	}
	if err := repo.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestElementRepositorySlotMatchesExportFormat(t *testing.T) {
	kv := setupKV(t)
	repo := NewElementRepository(kv)

	elements := []WebElement{
		{InternalID: "i1", ElementID: "login-btn", ElementType: "button", Value: "Sign in"},
	}
	if err := repo.Save(elements); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	stored, ok, err := kv.Get(elementsSlot)
	if err != nil || !ok {
		t.Fatalf("Get = %v, ok=%v", err, ok)
	}
	export, err := MarshalElements(elements)
	if err != nil {
		t.Fatalf("MarshalElements failed: %v", err)
	}
	if stored != string(export) {
		t.Errorf("persisted slot and export differ:\n%s\n---\n%s", stored, export)
	}
}

func TestElementRepositoryRejectsUnknownType(t *testing.T) {
	kv := setupKV(t)
	if err := kv.Set(elementsSlot, `[{"internalId":"i1","elementId":"x","elementType":"marquee","value":""}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	_, err := NewElementRepository(kv).Load()
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("unknown element type should yield *ReadError, got %v", err)
	}
}
