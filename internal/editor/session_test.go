package editor

import (
	"reflect"
	"testing"

	"sheweds-backend/internal/models"
)

func sectionIDs(page models.PageConfig) []string {
	ids := make([]string, len(page.Sections))
	for i, s := range page.Sections {
		ids[i] = s.ID
	}
	return ids
}

func newSessionWith(ids ...string) *Session {
	sections := make([]models.Section, len(ids))
	for i, id := range ids {
		sections[i] = models.Section{ID: id, Type: "RichText", Content: map[string]interface{}{}}
	}
	return NewSession(models.PageConfig{ID: "home", Slug: "home", Sections: sections})
}

func TestAddSectionDefaults(t *testing.T) {
	session := newSessionWith()

	section, err := session.AddSection("Hero")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if section.Type != "Hero" {
		t.Fatalf("unexpected type %q", section.Type)
	}
	if section.Settings["paddingTop"] != "medium" || section.Settings["paddingBottom"] != "medium" {
		t.Fatalf("new sections should start with medium spacing, got %v", section.Settings)
	}
	if len(section.Content) != 0 {
		t.Fatalf("new sections should start empty, got %v", section.Content)
	}

	snapshot := session.Snapshot()
	if len(snapshot.Sections) != 1 || snapshot.Sections[0].ID != section.ID {
		t.Fatalf("section not in working copy: %v", sectionIDs(snapshot))
	}
}

func TestReorderProducesExactPermutation(t *testing.T) {
	cases := []struct {
		from, to int
		want     []string
	}{
		{0, 2, []string{"b", "c", "a", "d"}},
		{3, 0, []string{"d", "a", "b", "c"}},
		{1, 1, []string{"a", "b", "c", "d"}},
		{2, 1, []string{"a", "c", "b", "d"}},
	}

	for _, tc := range cases {
		session := newSessionWith("a", "b", "c", "d")
		if err := session.Reorder(tc.from, tc.to); err != nil {
			t.Fatalf("reorder %d->%d failed: %v", tc.from, tc.to, err)
		}
		got := sectionIDs(session.Snapshot())
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("reorder %d->%d: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestReorderOutOfRange(t *testing.T) {
	session := newSessionWith("a", "b")
	if err := session.Reorder(0, 5); err == nil {
		t.Fatal("expected out of range error")
	}
	if err := session.Reorder(-1, 0); err == nil {
		t.Fatal("expected out of range error")
	}
	if got := sectionIDs(session.Snapshot()); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("failed reorder must not disturb order, got %v", got)
	}
}

func TestUpdateContentRawIgnoresMalformedJSON(t *testing.T) {
	session := newSessionWith("a")
	if err := session.UpdateContent("a", "items", []interface{}{"keep"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := session.UpdateContentRaw("a", "items", `{"broken":`); err != nil {
		t.Fatalf("malformed raw JSON should be ignored silently, got %v", err)
	}

	got := session.Snapshot().Sections[0].Content["items"]
	if !reflect.DeepEqual(got, []interface{}{"keep"}) {
		t.Fatalf("malformed input must leave previous value intact, got %v", got)
	}

	if err := session.UpdateContentRaw("a", "items", `["new"]`); err != nil {
		t.Fatalf("valid raw JSON failed: %v", err)
	}
	got = session.Snapshot().Sections[0].Content["items"]
	if !reflect.DeepEqual(got, []interface{}{"new"}) {
		t.Fatalf("valid raw JSON should replace the value, got %v", got)
	}
}

func TestToggleHiddenAndRemove(t *testing.T) {
	session := newSessionWith("a", "b")

	if err := session.ToggleHidden("b"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !session.Snapshot().Sections[1].Hidden {
		t.Fatal("section should be hidden after toggle")
	}
	if err := session.ToggleHidden("b"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if session.Snapshot().Sections[1].Hidden {
		t.Fatal("second toggle should restore visibility")
	}

	if err := session.Remove("a"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if got := sectionIDs(session.Snapshot()); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("unexpected sections after remove: %v", got)
	}

	if err := session.Remove("missing"); err == nil {
		t.Fatal("removing an unknown section should error")
	}
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	session := newSessionWith("a")
	if err := session.UpdateContent("a", "title", "original"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	snapshot := session.Snapshot()
	snapshot.Sections[0].Content["title"] = "tampered"

	if got := session.Snapshot().Sections[0].Content["title"]; got != "original" {
		t.Fatalf("mutating a snapshot leaked into the session: %v", got)
	}
}

func TestHubLastMessageWinsForSlowSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	for i := 1; i <= 5; i++ {
		hub.Broadcast(Message{Type: TypeUpdatePageConfig, Payload: i})
	}

	msg := <-ch
	if msg.Payload != 5 {
		t.Fatalf("slow subscriber should see the newest snapshot, got %v", msg.Payload)
	}
	select {
	case extra := <-ch:
		t.Fatalf("no further messages expected, got %v", extra)
	default:
	}
}

func TestHubCancelClosesChannel(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()

	if hub.SubscriberCount() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", hub.SubscriberCount())
	}
	cancel()
	cancel() // safe to run twice

	if _, open := <-ch; open {
		t.Fatal("channel should close on cancel")
	}
	if hub.SubscriberCount() != 0 {
		t.Fatalf("expected 0 subscribers, got %d", hub.SubscriberCount())
	}
}
