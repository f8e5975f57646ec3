package recents

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/telemetry"
)

func testRegistry(t *testing.T, paths ...string) *item.Registry {
	t.Helper()
	reg := item.NewRegistry()
	for _, p := range paths {
		if err := reg.Register(&item.Item{ID: item.MustParseID(p), Block: p != "stick"}); err != nil {
			t.Fatalf("Register(%s): %v", p, err)
		}
	}
	return reg
}

func idsOf(items []*item.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID.Path)
	}
	return out
}

func stackOf(t *testing.T, reg *item.Registry, path string) item.Stack {
	t.Helper()
	s := reg.Stack(item.MustParseID(path))
	if s.IsEmpty() {
		t.Fatalf("%s not registered", path)
	}
	return s
}

func TestHistoryRecord(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t, "stone", "dirt", "oak_log", "stick")
	h := NewHistory(0)

	for _, p := range []string{"stone", "dirt", "oak_log", "stone"} {
		if !h.Record(stackOf(t, reg, p)) {
			t.Errorf("Record(%s) = false", p)
		}
	}
	if h.Record(stackOf(t, reg, "stick")) {
		t.Error("non-block item should not be recorded")
	}
	if h.Record(item.Empty) {
		t.Error("empty stack should not be recorded")
	}

	if diff := cmp.Diff([]string{"stone", "oak_log", "dirt"}, idsOf(h.Items())); diff != "" {
		t.Errorf("Items() (-want +got):\n%s", diff)
	}
}

func TestHistoryCapacity(t *testing.T) {
	t.Parallel()
	var paths []string
	for i := range Capacity + 5 {
		paths = append(paths, fmt.Sprintf("block_%02d", i))
	}
	reg := testRegistry(t, paths...)
	h := NewHistory(0)

	for _, p := range paths {
		h.Record(stackOf(t, reg, p))
	}
	if h.Len() != Capacity {
		t.Fatalf("Len() = %d, want %d", h.Len(), Capacity)
	}
	items := h.Items()
	if items[0].ID.Path != paths[len(paths)-1] {
		t.Errorf("front = %s, want most recent", items[0].ID.Path)
	}
	if items[Capacity-1].ID.Path != paths[5] {
		t.Errorf("tail = %s, want %s", items[Capacity-1].ID.Path, paths[5])
	}

	// Re-recording a tail entry at capacity keeps the length fixed.
	h.Record(stackOf(t, reg, paths[5]))
	if h.Len() != Capacity || h.Items()[0].ID.Path != paths[5] {
		t.Errorf("move-to-front at capacity: len=%d front=%s", h.Len(), h.Items()[0].ID.Path)
	}
}

func TestHistoryEntriesAndIcon(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t, "grass_block", "cobblestone", "oak_planks", "bookshelf", "stone")
	h := NewHistory(4)

	var got []string
	for _, s := range h.Entries(reg) {
		got = append(got, s.ID().Path)
	}
	if diff := cmp.Diff([]string{"grass_block", "cobblestone", "oak_planks"}, got); diff != "" {
		t.Errorf("default Entries() (-want +got):\n%s", diff)
	}
	if icon := h.Icon(reg); icon.ID().Path != "bookshelf" {
		t.Errorf("default Icon() = %s", icon.ID())
	}

	h.Record(stackOf(t, reg, "stone"))
	if icon := h.Icon(reg); icon.ID().Path != "stone" {
		t.Errorf("Icon() = %s, want stone", icon.ID())
	}
	if entries := h.Entries(reg); len(entries) != 1 {
		t.Errorf("Entries() = %d stacks, want 1", len(entries))
	}

	if got := NewHistory(0).Entries(nil); len(got) != 0 {
		t.Errorf("Entries(nil) = %v, want empty", got)
	}
}

func TestHistoryRestore(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t, "stone", "dirt", "stick", "sand")
	get := func(p string) *item.Item {
		it, _ := reg.Lookup(item.MustParseID(p))
		return it
	}
	h := NewHistory(2)

	h.Restore([]*item.Item{get("stone"), nil, get("stick"), get("stone"), get("dirt"), get("sand")})
	if diff := cmp.Diff([]string{"stone", "dirt"}, idsOf(h.Items())); diff != "" {
		t.Errorf("Restore() (-want +got):\n%s", diff)
	}
	h.Clear()
	if h.Len() != 0 {
		t.Error("Clear() left items behind")
	}
}

func TestHistoryConcurrentRecord(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t, "a", "b", "c", "d")
	h := NewHistory(3)

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			p := []string{"a", "b", "c", "d"}[idx%4]
			h.Record(reg.Stack(item.MustParseID(p)))
			_ = h.Entries(reg)
		}(i)
	}
	wg.Wait()

	items := h.Items()
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	seen := map[*item.Item]bool{}
	for _, it := range items {
		if seen[it] {
			t.Errorf("duplicate %s", it.ID)
		}
		seen[it] = true
	}
}

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), filepath.Join(t.TempDir(), "recents.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreSaveLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg := testRegistry(t, "stone", "dirt", "oak_log")
	s := testStore(t)

	h := NewHistory(0)
	for _, p := range []string{"oak_log", "dirt", "stone"} {
		h.Record(stackOf(t, reg, p))
	}
	if err := s.Save(ctx, h); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored := NewHistory(0)
	skipped, err := s.Load(ctx, restored, reg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if diff := cmp.Diff(idsOf(h.Items()), idsOf(restored.Items())); diff != "" {
		t.Errorf("round trip (-saved +loaded):\n%s", diff)
	}

	// A second save replaces rather than appends.
	h.Clear()
	h.Record(stackOf(t, reg, "dirt"))
	if err := s.Save(ctx, h); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if _, err := s.Load(ctx, restored, reg); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if diff := cmp.Diff([]string{"dirt"}, idsOf(restored.Items())); diff != "" {
		t.Errorf("after replace (-want +got):\n%s", diff)
	}
}

func TestStoreSaveAfterReplacedRegistry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	before := testRegistry(t, "stone", "dirt")
	after := testRegistry(t, "stone", "dirt")
	s := testStore(t)

	h := NewHistory(0)
	h.Record(stackOf(t, before, "stone"))
	h.Record(stackOf(t, before, "dirt"))
	h.Record(stackOf(t, after, "stone"))

	if diff := cmp.Diff([]string{"stone", "dirt"}, idsOf(h.Items())); diff != "" {
		t.Fatalf("Items() (-want +got):\n%s", diff)
	}
	if got, want := h.Items()[0], stackOf(t, after, "stone").Item; got != want {
		t.Error("front entry should be the item from the replacing registry")
	}
	if err := s.Save(ctx, h); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored := NewHistory(0)
	if _, err := s.Load(ctx, restored, after); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"stone", "dirt"}, idsOf(restored.Items())); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}

	// Restore also collapses equal IDs from different registries.
	a, _ := before.Lookup(item.MustParseID("dirt"))
	b, _ := after.Lookup(item.MustParseID("dirt"))
	restored.Restore([]*item.Item{a, b})
	if restored.Len() != 1 {
		t.Errorf("Restore kept %d entries for one ID, want 1", restored.Len())
	}
}

func TestStoreLoadSkipsUnknown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)

	h := NewHistory(0)
	h.Record(item.NewStack(&item.Item{ID: item.MustParseID("modded:glowing_brick"), Block: true}))
	h.Record(item.NewStack(&item.Item{ID: item.MustParseID("stone"), Block: true}))
	if err := s.Save(ctx, h); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored := NewHistory(0)
	skipped, err := s.Load(ctx, restored, testRegistry(t, "stone"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if diff := cmp.Diff([]string{"stone"}, idsOf(restored.Items())); diff != "" {
		t.Errorf("restored (-want +got):\n%s", diff)
	}
}

func TestStoreClearEmitsTelemetry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg := testRegistry(t, "stone")
	s := testStore(t)
	var buf bytes.Buffer
	s.Telemetry = telemetry.NewWriterEmitter(&buf)

	h := NewHistory(0)
	h.Record(stackOf(t, reg, "stone"))
	if err := s.Save(ctx, h); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	restored := NewHistory(0)
	if _, err := s.Load(ctx, restored, reg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.Len() != 0 {
		t.Errorf("Len() after Clear = %d", restored.Len())
	}

	events, err := telemetry.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	var kinds []string
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	if diff := cmp.Diff([]string{telemetry.KindRecentsSaved, telemetry.KindRecentsCleared}, kinds); diff != "" {
		t.Errorf("event kinds (-want +got):\n%s", diff)
	}
}

func TestNewStoreIdempotentSchema(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "recents.db")
	for i := range 2 {
		s, err := NewStore(context.Background(), path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		s.Close()
	}
}
