package systems

import (
	"errors"
	"testing"
	"time"
)

type memoryStore struct {
	items   map[string][]byte
	saves   int
	loadErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: map[string][]byte{}}
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	m.saves++
	m.items[key] = data
	return nil
}

func TestHighScoresRankAndTrim(t *testing.T) {
	store := newMemoryStore()
	h := NewHighScores(store, 3)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, score := range []int{100, 300, 200} {
		if rank := h.Record(GameOver{Score: score, Kills: i}, at.Add(time.Duration(i)*time.Minute)); rank == 0 {
			t.Errorf("score %d should make an empty table", score)
		}
	}
	if got := h.Best(); got != 300 {
		t.Errorf("expected best 300, got %d", got)
	}

	if rank := h.Record(GameOver{Score: 250}, at); rank != 2 {
		t.Errorf("expected rank 2 for 250, got %d", rank)
	}
	if rank := h.Record(GameOver{Score: 50}, at); rank != 0 {
		t.Errorf("expected 50 to miss the table, got rank %d", rank)
	}

	entries := h.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []int{300, 250, 200}
	for i, e := range entries {
		if e.Score != want[i] {
			t.Errorf("entry %d: expected %d, got %d", i, want[i], e.Score)
		}
	}
	if store.saves != 4 {
		t.Errorf("expected a save per ranked run, got %d", store.saves)
	}
}

func TestHighScoresReload(t *testing.T) {
	store := newMemoryStore()
	first := NewHighScores(store, 5)
	first.Record(GameOver{Score: 120, Kills: 3, Elapsed: 90 * time.Second}, time.Now())

	second := NewHighScores(store, 5)
	entries := second.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 saved entry, got %d", len(entries))
	}
	if entries[0].Score != 120 || entries[0].Kills != 3 || entries[0].Seconds != 90 {
		t.Errorf("unexpected entry %+v", entries[0])
	}
}

func TestHighScoresSurviveBadStore(t *testing.T) {
	store := newMemoryStore()
	store.items[highScoresKey] = []byte("not json")
	if h := NewHighScores(store, 5); len(h.Entries()) != 0 {
		t.Error("unparseable data should be ignored")
	}

	store.loadErr = errors.New("disk on fire")
	h := NewHighScores(store, 5)
	if rank := h.Record(GameOver{Score: 10}, time.Now()); rank != 1 {
		t.Errorf("expected rank 1, got %d", rank)
	}

	mem := NewHighScores(nil, 5)
	mem.Record(GameOver{Score: 10}, time.Now())
	if mem.Best() != 10 {
		t.Error("a table without a store should still rank runs")
	}
}

func TestHighScoresEqualRunsRankSeparately(t *testing.T) {
	h := NewHighScores(newMemoryStore(), 2)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	run := GameOver{Score: 100, Kills: 4, Elapsed: time.Minute}

	if rank := h.Record(run, at); rank != 1 {
		t.Errorf("expected rank 1, got %d", rank)
	}
	if rank := h.Record(run, at); rank != 2 {
		t.Errorf("an identical run should rank after the first, got %d", rank)
	}
	if rank := h.Record(run, at); rank != 0 {
		t.Errorf("a tie past the last slot should miss the table, got %d", rank)
	}
	if got := len(h.Entries()); got != 2 {
		t.Errorf("expected 2 entries, got %d", got)
	}
}
