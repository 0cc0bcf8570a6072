package systems

import (
	"encoding/json"
	"log"
	"slices"
	"sort"
	"time"

	"github.com/quasilyte/gdata"
)

const highScoresKey = "highscores"

// ScoreStore is the storage behind the high-score table. *gdata.Manager
// satisfies it.
type ScoreStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

type ScoreEntry struct {
	Score   int       `json:"score"`
	Kills   int       `json:"kills"`
	Seconds float64   `json:"seconds"`
	At      time.Time `json:"at"`
}

// HighScores keeps the best runs, highest first.
type HighScores struct {
	store      ScoreStore // nil keeps scores in memory only
	maxEntries int
	entries    []ScoreEntry
}

// OpenHighScores opens the per-user data directory for appName. If it cannot
// be opened the table still works but is not saved.
func OpenHighScores(appName string, maxEntries int) *HighScores {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return NewHighScores(nil, maxEntries)
	}
	return NewHighScores(m, maxEntries)
}

func NewHighScores(store ScoreStore, maxEntries int) *HighScores {
	h := &HighScores{store: store, maxEntries: maxEntries}
	h.load()
	return h
}

func (h *HighScores) load() {
	if h.store == nil {
		return
	}
	data, err := h.store.LoadItem(highScoresKey)
	if err != nil {
		log.Printf("Warning: Could not load high scores: %v", err)
		return
	}
	if data == nil {
		// Nothing saved yet
		return
	}
	var entries []ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("Warning: Could not parse saved high scores: %v", err)
		return
	}
	h.entries = entries
	h.sortAndTrim()
}

func (h *HighScores) sortAndTrim() {
	sort.SliceStable(h.entries, func(i, j int) bool {
		return h.entries[i].Score > h.entries[j].Score
	})
	if h.maxEntries > 0 && len(h.entries) > h.maxEntries {
		h.entries = h.entries[:h.maxEntries]
	}
}

// Record adds a finished run and returns its 1-based rank, or 0 if it did not
// make the table. A run ranks below earlier runs with the same score.
func (h *HighScores) Record(run GameOver, at time.Time) int {
	entry := ScoreEntry{
		Score:   run.Score,
		Kills:   run.Kills,
		Seconds: run.Elapsed.Seconds(),
		At:      at,
	}
	i := sort.Search(len(h.entries), func(i int) bool {
		return h.entries[i].Score < entry.Score
	})
	if h.maxEntries > 0 && i >= h.maxEntries {
		return 0
	}

	h.entries = slices.Insert(h.entries, i, entry)
	if h.maxEntries > 0 && len(h.entries) > h.maxEntries {
		h.entries = h.entries[:h.maxEntries]
	}
	h.save()
	return i + 1
}

func (h *HighScores) save() {
	if h.store == nil {
		return
	}
	data, err := json.Marshal(h.entries)
	if err != nil {
		log.Printf("Warning: Could not serialize high scores: %v", err)
		return
	}
	if err := h.store.SaveItem(highScoresKey, data); err != nil {
		log.Printf("Warning: Could not save high scores: %v", err)
	}
}

func (h *HighScores) Best() int {
	if len(h.entries) == 0 {
		return 0
	}
	return h.entries[0].Score
}

func (h *HighScores) Entries() []ScoreEntry {
	out := make([]ScoreEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
