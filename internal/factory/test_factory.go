package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/fillword/fillwordgame-go/internal/dependencies/mocks"
	"github.com/fillword/fillwordgame-go/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWordPool loads a small English word pool for testing
func (t *TestApp) LoadTestWordPool() error {
	words := []string{
		// 3-letter words
		"ant", "bat", "cat", "dog", "ear", "fox", "gem", "hat",
		"ice", "jar", "key", "log", "map", "net", "owl", "pig",
		"rat", "sun", "toe", "urn", "van", "web", "yak", "zip",
		// 4-letter words
		"bird", "cake", "door", "echo", "fork", "gate", "hill",
		"iron", "jade", "kite", "lamp", "moon", "nest", "oval",
		"pear", "quiz", "rose", "star", "tree", "vine", "wolf",
		// 5-letter words
		"apple", "bread", "cloud", "dream", "eagle", "flame",
		"grape", "house", "light", "mouse", "night", "ocean",
		"plant", "river", "stone", "tiger", "water", "zebra",
	}

	return t.WordlistService.LoadWords("en", words)
}
