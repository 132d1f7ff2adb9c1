package factory

import (
	"time"

	"github.com/mcoot/wordtiles/internal/dependencies/mocks"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	"github.com/mcoot/wordtiles/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// With nothing queued, MockRandom returns 0 for every Intn, so every
// shuffle is the same fixed permutation.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
