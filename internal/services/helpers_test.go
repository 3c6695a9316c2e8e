package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/franciscosanchezn/tablekeeper/internal/database"
	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

// setupFileDB opens a sqlite file behind a real connection pool so goroutines can race each other.
// Writers take the lock up front and wait for each other instead of failing with SQLITE_BUSY.
func setupFileDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tablekeeper.db") + "?_busy_timeout=10000&_txlock=immediate"
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: path})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

// runTogether starts n goroutines that call fn at the same moment and waits for all of them
func runTogether(n int, fn func(i int)) {
	var ready, done sync.WaitGroup
	start := make(chan struct{})
	ready.Add(n)
	done.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer done.Done()
			ready.Done()
			<-start
			fn(i)
		}(i)
	}
	ready.Wait()
	close(start)
	done.Wait()
}

// recordingNotifier remembers the changes it was told about
type recordingNotifier struct {
	mu      sync.Mutex
	changes []OrderChange
	orders  []models.Order
}

func (r *recordingNotifier) OrderChanged(_ context.Context, change OrderChange, order models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, change)
	r.orders = append(r.orders, order)
}

type publishedMessage struct {
	topic   string
	payload any
}

type recordingPublisher struct {
	mu       sync.Mutex
	messages []publishedMessage
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, publishedMessage{topic: topic, payload: payload})
	return nil
}
