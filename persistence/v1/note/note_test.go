package note

import (
	"context"
	"database/sql"
	"errors"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/noteapp/sys"
	"go.uber.org/zap"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/proullon/ramsql/driver"
)

const testSchema = `CREATE TABLE notes (
	id BIGINT PRIMARY KEY AUTO_INCREMENT,
	title TEXT,
	content TEXT,
	created_at TIMESTAMP
)`

func setup(t *testing.T, dsn string, withCache bool) *miniredis.Miniredis {
	t.Helper()

	sys.R.Log = zap.NewNop().Sugar()
	sys.Configs.Database.OperationTimeout = 5 * time.Second
	sys.Configs.Cache.OperationTimeout = 2 * time.Second
	sys.Configs.Cache.CacheTTL = time.Hour

	db, err := sql.Open("ramsql", dsn)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	sys.R.Database = db

	var s *miniredis.Miniredis
	sys.R.Cache = nil
	if withCache {
		s = miniredis.RunT(t)
		sys.R.Cache = redis.NewClient(&redis.Options{Addr: s.Addr()})
	}

	t.Cleanup(func() {
		if sys.R.Cache != nil {
			_ = sys.R.Cache.Close()
			sys.R.Cache = nil
		}
		_, _ = db.Exec("DROP TABLE notes")
		_ = db.Close()
	})
	return s
}

func TestRoundTripWithoutCache(t *testing.T) {
	setup(t, "PersistenceNoCache", false)
	ctx := context.Background()

	first, err := Insert(ctx, NewNote{Title: "a", Content: "first"})
	if err != nil {
		t.Fatalf("insert: %s", err)
	}
	second, err := Insert(ctx, NewNote{Title: "b", Content: "second"})
	if err != nil {
		t.Fatalf("insert: %s", err)
	}
	if second.Id <= first.Id {
		t.Fatalf("ids should grow: %d then %d", first.Id, second.Id)
	}

	found, err := Find(ctx, first.Id)
	if err != nil {
		t.Fatalf("find: %s", err)
	}
	if found.Title != "a" || found.Content != "first" || !found.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("find returned %+v, want %+v", found, first)
	}

	found.Content = "edited"
	if err := Update(ctx, found); err != nil {
		t.Fatalf("update: %s", err)
	}

	list, err := List(ctx)
	if err != nil {
		t.Fatalf("list: %s", err)
	}
	if len(list) != 2 || list[0].Id != first.Id || list[0].Content != "edited" || list[1].Id != second.Id {
		t.Fatalf("unexpected list: %+v", list)
	}

	if err := Delete(ctx, first.Id); err != nil {
		t.Fatalf("delete: %s", err)
	}
	if _, err := Find(ctx, first.Id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("find after delete should be ErrNotFound, got %v", err)
	}
}

// currentGen returns the cache generation miniredis holds right now.
func currentGen(s *miniredis.Miniredis) int64 {
	gen, err := s.Get(genKey)
	if err != nil {
		return 0
	}
	n, err := strconv.ParseInt(gen, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func TestCacheInvalidation(t *testing.T) {
	s := setup(t, "PersistenceCache", true)
	ctx := context.Background()

	created, err := Insert(ctx, NewNote{Title: "cached", Content: "body"})
	if err != nil {
		t.Fatalf("insert: %s", err)
	}

	if _, err := List(ctx); err != nil {
		t.Fatalf("list: %s", err)
	}
	if !s.Exists(listKey(currentGen(s))) {
		t.Fatalf("list should be cached")
	}
	if _, err := Find(ctx, created.Id); err != nil {
		t.Fatalf("find: %s", err)
	}
	if !s.Exists(itemKey(created.Id, currentGen(s))) {
		t.Fatalf("note %d should be cached", created.Id)
	}

	before := currentGen(s)
	created.Title = "changed"
	if err := Update(ctx, created); err != nil {
		t.Fatalf("update: %s", err)
	}
	if currentGen(s) <= before {
		t.Fatalf("update should move the cache generation forward")
	}
	if s.Exists(listKey(currentGen(s))) || s.Exists(itemKey(created.Id, currentGen(s))) {
		t.Fatalf("update should leave nothing cached for the new generation")
	}

	found, err := Find(ctx, created.Id)
	if err != nil {
		t.Fatalf("find: %s", err)
	}
	if found.Title != "changed" {
		t.Fatalf("find should read the updated row, got %+v", found)
	}

	if _, err := Insert(ctx, NewNote{Title: "another", Content: "body"}); err != nil {
		t.Fatalf("insert: %s", err)
	}
	list, err := List(ctx)
	if err != nil {
		t.Fatalf("list: %s", err)
	}
	if len(list) != 2 {
		t.Fatalf("list should see the new insert, got %+v", list)
	}

	if err := Delete(ctx, created.Id); err != nil {
		t.Fatalf("delete: %s", err)
	}
	if _, err := Find(ctx, created.Id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("find after delete should be ErrNotFound, got %v", err)
	}
}

func TestWritesOnMissingRows(t *testing.T) {
	setup(t, "PersistenceMissingRows", true)
	ctx := context.Background()

	created, err := Insert(ctx, NewNote{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("insert: %s", err)
	}
	if _, err := Find(ctx, created.Id); err != nil {
		t.Fatalf("find: %s", err)
	}
	if _, err := sys.R.Database.Exec("DELETE FROM notes WHERE id = ?", created.Id); err != nil {
		t.Fatalf("delete row: %s", err)
	}

	created.Title = "changed"
	if err := Update(ctx, created); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update of a removed row should be ErrNotFound, got %v", err)
	}
	if _, err := Find(ctx, created.Id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("find should stop serving the removed row, got %v", err)
	}
	if err := Delete(ctx, created.Id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete of a removed row should be ErrNotFound, got %v", err)
	}
}

func TestBrokenCacheFallsBackToDatabase(t *testing.T) {
	s := setup(t, "PersistenceBrokenCache", true)
	ctx := context.Background()

	created, err := Insert(ctx, NewNote{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("insert: %s", err)
	}

	if err := s.Set(itemKey(created.Id, currentGen(s)), "{not json"); err != nil {
		t.Fatal(err)
	}
	found, err := Find(ctx, created.Id)
	if err != nil {
		t.Fatalf("find: %s", err)
	}
	if found.Title != "t" {
		t.Fatalf("unexpected note %+v", found)
	}

	s.SetError("cache down")
	if _, err := List(ctx); err != nil {
		t.Fatalf("list should not depend on the cache: %s", err)
	}
	if err := Update(ctx, found); err != nil {
		t.Fatalf("update should not depend on the cache: %s", err)
	}
}

// holdSet blocks the first SET whose key starts with prefix until release is closed.
type holdSet struct {
	prefix  string
	once    sync.Once
	reached chan struct{}
	release chan struct{}
}

func newHoldSet(prefix string) *holdSet {
	return &holdSet{
		prefix:  prefix,
		reached: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (h *holdSet) BeforeProcess(ctx context.Context, cmd redis.Cmder) (context.Context, error) {
	args := cmd.Args()
	if cmd.Name() != "set" || len(args) < 2 {
		return ctx, nil
	}
	if key, ok := args[1].(string); ok && strings.HasPrefix(key, h.prefix) {
		h.once.Do(func() {
			close(h.reached)
			<-h.release
		})
	}
	return ctx, nil
}

func (h *holdSet) AfterProcess(context.Context, redis.Cmder) error {
	return nil
}

func (h *holdSet) BeforeProcessPipeline(ctx context.Context, _ []redis.Cmder) (context.Context, error) {
	return ctx, nil
}

func (h *holdSet) AfterProcessPipeline(context.Context, []redis.Cmder) error {
	return nil
}

// whileHeld runs read until it is about to cache its result, runs write, then lets read finish.
func whileHeld(t *testing.T, prefix string, read func() error, write func()) {
	t.Helper()

	hold := newHoldSet(prefix)
	sys.R.Cache.AddHook(hold)

	done := make(chan error, 1)
	go func() {
		done <- read()
	}()

	select {
	case <-hold.reached:
	case err := <-done:
		t.Fatalf("read finished without caching: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("read never reached the cache")
	}

	write()
	close(hold.release)

	if err := <-done; err != nil {
		t.Fatalf("read: %s", err)
	}
}

func TestListDuringInsert(t *testing.T) {
	setup(t, "PersistenceListDuringInsert", true)
	ctx := context.Background()

	if _, err := Insert(ctx, NewNote{Title: "first", Content: "c"}); err != nil {
		t.Fatalf("insert: %s", err)
	}

	whileHeld(t, "notes.all.", func() error {
		_, err := List(ctx)
		return err
	}, func() {
		if _, err := Insert(ctx, NewNote{Title: "second", Content: "c"}); err != nil {
			t.Errorf("insert: %s", err)
		}
	})

	list, err := List(ctx)
	if err != nil {
		t.Fatalf("list: %s", err)
	}
	if len(list) != 2 {
		t.Fatalf("list should hold both notes, got %+v", list)
	}
}

func TestFindDuringUpdate(t *testing.T) {
	setup(t, "PersistenceFindDuringUpdate", true)
	ctx := context.Background()

	created, err := Insert(ctx, NewNote{Title: "old", Content: "c"})
	if err != nil {
		t.Fatalf("insert: %s", err)
	}

	whileHeld(t, "notes.", func() error {
		_, err := Find(ctx, created.Id)
		return err
	}, func() {
		changed := created
		changed.Title = "new"
		if err := Update(ctx, changed); err != nil {
			t.Errorf("update: %s", err)
		}
	})

	found, err := Find(ctx, created.Id)
	if err != nil {
		t.Fatalf("find: %s", err)
	}
	if found.Title != "new" {
		t.Fatalf("find should return the last written title, got %+v", found)
	}
}

func TestFindDuringDelete(t *testing.T) {
	setup(t, "PersistenceFindDuringDelete", true)
	ctx := context.Background()

	created, err := Insert(ctx, NewNote{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("insert: %s", err)
	}

	whileHeld(t, "notes.", func() error {
		_, err := Find(ctx, created.Id)
		return err
	}, func() {
		if err := Delete(ctx, created.Id); err != nil {
			t.Errorf("delete: %s", err)
		}
	})

	if _, err := Find(ctx, created.Id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("find after delete should be ErrNotFound, got %v", err)
	}
}
