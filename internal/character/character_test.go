package character

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"charform/internal/config"
	"charform/internal/form"
)

var morty = form.Record{"name": "Morty", "gender": "Male", "species": "Human", "status": "Alive"}

func TestHTTPCreatorPostsCharacter(t *testing.T) {
	var got Character
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/character" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewHTTPCreator(srv.URL+"/api/", srv.Client())
	if err := c.Create(context.Background(), morty); err != nil {
		t.Fatalf("create: %v", err)
	}

	want := Character{Name: "Morty", Gender: "Male", Species: "Human", Status: "Alive"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestHTTPCreatorReportsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"Network error"}`))
	}))
	defer srv.Close()

	err := NewHTTPCreator(srv.URL, srv.Client()).Create(context.Background(), morty)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable || apiErr.Message != "Network error" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestHTTPCreatorPlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewHTTPCreator(srv.URL, srv.Client()).Create(context.Background(), morty)
	if err == nil || !strings.Contains(err.Error(), "nope (status 400)") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStoreCreateAndList(t *testing.T) {
	ctx := context.Background()
	store, err := OpenStore(ctx, filepath.Join(t.TempDir(), "db", "characters.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	base := time.Unix(1700000000, 0)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	if err := store.Create(ctx, morty); err != nil {
		t.Fatalf("create morty: %v", err)
	}
	rick := form.Record{"name": "Rick", "gender": "Male", "species": "Human", "status": "Alive", "type": "Genius"}
	if err := store.Create(ctx, rick); err != nil {
		t.Fatalf("create rick: %v", err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 characters, got %d", len(list))
	}

	got := []Character{list[0].Character, list[1].Character}
	want := []Character{FromRecord(rick), FromRecord(morty)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if list[0].ID == "" || list[0].ID == list[1].ID {
		t.Fatalf("expected distinct ids, got %q and %q", list[0].ID, list[1].ID)
	}
	if !list[0].CreatedAt.Equal(base.Add(2 * time.Second)) {
		t.Fatalf("unexpected created_at %v", list[0].CreatedAt)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	if err := store.Create(ctx, morty); err != nil {
		t.Fatal(err)
	}

	list, _ := store.List(ctx)
	if len(list) != 1 || list[0].Character.Name != "Morty" {
		t.Fatalf("unexpected list %+v", list)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := store.Create(cancelled, morty); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWithTimeout(t *testing.T) {
	slow := CreatorFunc(func(ctx context.Context, rec form.Record) error {
		<-ctx.Done()
		return ctx.Err()
	})

	err := WithTimeout(slow, 10*time.Millisecond).Create(context.Background(), morty)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("expected timeout message, got %v", err)
	}
}

func TestWithTimeoutZeroIsUnbounded(t *testing.T) {
	var hasDeadline bool
	c := CreatorFunc(func(ctx context.Context, rec form.Record) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	})

	if err := WithTimeout(c, 0).Create(context.Background(), morty); err != nil {
		t.Fatal(err)
	}
	if hasDeadline {
		t.Fatal("expected no deadline")
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "carrier-pigeon"

	_, err := Open(context.Background(), cfg)
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestOpenBackends(t *testing.T) {
	cfg := config.Default()
	b, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.(*MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", b)
	}

	cfg.Backend = config.BackendHTTP
	cfg.APIURL = "http://localhost"
	b, err = Open(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.(*HTTPCreator); !ok {
		t.Fatalf("expected http creator, got %T", b)
	}
}
