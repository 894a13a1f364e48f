package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"library-circulation/internal/identity"
	"library-circulation/internal/model"
	pkgLog "library-circulation/pkg/log"
)

// Directory serves identity lookups from a JSON file on disk, re-reading it
// only when the modification time changes.
type Directory struct {
	path string
	l    pkgLog.Logger

	mu      sync.Mutex
	modTime time.Time
	byID    map[int]model.User
}

// userEntry is the on-disk shape of a directory record.
type userEntry struct {
	UserID   int    `json:"userId"`
	UserName string `json:"userName"`
}

// New creates a file-backed identity Directory.
func New(path string, l pkgLog.Logger) *Directory {
	return &Directory{path: path, l: l}
}

// GetByID returns the user with the given id.
func (d *Directory) GetByID(ctx context.Context, id int) (model.User, error) {
	if err := d.load(ctx); err != nil {
		return model.User{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	user, ok := d.byID[id]
	if !ok {
		return model.User{}, identity.ErrUserNotFound
	}
	return user, nil
}

func (d *Directory) load(ctx context.Context) error {
	info, err := os.Stat(d.path)
	if err != nil {
		d.l.Errorf(ctx, "identity/jsonfile: stat %s: %v", d.path, err)
		return fmt.Errorf("%w: %v", identity.ErrSourceUnavailable, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.modTime.IsZero() && info.ModTime().Equal(d.modTime) {
		return nil
	}

	raw, err := os.ReadFile(d.path)
	if err != nil {
		d.l.Errorf(ctx, "identity/jsonfile: read %s: %v", d.path, err)
		return fmt.Errorf("%w: %v", identity.ErrSourceUnavailable, err)
	}

	var entries []userEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		d.l.Errorf(ctx, "identity/jsonfile: parse %s: %v", d.path, err)
		return fmt.Errorf("%w: %v", identity.ErrSourceUnavailable, err)
	}

	byID := make(map[int]model.User, len(entries))
	for _, e := range entries {
		byID[e.UserID] = model.User{ID: e.UserID, Name: e.UserName}
	}

	d.byID = byID
	d.modTime = info.ModTime()
	return nil
}
