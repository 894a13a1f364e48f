package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"library-circulation/internal/catalog"
	"library-circulation/internal/model"
	pkgLog "library-circulation/pkg/log"
)

// Provider serves catalog lookups from a JSON file on disk. The file is
// re-read only when its modification time changes; lookups in between are
// served from the parsed snapshot.
type Provider struct {
	path string
	l    pkgLog.Logger

	mu      sync.Mutex
	modTime time.Time
	books   []model.Book
	byISBN  map[string]model.Book
	byID    map[int]model.Book
}

// bookEntry is the on-disk shape of a catalog record.
type bookEntry struct {
	ID                 int     `json:"id"`
	ISBN               string  `json:"isbn"`
	Title              string  `json:"title"`
	Author             string  `json:"author"`
	PublicationYear    int     `json:"publicationYear"`
	Price              float64 `json:"price"`
	TotalCopies        int     `json:"totalCopies"`
	AvailabilityStatus string  `json:"availabilityStatus"`
}

// New creates a file-backed catalog Provider.
func New(path string, l pkgLog.Logger) *Provider {
	return &Provider{path: path, l: l}
}

// GetAll returns every book in file order.
func (p *Provider) GetAll(ctx context.Context) ([]model.Book, error) {
	if err := p.load(ctx); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.Book, len(p.books))
	copy(out, p.books)
	return out, nil
}

// GetByISBN returns the book with the given ISBN.
func (p *Provider) GetByISBN(ctx context.Context, isbn string) (model.Book, error) {
	if err := p.load(ctx); err != nil {
		return model.Book{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	book, ok := p.byISBN[isbn]
	if !ok {
		return model.Book{}, catalog.ErrBookNotFound
	}
	return book, nil
}

// GetByID returns the book with the given id.
func (p *Provider) GetByID(ctx context.Context, id int) (model.Book, error) {
	if err := p.load(ctx); err != nil {
		return model.Book{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	book, ok := p.byID[id]
	if !ok {
		return model.Book{}, catalog.ErrBookNotFound
	}
	return book, nil
}

// load refreshes the snapshot when the file changed on disk.
func (p *Provider) load(ctx context.Context) error {
	info, err := os.Stat(p.path)
	if err != nil {
		p.l.Errorf(ctx, "catalog/jsonfile: stat %s: %v", p.path, err)
		return fmt.Errorf("%w: %v", catalog.ErrSourceUnavailable, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.modTime.IsZero() && info.ModTime().Equal(p.modTime) {
		return nil
	}

	raw, err := os.ReadFile(p.path)
	if err != nil {
		p.l.Errorf(ctx, "catalog/jsonfile: read %s: %v", p.path, err)
		return fmt.Errorf("%w: %v", catalog.ErrSourceUnavailable, err)
	}

	var entries []bookEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		p.l.Errorf(ctx, "catalog/jsonfile: parse %s: %v", p.path, err)
		return fmt.Errorf("%w: %v", catalog.ErrSourceUnavailable, err)
	}

	books := make([]model.Book, 0, len(entries))
	byISBN := make(map[string]model.Book, len(entries))
	byID := make(map[int]model.Book, len(entries))
	for _, e := range entries {
		book := model.Book{
			ID:                 e.ID,
			ISBN:               e.ISBN,
			Title:              e.Title,
			Author:             e.Author,
			PublicationYear:    e.PublicationYear,
			Price:              e.Price,
			TotalCopies:        e.TotalCopies,
			AvailabilityStatus: e.AvailabilityStatus,
		}
		books = append(books, book)
		byISBN[book.ISBN] = book
		byID[book.ID] = book
	}

	p.books = books
	p.byISBN = byISBN
	p.byID = byID
	p.modTime = info.ModTime()
	return nil
}
