package usecase

import (
	"context"

	"library-circulation/internal/catalog"
	"library-circulation/internal/identity"
	"library-circulation/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// Mock catalog provider backed by a fixed book list
type mockCatalog struct {
	books []model.Book
	err   error // returned from every call when set
}

func (m *mockCatalog) GetAll(ctx context.Context) ([]model.Book, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.Book, len(m.books))
	copy(out, m.books)
	return out, nil
}

func (m *mockCatalog) GetByISBN(ctx context.Context, isbn string) (model.Book, error) {
	if m.err != nil {
		return model.Book{}, m.err
	}
	for _, b := range m.books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return model.Book{}, catalog.ErrBookNotFound
}

func (m *mockCatalog) GetByID(ctx context.Context, id int) (model.Book, error) {
	if m.err != nil {
		return model.Book{}, m.err
	}
	for _, b := range m.books {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Book{}, catalog.ErrBookNotFound
}

// Mock identity directory backed by a fixed user map
type mockIdentity struct {
	users map[int]model.User
	err   error
}

func (m *mockIdentity) GetByID(ctx context.Context, id int) (model.User, error) {
	if m.err != nil {
		return model.User{}, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return model.User{}, identity.ErrUserNotFound
	}
	return user, nil
}

// Standard fixtures
func testCatalog() *mockCatalog {
	return &mockCatalog{books: []model.Book{
		{ID: 1, ISBN: "ISBN-1", Title: "The Go Programming Language", Author: "Donovan & Kernighan", PublicationYear: 2015, Price: 35.99, TotalCopies: 3, AvailabilityStatus: "Available"},
		{ID: 2, ISBN: "ISBN-2", Title: "The Pragmatic Programmer", Author: "Hunt & Thomas", PublicationYear: 1999, Price: 42.50, TotalCopies: 2, AvailabilityStatus: "Available"},
	}}
}

func testIdentity() *mockIdentity {
	return &mockIdentity{users: map[int]model.User{
		42: {ID: 42, Name: "Ada Lovelace"},
		7:  {ID: 7, Name: "Alan Turing"},
	}}
}
