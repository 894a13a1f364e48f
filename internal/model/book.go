package model

// Book is a catalog entry. The catalog is read-only for this service:
// books are never created, edited or deleted here.
type Book struct {
	ID                 int
	ISBN               string
	Title              string
	Author             string
	PublicationYear    int
	Price              float64
	TotalCopies        int // copies the library owns, not copies currently available
	AvailabilityStatus string
}
