package model

// User is an identity directory entry, read-only for this service.
type User struct {
	ID   int
	Name string
}
