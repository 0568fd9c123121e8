package domain

// Bookmark is one saved command in an AQC bookmark file.
type Bookmark struct {
	Command     string
	Name        string
	Description string
}
