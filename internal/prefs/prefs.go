// Package prefs holds per-user preferences persisted next to the user's
// address book.
package prefs

// Prefs are the per-user preferences. The schema is rewritten in full on
// every login so new fields pick up their defaults on disk.
type Prefs struct {
	// IsSample marks that the user's book was seeded with sample data and
	// has never been saved by the user.
	IsSample bool `json:"is_sample"`

	// BookFilePath remembers where the user's book was last stored.
	BookFilePath string `json:"book_file_path,omitempty"`
}

// Default returns the preferences used when none are stored yet.
func Default() *Prefs {
	return &Prefs{}
}
