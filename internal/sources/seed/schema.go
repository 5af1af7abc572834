package seed

// Entry is one bookmark in a seed file
type Entry struct {
	ID        int64  `yaml:"id"`
	Title     string `yaml:"title"`
	URL       string `yaml:"url"`
	Notes     string `yaml:"notes"`
	DateAdded string `yaml:"date_added"` // YYYY-MM-DD, empty = import day
}

// File is the root structure of a seed file:
//
//	bookmarks:
//	  - id: 1
//	    title: Go
//	    url: https://go.dev
//	    notes: language home
//	    date_added: 2024-04-23
type File struct {
	Bookmarks []Entry `yaml:"bookmarks"`
}
