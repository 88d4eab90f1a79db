package assets

import (
	"embed"
	"io"
	"io/fs"
)

//go:embed dictionary.txt answers.txt sql/*.sql
var FS embed.FS

// Dictionary opens the embedded "word count" list.
func Dictionary() (io.ReadCloser, error) {
	return FS.Open("dictionary.txt")
}

// Answers opens the embedded list of previously used answers.
func Answers() (io.ReadCloser, error) {
	return FS.Open("answers.txt")
}

// Migrations returns the embedded SQL migrations rooted at sql/.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		// sql/ is always embedded
		panic(err)
	}
	return sub
}
