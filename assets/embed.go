// assets/embed.go
//
// Bundled game resources:
//   - start.txt:    root words, one per line.
//   - dict/*.txt:   per-language dictionaries used by the spell checker
//                   (file name is the language code, e.g. en.txt).
//   - sql/*.sql:    SQLite migrations for the dictionary table.

package assets

import (
	"bufio"
	"embed"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed start.txt dict/*.txt sql/*.sql
var FS embed.FS

// ReadLines reads one word per line, lowercasing and trimming each entry.
// Blank lines and lines starting with '#' are skipped.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// RootWords returns the bundled root word list.
func RootWords() ([]string, error) {
	return readLines("start.txt")
}

// Dictionaries returns the bundled dictionaries keyed by language code.
func Dictionaries() (map[string][]string, error) {
	entries, err := fs.ReadDir(FS, "dict")
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".txt" {
			continue
		}
		list, err := readLines(path.Join("dict", e.Name()))
		if err != nil {
			return nil, err
		}
		out[strings.TrimSuffix(e.Name(), ".txt")] = list
	}
	return out, nil
}

// Migration is a named SQL script.
type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the bundled SQL migrations in lexical order.
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(FS, "sql")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, n := range names {
		b, err := FS.ReadFile(path.Join("sql", n))
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Name: n, SQL: string(b)})
	}
	return out, nil
}
