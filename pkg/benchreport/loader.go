package benchreport

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type Loaded struct {
	Path   string
	Result Result
}

// LoadDir collects every result file under dir (recursively). Files
// that are not valid result JSON are skipped so one stray file does not
// hide the rest of a results directory.
func LoadDir(dir string) ([]Loaded, error) {
	var out []Loaded
	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".json") {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		var r Result
		if err := json.NewDecoder(f).Decode(&r); err != nil {
			return nil
		}
		if r.Validate() != nil {
			return nil
		}
		out = append(out, Loaded{Path: path, Result: r})
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, err
	}
	return out, nil
}
