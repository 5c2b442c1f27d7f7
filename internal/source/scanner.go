package source

import (
	"os"
	"path/filepath"
	"strings"
)

// ScanDir walks the ledger export directory and discovers all CSV and JSON
// export files. A missing directory yields no files, not an error.
func ScanDir(ledgerDir string) ([]DiscoveredFile, error) {
	info, err := os.Stat(ledgerDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(ledgerDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}

		var format Format
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			format = FormatCSV
		case ".json":
			format = FormatJSON
		default:
			return nil
		}

		name := d.Name()
		files = append(files, DiscoveredFile{
			Path:    path,
			Account: strings.TrimSuffix(name, filepath.Ext(name)),
			Format:  format,
		})
		return nil
	})

	return files, err
}

// CountAccounts returns the number of unique account files in a set of
// discovered files.
func CountAccounts(files []DiscoveredFile) int {
	seen := make(map[string]struct{})
	for _, f := range files {
		seen[f.Account] = struct{}{}
	}
	return len(seen)
}
