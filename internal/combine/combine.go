// Package combine concatenates the text files under a directory into one
// output file, each preceded by a comment header naming its path. A
// standalone utility: it shares nothing with the scaling engine.
package combine

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Options configures a combine run.
type Options struct {
	Root string   // directory to scan recursively
	Out  string   // output file path
	Exts []string // lowercase extensions with leading dot
}

// DefaultOptions returns the stock combine settings.
func DefaultOptions() Options {
	return Options{
		Root: ".",
		Out:  "combined.txt",
		Exts: []string{".go", ".md", ".yaml", ".yml", ".txt"},
	}
}

// Validate checks the options for missing or unusable values.
func (o *Options) Validate() error {
	if o.Root == "" {
		return fmt.Errorf("scan directory is required")
	}
	info, err := os.Stat(o.Root)
	if err != nil {
		return fmt.Errorf("scan directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scan path %q is not a directory", o.Root)
	}
	if o.Out == "" {
		return fmt.Errorf("output file is required")
	}
	if len(o.Exts) == 0 {
		return fmt.Errorf("at least one extension is required")
	}
	return nil
}

// Run walks the root, collects matching text files in lexical order and
// writes them into the output file. It returns the number of files
// combined. Dot-directories, the output file itself and binary-looking
// files (containing NUL bytes) are skipped.
func Run(o Options) (int, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	outAbs, err := filepath.Abs(o.Out)
	if err != nil {
		return 0, fmt.Errorf("resolve output path: %w", err)
	}

	var b strings.Builder
	count := 0

	walkErr := filepath.WalkDir(o.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != o.Root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !hasExt(path, o.Exts) {
			return nil
		}
		if abs, err := filepath.Abs(path); err == nil && abs == outAbs {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if bytes.IndexByte(data, 0) >= 0 {
			return nil // binary despite its extension
		}

		rel, err := filepath.Rel(o.Root, path)
		if err != nil {
			rel = path
		}

		if count > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("// ----- %s -----\n", filepath.ToSlash(rel)))
		b.Write(data)
		if len(data) == 0 || data[len(data)-1] != '\n' {
			b.WriteString("\n")
		}
		count++
		return nil
	})
	if walkErr != nil {
		return 0, walkErr
	}

	if err := os.WriteFile(o.Out, []byte(b.String()), 0644); err != nil {
		return 0, fmt.Errorf("write output file: %w", err)
	}
	return count, nil
}

func hasExt(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
