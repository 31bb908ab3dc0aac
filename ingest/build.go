// SPDX-License-Identifier: MIT

package ingest

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/lvsum/textmodel"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// Loader reads documents through an afs.Service.
type Loader struct {
	fs     afs.Service
	parser Parser
}

// NewLoader returns a Loader for parser backed by the default afs service.
func NewLoader(parser Parser) *Loader {
	return &Loader{fs: afs.New(), parser: parser}
}

// normalizeLocation turns relative and absolute OS paths into file URLs and
// leaves other URLs untouched.
func normalizeLocation(location string) (string, error) {
	norm := location
	if url.Scheme(norm, "") == "" && url.IsRelative(norm) {
		abs, err := filepath.Abs(norm)
		if err != nil {
			return "", fmt.Errorf("abs %q: %w", location, err)
		}
		norm = abs
	}
	if url.Scheme(norm, "") == "" {
		norm = url.ToFileURL(norm)
	}

	return norm, nil
}

// BuildFromPath reads a file (one Document, hidden or not) or the regular,
// non-hidden files of a directory (one Document each, sorted by name). The set is named
// after the last path element.
func (l *Loader) BuildFromPath(ctx context.Context, location string) (*textmodel.DocumentSet, error) {
	norm, err := normalizeLocation(location)
	if err != nil {
		return nil, fmt.Errorf("BuildFromPath: %w", err)
	}
	ok, err := l.fs.Exists(ctx, norm)
	if err != nil || !ok {
		return nil, fmt.Errorf("BuildFromPath(%q): %w", location, ErrPathNotFound)
	}
	root, err := l.fs.Object(ctx, norm)
	if err != nil {
		return nil, fmt.Errorf("BuildFromPath(%q): %w", location, err)
	}

	// A named file is read whatever its name; hidden entries are skipped
	// only in directory listings.
	files := []storage.Object{root}
	if root.IsDir() {
		objects, err := l.fs.List(ctx, norm)
		if err != nil {
			return nil, fmt.Errorf("BuildFromPath(%q): %w", location, err)
		}
		files = make([]storage.Object, 0, len(objects))
		for _, o := range objects {
			if o.IsDir() || strings.HasPrefix(o.Name(), ".") {
				continue
			}
			files = append(files, o)
		}
	}
	sort.Slice(files, func(a, b int) bool { return files[a].Name() < files[b].Name() })

	b := textmodel.NewBuilder(filepath.Base(strings.TrimRight(location, "/")))
	for _, f := range files {
		data, err := l.fs.Download(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("BuildFromPath: download %s: %w", f.URL(), err)
		}
		sentences, err := l.parser.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("BuildFromPath: %s: %w", f.Name(), err)
		}
		b.AddDocument(sentences...)
	}

	return b.Build(), nil
}
