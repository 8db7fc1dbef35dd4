package fetch

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
)

// systemFontDirs are the directories scanned for font files.
var systemFontDirs = []string{
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/System/Library/Fonts",
	"/Library/Fonts",
	"C:\\Windows\\Fonts",
}

// FontDB is a lazily-initialized index of system font files, shared
// across all vector decode calls. It is an explicit service value —
// injected into fetch.Service — rather than an ambient global, so tests
// can run against an empty or synthetic database; SharedFontDB returns
// the process-wide instance for production use.
type FontDB struct {
	once  sync.Once
	dirs  []string
	faces []string
}

var sharedFontDB = &FontDB{}

// SharedFontDB returns the process-wide font database.
func SharedFontDB() *FontDB {
	return sharedFontDB
}

// NewFontDB creates a database scanning the given directories instead of
// the system default locations.
func NewFontDB(dirs ...string) *FontDB {
	return &FontDB{dirs: dirs}
}

// Load scans for font files on first call and returns the face paths.
// Subsequent calls return the cached index.
func (db *FontDB) Load() []string {
	db.once.Do(func() {
		dirs := db.dirs
		if dirs == nil {
			dirs = systemFontDirs
		}
		for _, dir := range dirs {
			filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
				if err != nil || d.IsDir() {
					return nil // unreadable system dirs are expected
				}
				switch strings.ToLower(filepath.Ext(path)) {
				case ".ttf", ".otf", ".ttc", ".woff", ".woff2":
					db.faces = append(db.faces, path)
				}
				return nil
			})
		}
		tracer().Debugf("font database loaded, %d faces", len(db.faces))
	})
	return db.faces
}
