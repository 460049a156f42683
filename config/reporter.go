package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/multierr"

	"fig2html/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates initialized empty reporter.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip")
	}
	if err != nil {
		return nil, fmt.Errorf("unable to create report: %w", err)
	}
	return &Report{entries: make(map[string]entry), file: f}, nil
}

// entry describes a single item scheduled for the report archive. Items
// referenced by path are read when the archive is finalized, items with
// inline data or a snapshot copy keep the content from the moment they
// were stored.
type entry struct {
	srcPath  string
	copyPath string
	addedAt  time.Time
	blob     []byte
}

// Report collects everything needed to troubleshoot a conversion and packs
// it into a single zip archive on Close.
// NOTE: not safe for concurrent use.
type Report struct {
	entries map[string]entry
	file    *os.File
}

// Close writes out the archive. Safe to call on nil receiver, which means
// no report has been requested.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.finalize()
	return multierr.Append(err, r.file.Close())
}

// Name returns the name of the underlying archive file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store schedules the file or directory at path to be archived under name.
// Content is read during finalization, absent paths are noted in the
// manifest but produce no archive entries.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}

	if old, exists := r.entries[name]; exists && old.srcPath != path {
		panic(fmt.Sprintf("conflicting report entry [%s]: was %s, now %s", name, old.srcPath, path))
	}

	e := entry{srcPath: path, copyPath: path}
	if p, err := filepath.Abs(path); err == nil {
		e.copyPath = p
	}
	r.entries[name] = e
}

// StoreData schedules binary data to be archived as a file under name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}

	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("conflicting report entry [%s]", name))
	}
	r.entries[name] = entry{blob: data, addedAt: time.Now()}
}

// StoreCopy snapshots the file or directory at path right away, so later
// modifications do not leak into the report. Names are versioned on
// collision making it safe to store under the same name many times.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}

	e := entry{srcPath: path, addedAt: time.Now()}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "f2h-r-")
	if err != nil {
		return err
	}

	switch {
	case info.Mode().IsRegular():
		if e.copyPath, err = snapshotFile(dir, abs, info.ModTime()); err != nil {
			return err
		}
	case info.Mode().IsDir():
		if err := snapshotDir(dir, abs); err != nil {
			return err
		}
		e.copyPath = dir
	}

	if _, exists := r.entries[name]; exists {
		name = fmt.Sprintf("%s-%d", name, e.addedAt.UnixNano())
	}
	r.entries[name] = e
	return nil
}

func snapshotFile(dir, src string, modTime time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(dir, filepath.Base(src))
	if err := os.WriteFile(dst, data, 0600); err != nil {
		return "", err
	}
	if err := os.Chtimes(dst, modTime, modTime); err != nil {
		return "", err
	}
	return dst, nil
}

func snapshotDir(dir, src string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			// links, sockets and such have no place in the report
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		_, err = snapshotFile(filepath.Dir(filepath.Join(dir, rel)), path, info.ModTime())
		return err
	})
}

// finalize assembles the archive, manifest first, then all stored items in
// manifest order.
func (r *Report) finalize() (err error) {
	arc := zip.NewWriter(r.file)
	defer func() {
		err = multierr.Append(err, arc.Close())
	}()

	names, manifest := buildManifest(r.entries)
	if err := archiveData(arc, "MANIFEST", time.Now(), manifest); err != nil {
		return err
	}

	for _, name := range names {
		e := r.entries[name]

		if len(e.blob) > 0 {
			if err := archiveData(arc, name, e.addedAt, e.blob); err != nil {
				return err
			}
			continue
		}

		info, err := os.Stat(e.copyPath)
		if err != nil {
			// stays in the manifest only
			continue
		}
		switch {
		case info.Mode().IsRegular():
			if err := archiveFile(arc, name, e.copyPath, info.ModTime()); err != nil {
				return err
			}
		case info.Mode().IsDir():
			if err := archiveDir(arc, name, e.copyPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildManifest(entries map[string]entry) ([]string, []byte) {
	if len(entries) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := time.Now()

	var buf bytes.Buffer
	for _, k := range keys {
		e := entries[k]
		stamp := e.addedAt
		if stamp.IsZero() {
			stamp = now
		}
		fmt.Fprintf(&buf, "%s\t%s\t%s : %s\n", stamp.UTC().Format(time.UnixDate), k, e.srcPath, e.copyPath)
	}
	return keys, buf.Bytes()
}

func archiveData(dst *zip.Writer, name string, t time.Time, data []byte) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func archiveFile(dst *zip.Writer, name, path string, t time.Time) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}

func archiveDir(dst *zip.Writer, name, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		return archiveFile(dst, filepath.ToSlash(filepath.Join(name, rel)), path, info.ModTime())
	})
}
