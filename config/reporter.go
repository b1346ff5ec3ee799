package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	fixzip "github.com/hidez8891/zip"

	"flexstyle/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates initialized empty reporter.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	r := &Report{entries: make(map[string]entry)}

	if f, err := os.Create(conf.Destination); err == nil {
		r.file = f
	} else if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err == nil {
		r.file = f
	} else {
		return nil, fmt.Errorf("unable to create report: %w", err)
	}
	return r, nil
}

type entry struct {
	original string    // path as it was given to us
	actual   string    // absolute path, empty for data entries
	stamp    time.Time // when data was stored
	data     []byte
}

// Report accumulates information necessary to prepare full debug report.
// All methods are safe to call on nil Report, which means no report has been
// requested. NOTE: presently not to be used concurrently!
type Report struct {
	entries map[string]entry
	file    *os.File
}

// Close finalizes debug report.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	defer r.file.Close()
	return r.finalize()
}

// Name returns name of underlying file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store remembers file to be put in the final archive when report is closed.
// Used for files which are still being written to, like logs.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	e := entry{original: path, actual: path}
	if p, err := filepath.Abs(path); err == nil {
		e.actual = p
	}
	r.entries[r.uniqueName(name)] = e
}

// StoreData saves binary data to be put in the final archive as a file under
// requested name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	r.entries[r.uniqueName(name)] = entry{data: slices.Clone(data), stamp: time.Now()}
}

// StoreCopy makes a copy (at the time of a call) of the file content so later
// modifications do not affect the report.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to store copy of %s: %w", path, err)
	}
	e := entry{original: path, data: data, stamp: time.Now()}
	if info, err := os.Stat(path); err == nil {
		e.stamp = info.ModTime()
	}
	r.entries[r.uniqueName(name)] = e
	return nil
}

// uniqueName versions the name to avoid collisions, so it is safe to put the
// same content into report multiple times.
func (r *Report) uniqueName(name string) string {
	if _, exists := r.entries[name]; !exists {
		return name
	}
	for i := 1; ; i++ {
		versioned := fmt.Sprintf("%s-%d", name, i)
		if _, exists := r.entries[versioned]; !exists {
			return versioned
		}
	}
}

// finalize creates the final archive (report) with all previously stored items.
func (r *Report) finalize() error {
	arc := fixzip.NewWriter(r.file)

	names, manifest := prepareManifest(r.entries, time.Now())
	if err := saveFile(arc, "MANIFEST", time.Now(), manifest); err != nil {
		return err
	}

	// in the same order as in manifest
	for _, name := range names {
		e := r.entries[name]
		if e.actual == "" {
			if err := saveFile(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}
		if err := saveExisting(arc, name, e.actual); err != nil {
			return err
		}
	}
	return arc.Close()
}

// saveExisting puts regular file into archive, absent files are ignored.
func saveExisting(dst *fixzip.Writer, name, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return saveFile(dst, name, info.ModTime(), f)
}

func prepareManifest(entries map[string]entry, now time.Time) ([]string, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		e := entries[k]
		stamp := e.stamp
		if stamp.IsZero() {
			stamp = now
		}
		fmt.Fprintf(buf, "%s\t%s\t%s : %s\n", stamp.UTC().Format(time.UnixDate), k, e.original, e.actual)
	}
	return keys, buf
}

func saveFile(dst *fixzip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&fixzip.FileHeader{Name: name, Method: fixzip.Deflate, Modified: t})
	if err != nil {
		return fmt.Errorf("unable to add %s to report: %w", name, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("unable to add %s to report: %w", name, err)
	}
	return nil
}
