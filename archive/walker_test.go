package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// createZip writes archive with given entries, names ending with "/" become
// directories.
func createZip(t *testing.T, names ...string) string {
	t.Helper()

	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, name := range names {
		if name[len(name)-1] == '/' {
			hdr := &zip.FileHeader{Name: name}
			hdr.SetMode(os.ModeDir | 0755)
			if _, err := w.CreateHeader(hdr); err != nil {
				t.Fatalf("Failed to create directory: %v", err)
			}
			continue
		}
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", name, err)
		}
		if _, err := fw.Write([]byte("content of " + name)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return zipPath
}

func collect(t *testing.T, zipPath string, filter Filter) []string {
	t.Helper()

	var visited []string
	err := Walk(zipPath, filter, func(archive string, file *zip.File) error {
		if archive != zipPath {
			t.Errorf("archive = %s, want %s", archive, zipPath)
		}
		visited = append(visited, file.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return visited
}

func TestWalk(t *testing.T) {
	zipPath := createZip(t,
		"ui/",
		"ui/main.xml",
		"ui/dialogs/about.XML",
		"ui/readme.txt",
		"Other/panel.xml",
		"styles.json",
	)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"everything", Filter{}, []string{"ui/main.xml", "ui/dialogs/about.XML", "ui/readme.txt", "Other/panel.xml", "styles.json"}},
		{"prefix", Filter{Prefix: "ui/"}, []string{"ui/main.xml", "ui/dialogs/about.XML", "ui/readme.txt"}},
		{"extension", Filter{Extensions: []string{".xml"}}, []string{"ui/main.xml", "ui/dialogs/about.XML", "Other/panel.xml"}},
		{"prefix and extension", Filter{Prefix: "ui/dialogs/", Extensions: []string{".xml", ".ui"}}, []string{"ui/dialogs/about.XML"}},
		{"case sensitive prefix", Filter{Prefix: "other/"}, nil},
		{"no match", Filter{Prefix: "nonexistent/"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, zipPath, tt.filter)
			if !slices.Equal(got, tt.want) {
				t.Errorf("visited %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	zipPath := createZip(t, "a.xml", "b.xml", "c.xml")

	var visited int
	stopErr := errors.New("stop walking")
	err := Walk(zipPath, Filter{}, func(string, *zip.File) error {
		visited++
		if visited == 2 {
			return stopErr
		}
		return nil
	})

	if !errors.Is(err, stopErr) {
		t.Errorf("Walk() error = %v, want %v", err, stopErr)
	}
	if visited != 2 {
		t.Errorf("visited %d files, want 2 (early termination)", visited)
	}
}

func TestWalk_UnsafePaths(t *testing.T) {
	zipPath := createZip(t, "good.xml", "../evil.xml")

	var visited int
	err := Walk(zipPath, Filter{}, func(string, *zip.File) error {
		visited++
		return nil
	})
	if err == nil {
		t.Error("expected error for unsafe entry")
	}
	if visited != 0 {
		t.Errorf("no entries must be visited in unsafe archive, visited %d", visited)
	}
}

func TestWalk_InvalidArchive(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		if err := Walk("/nonexistent/file.zip", Filter{}, nil); err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("invalid zip file", func(t *testing.T) {
		invalidZip := filepath.Join(t.TempDir(), "invalid.zip")
		if err := os.WriteFile(invalidZip, []byte("not a zip file"), 0644); err != nil {
			t.Fatalf("Failed to create invalid zip: %v", err)
		}
		if err := Walk(invalidZip, Filter{}, nil); err == nil {
			t.Error("Expected error for invalid zip file")
		}
	})
}

func TestReadFile(t *testing.T) {
	zipPath := createZip(t, "ui/main.xml")

	err := Walk(zipPath, Filter{}, func(_ string, file *zip.File) error {
		data, err := ReadFile(file)
		if err != nil {
			return err
		}
		if string(data) != "content of ui/main.xml" {
			t.Errorf("content = %q", data)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
}

func TestIsSafePath(t *testing.T) {
	tests := map[string]bool{
		"ui/main.xml":       true,
		"a..b/c.xml":        true,
		"../up.xml":         false,
		"ui/../../up.xml":   false,
		"/abs/path.xml":     false,
		`\windows\path.xml`: false,
		`C:\windows\evil`:   false,
		`ui\..\..\evil.xml`: false,
	}
	for name, want := range tests {
		if got := isSafePath(name); got != want {
			t.Errorf("isSafePath(%q) = %v, want %v", name, got, want)
		}
	}
}
