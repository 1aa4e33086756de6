package fileutil

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func TestListDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	// Test directory structure:
	// tmpDir/
	//   paris (2).jpg
	//   paris (1).jpg
	//   plain.jpg
	//   subdir/
	//     nested (3).jpg
	files := []string{
		"paris (2).jpg",
		"paris (1).jpg",
		"plain.jpg",
		"subdir/nested (3).jpg",
	}
	for _, f := range files {
		path := filepath.Join(tmpDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("test content"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}

	result, err := ListDirectory(tmpDir)
	if err != nil {
		t.Fatalf("ListDirectory failed: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected non-fatal errors: %v", result.Errors)
	}

	want := []string{"paris (1).jpg", "paris (2).jpg", "plain.jpg"}
	if !reflect.DeepEqual(result.Names, want) {
		t.Errorf("Names = %v, want %v (sorted, no recursion)", result.Names, want)
	}
}

func TestListDirectoryIgnoresSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "paris (1).jpg")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(tmpDir, "paris (2).jpg")); err != nil {
		t.Fatal(err)
	}

	result, err := ListDirectory(tmpDir)
	if err != nil {
		t.Fatalf("ListDirectory failed: %v", err)
	}
	if len(result.Names) != 1 || result.Names[0] != "paris (1).jpg" {
		t.Errorf("Names = %v, want only the regular file", result.Names)
	}
}

func TestListDirectoryErrors(t *testing.T) {
	if _, err := ListDirectory(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for nonexistent directory")
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ListDirectory(file); err == nil {
		t.Error("expected error when path is not a directory")
	}
}
