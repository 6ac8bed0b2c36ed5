package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndDeleteFile(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, "/uploads"); err != nil {
		t.Fatalf("init: %v", err)
	}

	objectURL, err := SaveFile("payments", []byte("data"), ".png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(objectURL, "/uploads/payments/") {
		t.Fatalf("objectURL = %q, want /uploads/payments/ prefix", objectURL)
	}
	if !strings.HasSuffix(objectURL, ".png") {
		t.Fatalf("objectURL = %q, want .png suffix", objectURL)
	}

	onDisk := filepath.Join(dir, "payments", filepath.Base(objectURL))
	if _, err := os.Stat(onDisk); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	if err := DeleteFile(objectURL); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Fatal("file should be removed")
	}
}

func TestDeleteFileRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, "/uploads"); err != nil {
		t.Fatalf("init: %v", err)
	}

	cases := []string{
		"/uploads/../etc/passwd",
		"/uploads/../../secret",
		"/elsewhere/file.png",
		"/uploads/..",
	}
	for _, objectURL := range cases {
		if err := DeleteFile(objectURL); !errors.Is(err, ErrInvalidObjectURL) {
			t.Fatalf("DeleteFile(%q) = %v, want ErrInvalidObjectURL", objectURL, err)
		}
	}
}

func TestSaveFileRequiresInit(t *testing.T) {
	baseDir = ""
	t.Cleanup(func() { baseDir = "" })

	if _, err := SaveFile("payments", []byte("data"), ".png"); err == nil {
		t.Fatal("save without init should fail")
	}
}
