package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

func TestBuildZipRoundTrip(t *testing.T) {
	artifacts := []Artifact{
		{Name: "1_전기장판 추천.html", Content: []byte("<h1>본문</h1>")},
		{Name: "2_error.txt", Content: []byte("generation failed: timeout")},
		{Name: "3_무선청소기.html", Content: []byte("<p>내용</p>")},
	}

	data, err := BuildZip(artifacts)
	if err != nil {
		t.Fatalf("BuildZip() error = %v", err)
	}

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}

	if got, want := len(r.File), len(artifacts); got != want {
		t.Fatalf("entry count = %d, want %d", got, want)
	}

	for i, f := range r.File {
		if f.Name != artifacts[i].Name {
			t.Errorf("entry %d name = %q, want %q", i, f.Name, artifacts[i].Name)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %q: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %q: %v", f.Name, err)
		}
		if !bytes.Equal(content, artifacts[i].Content) {
			t.Errorf("entry %q content = %q, want %q", f.Name, content, artifacts[i].Content)
		}
	}
}

func TestBuildZipEmpty(t *testing.T) {
	data, err := BuildZip(nil)
	if err != nil {
		t.Fatalf("BuildZip(nil) error = %v", err)
	}
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	if len(r.File) != 0 {
		t.Errorf("entry count = %d, want 0", len(r.File))
	}
}
