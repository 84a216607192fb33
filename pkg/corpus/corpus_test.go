package corpus

import (
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/spf13/afero"
)

func TestDocument_Lines(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want []string
	}{
		{
			name: "with_headline",
			doc:  Document{Headline: "శీర్షిక", Body: []string{"ఒకటి", "రెండు"}},
			want: []string{"HEADLINE: శీర్షిక", "ఒకటి", "రెండు"},
		},
		{
			name: "blank_headline",
			doc:  Document{Headline: "  ", Body: []string{"ఒకటి"}},
			want: []string{"ఒకటి"},
		},
		{
			name: "sectioned",
			doc:  Document{Headline: "శీర్షిక", Body: []string{"ఒకటి"}, Sectioned: true},
			want: []string{"HEADLINE: శీర్షిక", "ARTICLE BODY:", "ఒకటి"},
		},
		{
			name: "sectioned_without_headline",
			doc:  Document{Body: []string{"ఒకటి"}, Sectioned: true},
			want: []string{"ఒకటి"},
		},
		{
			name: "empty",
			doc:  Document{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.Lines(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocument_String(t *testing.T) {
	doc := &Document{Headline: "శీర్షిక", Body: []string{"ఒకటి", "రెండు"}}
	if got := doc.String(); got != "HEADLINE: శీర్షిక\nఒకటి\nరెండు" {
		t.Errorf("String() = %q", got)
	}
	if doc.Empty() {
		t.Error("Empty() = true")
	}
}

func TestStore_NextPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/corpus"

	s := NewStore(fs, dir)
	got, err := s.NextPath()
	if err != nil {
		t.Fatalf("NextPath() error = %v", err)
	}
	if got != filepath.Join(dir, "raw_telugu_1.txt") {
		t.Errorf("NextPath() on missing dir = %q", got)
	}

	for _, name := range []string{
		"raw_telugu_1.txt",
		"raw_telugu_7.txt",
		"raw_telugu_3.txt",
		"raw_telugu_99.txt.bak",
		"raw_telugu_x.txt",
		"notes.txt",
	} {
		if err := afero.WriteFile(fs, filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := fs.MkdirAll(filepath.Join(dir, "raw_telugu_50.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err = s.NextPath()
	if err != nil {
		t.Fatalf("NextPath() error = %v", err)
	}
	if got != filepath.Join(dir, "raw_telugu_8.txt") {
		t.Errorf("NextPath() = %q, want raw_telugu_8.txt", got)
	}
}

func TestStore_Save(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStore(fs, "out")

	doc := &Document{Headline: "శీర్షిక", Body: []string{"వార్త ఇక్కడ"}}
	path, err := s.Save(doc)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if path != filepath.Join("out", "raw_telugu_1.txt") {
		t.Errorf("path = %q", path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != doc.String() {
		t.Errorf("file content = %q, want %q", data, doc.String())
	}

	path2, err := s.Save(doc)
	if err != nil {
		t.Fatal(err)
	}
	if path2 != filepath.Join("out", "raw_telugu_2.txt") {
		t.Errorf("second path = %q", path2)
	}
}

func TestStore_SaveConcurrent(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStore(fs, "/c")
	doc := &Document{Body: []string{"లైన్"}}

	const n = 20
	paths := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := s.Save(doc)
			if err != nil {
				t.Error(err)
				return
			}
			paths <- p
		}()
	}
	wg.Wait()
	close(paths)

	seen := make(map[string]bool)
	for p := range paths {
		if seen[p] {
			t.Errorf("path %q allocated twice", p)
		}
		seen[p] = true
	}
	if len(seen) != n {
		t.Errorf("got %d distinct files, want %d", len(seen), n)
	}
}

func TestStore_ReadOnly(t *testing.T) {
	s := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/ro")
	if _, err := s.Save(&Document{Body: []string{"x"}}); err == nil {
		t.Error("expected error on read-only filesystem")
	}
}
