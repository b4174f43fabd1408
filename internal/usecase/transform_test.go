package usecase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"perturb/internal/adapter/fs"
	"perturb/internal/adapter/mutate"
)

type suffixer struct{ suffix string }

func (s suffixer) Transform(sentence string) (string, error) {
	return sentence + s.suffix, nil
}

func TestTransformUseCase_Sentence_ChainsInOrder(t *testing.T) {
	uc := NewTransformUseCase(nil, mutate.NewLowercase(), suffixer{" ok"})

	out, err := uc.Sentence("HELLO World")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello world ok" {
		t.Errorf("chain applied out of order: %q", out)
	}
}

func TestTransformUseCase_Stream(t *testing.T) {
	uc := NewTransformUseCase(nil, mutate.NewLowercase())

	var out strings.Builder
	total, changed, err := uc.Stream(strings.NewReader("First LINE\nsecond line\nTHIRD\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("expected 3 lines, got %d", total)
	}
	if changed != 2 {
		t.Errorf("expected 2 changed lines, got %d", changed)
	}
	if out.String() != "first line\nsecond line\nthird\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestTransformUseCase_Corpus(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	write := func(rel, content string) {
		path := filepath.Join(inDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.txt", "HELLO\nWORLD\n")
	write("sub/b.txt", "already lower\n")
	write("notes.md", "SKIPPED\n")

	walker := fs.NewWalker([]string{"**/*.txt"}, nil)
	uc := NewTransformUseCase(walker, mutate.NewLowercase())

	var calls int
	result, err := uc.Corpus(inDir, outDir, func(processed, total int, currentFile string) {
		calls++
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FilesProcessed != 2 {
		t.Errorf("expected 2 files processed, got %d", result.FilesProcessed)
	}
	if result.LinesTotal != 3 {
		t.Errorf("expected 3 lines total, got %d", result.LinesTotal)
	}
	if result.LinesChanged != 2 {
		t.Errorf("expected 2 lines changed, got %d", result.LinesChanged)
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if calls == 0 {
		t.Error("progress callback was never invoked")
	}

	data, err := os.ReadFile(filepath.Join(outDir, "a.txt"))
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if string(data) != "hello\nworld\n" {
		t.Errorf("unexpected perturbed content: %q", data)
	}

	if _, err := os.Stat(filepath.Join(outDir, "sub", "b.txt")); err != nil {
		t.Errorf("nested output file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "notes.md")); !os.IsNotExist(err) {
		t.Error("excluded file should not be written")
	}
}

func TestTransformUseCase_Corpus_NoWalker(t *testing.T) {
	uc := NewTransformUseCase(nil, mutate.NewLowercase())
	if _, err := uc.Corpus(t.TempDir(), t.TempDir(), nil); err == nil {
		t.Error("expected an error without a walker")
	}
}
