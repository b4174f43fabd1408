package usecase

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"perturb/internal/domain"
	"perturb/internal/port"
)

// ProgressFunc reports corpus progress: files processed out of total,
// and the file currently being perturbed.
type ProgressFunc func(processed, total int, currentFile string)

// TransformUseCase applies a chain of transformers to sentences, line
// streams, or whole corpora. Transformers run in the order given, each
// consuming the previous one's output.
type TransformUseCase struct {
	transformers []port.Transformer
	walker       port.FileWalker
}

// NewTransformUseCase creates a transform use case. The walker may be
// nil when only Sentence or Stream is used.
func NewTransformUseCase(walker port.FileWalker, transformers ...port.Transformer) *TransformUseCase {
	return &TransformUseCase{
		transformers: transformers,
		walker:       walker,
	}
}

// Sentence runs the transformer chain over a single sentence.
func (u *TransformUseCase) Sentence(sentence string) (string, error) {
	out := sentence
	for _, tr := range u.transformers {
		var err error
		out, err = tr.Transform(out)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// Stream perturbs r line by line into w, returning total and changed
// line counts.
func (u *TransformUseCase) Stream(r io.Reader, w io.Writer) (total, changed int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	bw := bufio.NewWriter(w)

	for scanner.Scan() {
		line := scanner.Text()
		out, err := u.Sentence(line)
		if err != nil {
			return total, changed, err
		}
		total++
		if out != line {
			changed++
		}
		if _, err := fmt.Fprintln(bw, out); err != nil {
			return total, changed, err
		}
	}
	if err := scanner.Err(); err != nil {
		return total, changed, err
	}
	return total, changed, bw.Flush()
}

// Corpus perturbs every matching file under root into outDir, mirroring
// the relative layout. Per-file failures are collected, not fatal.
func (u *TransformUseCase) Corpus(root, outDir string, progress ProgressFunc) (domain.CorpusResult, error) {
	var result domain.CorpusResult

	if u.walker == nil {
		return result, fmt.Errorf("no file walker configured")
	}

	files, err := u.walker.Walk(root)
	if err != nil {
		return result, fmt.Errorf("failed to scan corpus: %w", err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return result, err
	}

	for i, f := range files {
		if progress != nil {
			progress(i, len(files), f.Path)
		}

		rel, err := filepath.Rel(absRoot, f.Path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", f.Path, err))
			continue
		}

		total, changed, err := u.transformFile(f.Path, filepath.Join(outDir, rel))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", rel, err))
			continue
		}

		result.FilesProcessed++
		result.LinesTotal += total
		result.LinesChanged += changed
	}

	if progress != nil {
		progress(len(files), len(files), "")
	}
	return result, nil
}

func (u *TransformUseCase) transformFile(src, dst string) (total, changed int, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, 0, err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return 0, 0, err
	}
	out, err := os.Create(dst)
	if err != nil {
		return 0, 0, err
	}

	total, changed, err = u.Stream(in, out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return total, changed, err
}
