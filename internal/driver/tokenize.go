package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"nvgtls/internal/diag"
	"nvgtls/internal/lexer"
	"nvgtls/internal/source"
	"nvgtls/internal/token"
)

// TokenizeResult содержит результат токенизации одного файла
type TokenizeResult struct {
	Path    string
	URI     source.FileID
	Content string
	Tokens  []token.Token
	Bag     *diag.Bag
}

// TokenizeFile reads path and tokenizes it.
func TokenizeFile(path string, maxDiagnostics int) (*TokenizeResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	uri := source.PathToURI(abs)
	content := string(data)
	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.Tokenize(content, uri, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &TokenizeResult{
		Path:    path,
		URI:     uri,
		Content: content,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

// TokenizeFiles токенизирует файлы параллельно; порядок результатов совпадает с paths.
// Первая ошибка чтения отменяет оставшуюся работу.
func TokenizeFiles(ctx context.Context, paths []string, maxDiagnostics, jobs int) ([]*TokenizeResult, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*TokenizeResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := TokenizeFile(path, maxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
