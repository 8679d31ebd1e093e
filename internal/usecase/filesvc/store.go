package filesvc

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sir_venger/dropdir/internal/models"
)

// Store записывает один файл в каталог загрузок под именем
// "<unix-millis>-<санитизированное имя>". Лимит размера проверяется по ходу
// записи: превысивший лимит файл удаляется best-effort, а запрос получает
// понятную ошибку о лимите.
func (s *Files) Store(ctx context.Context, originalName string, r io.Reader) (models.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return models.StoredFile{}, err
	}

	if err := s.checkExtension(originalName); err != nil {
		return models.StoredFile{}, err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeName(originalName))
	path := filepath.Join(s.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return models.StoredFile{}, err
	}

	// Читаем на один байт больше лимита: если записано больше MaxFileSize,
	// значит часть превышает лимит.
	src := r
	if s.MaxFileSize > 0 {
		src = &io.LimitedReader{R: r, N: s.MaxFileSize + 1}
	}
	n, copyErr := io.Copy(f, src)
	closeErr := f.Close()

	if copyErr != nil {
		_ = os.Remove(path)
		return models.StoredFile{}, copyErr
	}
	if s.MaxFileSize > 0 && n > s.MaxFileSize {
		_ = os.Remove(path)
		return models.StoredFile{}, fmt.Errorf("%w: %q is over %d bytes", models.ErrFileTooLarge, originalName, s.MaxFileSize)
	}
	if closeErr != nil {
		_ = os.Remove(path)
		return models.StoredFile{}, closeErr
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.StoredFile{}, err
	}

	return models.StoredFile{
		Name:    name,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Path:    path,
	}, nil
}

// checkExtension сверяет расширение с allow-list; пустой список принимает всё.
func (s *Files) checkExtension(name string) error {
	if len(s.Extensions) == 0 {
		return nil
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	for _, allowed := range s.Extensions {
		if ext == allowed {
			return nil
		}
	}

	return fmt.Errorf("%w: %q (allowed: %s)", models.ErrExtensionNotAllowed, name, strings.Join(s.Extensions, ", "))
}
