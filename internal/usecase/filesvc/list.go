package filesvc

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/sir_venger/dropdir/internal/models"
)

// List перечисляет файлы верхнего уровня каталога загрузок, свежие по mtime
// первыми. Записи, исчезнувшие между ReadDir и stat (гонка с параллельным
// удалением), молча пропускаются.
func (s *Files) List(ctx context.Context) ([]models.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}

	out := make([]models.StoredFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, models.StoredFile{
			Name:    e.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Path:    filepath.Join(s.Dir, e.Name()),
		})
	}

	// Стабильная сортировка: при равных mtime сохраняется порядок обхода.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ModTime.After(out[j].ModTime)
	})

	return out, nil
}

// Stat возвращает метаданные одного файла. От клиентского имени берётся только
// базовая часть, поэтому выйти за пределы каталога загрузок нельзя.
func (s *Files) Stat(ctx context.Context, name string) (models.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return models.StoredFile{}, err
	}

	name = filepath.Base(name)
	path := filepath.Join(s.Dir, name)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.StoredFile{}, models.ErrNotFound
		}
		return models.StoredFile{}, err
	}
	if info.IsDir() {
		return models.StoredFile{}, models.ErrNotFound
	}

	return models.StoredFile{
		Name:    name,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Path:    path,
	}, nil
}

// Delete удаляет файл по базовому имени. Отсутствующий файл — models.ErrNotFound.
func (s *Files) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name = filepath.Base(name)
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.ErrNotFound
		}
		return err
	}

	return nil
}
