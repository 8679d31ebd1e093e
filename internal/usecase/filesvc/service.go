package filesvc

import (
	"context"
	"io"

	"github.com/sir_venger/dropdir/internal/models"
)

// Service объединяет операции над каталогом загрузок.
type Service interface {
	Store(ctx context.Context, originalName string, r io.Reader) (models.StoredFile, error)
	List(ctx context.Context) ([]models.StoredFile, error)
	Stat(ctx context.Context, name string) (models.StoredFile, error)
	Delete(ctx context.Context, name string) error
}

type Deps struct {
	// Dir — абсолютный путь каталога загрузок.
	Dir string
	// MaxFileSize — лимит размера одного файла в байтах.
	MaxFileSize int64
	// Extensions — allow-list расширений в нижнем регистре без точки;
	// пустой список принимает любые файлы.
	Extensions []string
}

type Files struct {
	Deps
}

// New конструирует сервис файлов с заданными зависимостями.
func New(deps Deps) *Files {
	return &Files{Deps: deps}
}

var _ Service = (*Files)(nil)
