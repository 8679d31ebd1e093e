package models

import "time"

// StoredFile описывает один файл в каталоге загрузок. Все атрибуты берутся
// напрямую из файловой системы, отдельного индекса нет.
type StoredFile struct {
	Name    string
	Size    int64
	ModTime time.Time
	Path    string
}
