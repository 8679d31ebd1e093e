package webhttp

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"path/filepath"

	"golang.org/x/net/webdav"
)

// browseHandler отдаёт сырое дерево каталога загрузок со стандартными
// directory-листингами: загрузки лежат плоско, но подкаталоги, созданные
// оператором руками, тоже доступны.
func (s *Server) browseHandler() http.Handler {
	return http.StripPrefix("/files", http.FileServer(http.Dir(s.Cfg.UploadDir)))
}

// davHandler поднимает WebDAV только на чтение поверх каталога загрузок.
// Записывающие методы закрыты, иначе клиент мог бы обойти санитизацию имён.
func (s *Server) davHandler() http.Handler {
	dav := &webdav.Handler{
		Prefix:     "/dav",
		FileSystem: webdav.Dir(s.Cfg.UploadDir),
		LockSystem: webdav.NewMemLS(),
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions, "PROPFIND":
		default:
			http.Error(w, "read-only", http.StatusMethodNotAllowed)
			return
		}

		dav.ServeHTTP(w, r)
	})
}

// healthStats — payload ответа /healthz.
type healthStats struct {
	OK         bool  `json:"ok"`
	Files      int   `json:"files"`
	TotalBytes int64 `json:"total_bytes"`
}

// health возвращает агрегированную статистику по каталогу загрузок.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	var (
		files int
		total int64
	)
	err := filepath.WalkDir(s.Cfg.UploadDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		files++
		total += info.Size()

		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(healthStats{OK: true, Files: files, TotalBytes: total}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
