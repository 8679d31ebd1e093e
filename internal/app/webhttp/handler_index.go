package webhttp

import (
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sir_venger/dropdir/pkg/httperrors"
)

type indexEntry struct {
	Name     string
	Size     string
	Uploaded string
}

type indexData struct {
	Entries     []indexEntry
	MaxFiles    int
	MaxFileSize string
	Extensions  string
}

// index отдаёт список файлов, свежие по времени изменения сверху.
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	files, err := s.Files.List(r.Context())
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	entries := make([]indexEntry, 0, len(files))
	for _, f := range files {
		entries = append(entries, indexEntry{
			Name:     f.Name,
			Size:     humanize.IBytes(uint64(f.Size)),
			Uploaded: humanize.Time(f.ModTime),
		})
	}

	s.render(w, "index.html", indexData{
		Entries:     entries,
		MaxFiles:    s.Cfg.MaxFiles,
		MaxFileSize: humanize.IBytes(uint64(s.Cfg.MaxFileSize)),
		Extensions:  strings.Join(s.Cfg.Extensions, ", "),
	})
}
