package webhttp

import (
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"

	"github.com/sir_venger/dropdir/pkg/httperrors"
)

type infoData struct {
	Name     string
	SizeMB   string
	Bytes    string
	ModTime  string
	Path     string
	OS       string
	Arch     string
	Hostname string
	Client   string
}

// info отдаёт метаданные одного файла плюс информацию о хосте и клиенте.
// Имя файла урезается до базового в сервисе, поэтому traversal невозможен.
func (s *Server) info(w http.ResponseWriter, r *http.Request) {
	f, err := s.Files.Stat(r.Context(), chi.URLParam(r, "filename"))
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	hostname, _ := os.Hostname()
	s.render(w, "info.html", infoData{
		Name:     f.Name,
		SizeMB:   fmt.Sprintf("%.2f MB", float64(f.Size)/(1024*1024)),
		Bytes:    humanize.Comma(f.Size),
		ModTime:  f.ModTime.Format("2006-01-02 15:04:05 MST"),
		Path:     f.Path,
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		Hostname: hostname,
		Client:   r.RemoteAddr,
	})
}
