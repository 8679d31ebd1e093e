package webhttp

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/sir_venger/dropdir/internal/models"
	"github.com/sir_venger/dropdir/pkg/httperrors"
)

// upload стримит multipart-части на диск. Части без имени файла (обычные
// поля формы) пропускаются; превышение числа или размера файлов обрывает
// запрос ошибкой клиента до выдачи редиректа.
func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	mr, err := r.MultipartReader()
	if err != nil {
		http.Error(w, "read multipart: "+err.Error(), http.StatusBadRequest)
		return
	}

	saved := 0
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			http.Error(w, "read multipart: "+err.Error(), http.StatusBadRequest)
			return
		}

		if part.FileName() == "" {
			_ = part.Close()
			continue
		}

		if saved >= s.Cfg.MaxFiles {
			_ = part.Close()
			httperrors.Write(w, fmt.Errorf("%w: limit is %d per request", models.ErrTooManyFiles, s.Cfg.MaxFiles))
			return
		}

		stored, err := s.Files.Store(r.Context(), part.FileName(), part)
		_ = part.Close()
		if err != nil {
			httperrors.Write(w, err)
			return
		}

		log.Printf("stored %s (%d bytes)", stored.Name, stored.Size)
		saved++
	}

	if saved == 0 {
		httperrors.Write(w, models.ErrNoFiles)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
