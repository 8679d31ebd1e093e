package webhttp

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sir_venger/dropdir/internal/models"
	"github.com/sir_venger/dropdir/pkg/httperrors"
)

// confirmDelete отдаёт страницу подтверждения. Отдельный GET-шаг нужен,
// чтобы prefetch ссылок или случайный переход не удалял файлы.
func (s *Server) confirmDelete(w http.ResponseWriter, r *http.Request) {
	f, err := s.Files.Stat(r.Context(), chi.URLParam(r, "filename"))
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	s.render(w, "confirm_delete.html", f)
}

// performDelete удаляет файл и уводит на список. Уже исчезнувший файл —
// не ошибка, только предупреждение в логе.
func (s *Server) performDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	if err := s.Files.Delete(r.Context(), name); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			httperrors.Write(w, err)
			return
		}
		log.Printf("delete %s: already gone", name)
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
