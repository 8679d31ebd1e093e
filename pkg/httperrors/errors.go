package httperrors

import (
	"errors"
	"net/http"

	"github.com/sir_venger/dropdir/internal/models"
)

// Write переводит ошибку доменного уровня в HTTP-статус с текстом ошибки.
func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrNoFiles),
		errors.Is(err, models.ErrTooManyFiles),
		errors.Is(err, models.ErrFileTooLarge),
		errors.Is(err, models.ErrExtensionNotAllowed):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
