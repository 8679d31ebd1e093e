package webhttp

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/sir_venger/dropdir/internal/auth"
)

// requireAuth закрывает маршрут basic auth'ом: без корректной пары
// логин/пароль — 401 с challenge-заголовком, дальше запрос не идёт.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || !auth.Match(user, pass, s.Cfg.Username, s.Cfg.Password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="dropdir", charset="UTF-8"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestLogger пишет одну строку на запрос с коротким идентификатором.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		log.Printf("[%s] %s %s -> %d (%d bytes, %s)",
			id[:8], r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start))
	})
}

// recoverPanics — общий fallback: паника обработчика превращается в 500
// с текстом ошибки, сообщение дублируется в лог.
func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
			http.Error(w, fmt.Sprintf("internal error: %v", rec), http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
