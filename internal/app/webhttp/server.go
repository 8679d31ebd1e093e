package webhttp

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sir_venger/dropdir/internal/config"
	"github.com/sir_venger/dropdir/internal/usecase/filesvc"
)

func init() {
	// Методы WebDAV, которых chi не знает из коробки.
	chi.RegisterMethod("PROPFIND")
}

type Server struct {
	Files filesvc.Service
	Cfg   *config.Settings

	tmpl *template.Template
}

// NewServer конструктор
func NewServer(cfg *config.Settings) (http.Handler, *Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, nil, err
	}

	srv := &Server{
		Files: filesvc.New(filesvc.Deps{
			Dir:         cfg.UploadDir,
			MaxFileSize: cfg.MaxFileSize,
			Extensions:  cfg.Extensions,
		}),
		Cfg:  cfg,
		tmpl: tmpl,
	}

	return srv.routes(), srv, nil
}

// routes регистрирует обработчики; файловые маршруты закрыты basic auth.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(recoverPanics)

	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	r.Get("/healthz", s.health)

	r.Group(func(pr chi.Router) {
		pr.Use(s.requireAuth)

		pr.Get("/", s.index)
		pr.Post("/upload", s.upload)
		pr.Get("/info/{filename}", s.info)
		pr.Get("/delete/{filename}", s.confirmDelete)
		pr.Post("/delete/{filename}", s.performDelete)

		browse := s.browseHandler()
		pr.Method(http.MethodGet, "/files/*", browse)
		pr.Method(http.MethodHead, "/files/*", browse)

		pr.Handle("/dav/*", s.davHandler())
		pr.Handle("/dav", s.davHandler())
	})

	return r
}
