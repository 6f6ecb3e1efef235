package http

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/stafflane/hradmin-backend-go/internal/handler/http/middleware"
	"github.com/stafflane/hradmin-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	UploadsDir string
}

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	cfg RouterConfig,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hradmin"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded employee photos
	if cfg.UploadsDir != "" {
		fileServer(r, "/uploads", http.Dir(cfg.UploadsDir))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/admin", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employee", func(r chi.Router) {
				r.Post("/add-employee", employeeHandler.CreateEmployee)
				r.Get("/all", employeeHandler.ListEmployees)
				r.Get("/search", employeeHandler.SearchEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)
				r.Put("/update-employee/{id}", employeeHandler.UpdateEmployee)
				r.Delete("/delete-employee/{id}", employeeHandler.DeleteEmployee)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/mark", attendanceHandler.Mark)
				r.Post("/mark-bulk", attendanceHandler.MarkBulk)
				r.Get("/date/{date}", attendanceHandler.GetDayView)
				r.Get("/download/{date}", attendanceHandler.DownloadDay)
				r.Get("/employee/{employeeId}", attendanceHandler.GetEmployeeHistory)
				r.Get("/stats", attendanceHandler.GetStats)
				r.Delete("/{id}", attendanceHandler.Delete)
			})
		})
	})

	return r
}

// fileServer mounts a static file handler under path, with directory listings
// disabled.
func fileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("fileServer does not permit URL parameters")
	}

	fs := http.StripPrefix(path, http.FileServer(neuteredFS{root}))
	r.Get(path+"/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}

type neuteredFS struct {
	fs http.FileSystem
}

func (n neuteredFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
