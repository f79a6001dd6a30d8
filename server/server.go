package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/podsni/TMDB-media/pkg/jikan"
	"github.com/podsni/TMDB-media/pkg/logger"
	"github.com/podsni/TMDB-media/pkg/manager"
	"github.com/podsni/TMDB-media/pkg/media"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies for the note server to work such as loggers, the manager, configurations, etc.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.MediaManager
}

// New creates a new note server
func New(logger *zap.SugaredLogger, manager manager.MediaManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/search", s.SearchAll()).Methods(http.MethodGet)
	v1.HandleFunc("/search/movies", s.SearchMovies()).Methods(http.MethodGet)
	v1.HandleFunc("/search/tv", s.SearchTVShows()).Methods(http.MethodGet)
	v1.HandleFunc("/search/anime", s.SearchAnime()).Methods(http.MethodGet)

	v1.HandleFunc("/anime/top", s.TopAnime()).Methods(http.MethodGet)
	v1.HandleFunc("/anime/season", s.SeasonalAnime()).Methods(http.MethodGet)

	v1.HandleFunc("/notes", s.CreateNote()).Methods(http.MethodPost)
	v1.HandleFunc("/notes/preview", s.PreviewNote()).Methods(http.MethodPost)

	v1.HandleFunc("/notices", s.ConfigurationNotices()).Methods(http.MethodGet)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// SearchAll searches every catalog for one query
func (s Server) SearchAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		query := r.URL.Query().Get("query")

		result, err := s.manager.SearchAll(r.Context(), query)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: result})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
			return
		}
	}
}

type searchFunc func(ctx context.Context, query string) ([]media.Item, error)

func (s Server) search(fn searchFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		query := r.URL.Query().Get("query")

		result, err := fn(r.Context(), query)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: result})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
			return
		}
	}
}

// SearchMovies searches for movie metadata via tmdb
func (s Server) SearchMovies() http.HandlerFunc {
	return s.search(s.manager.SearchMovies)
}

// SearchTVShows searches for series metadata via tmdb
func (s Server) SearchTVShows() http.HandlerFunc {
	return s.search(s.manager.SearchTVShows)
}

// SearchAnime searches for anime metadata via the anime provider
func (s Server) SearchAnime() http.HandlerFunc {
	return s.search(s.manager.SearchAnime)
}

// TopAnime lists top-ranked anime, optionally filtered with ?filter=
func (s Server) TopAnime() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		filter := jikan.TopFilter(r.URL.Query().Get("filter"))

		result, err := s.manager.TopAnime(r.Context(), filter)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: result})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
			return
		}
	}
}

// SeasonalAnime lists the anime airing this season
func (s Server) SeasonalAnime() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		result, err := s.manager.CurrentSeasonAnime(r.Context())
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: result})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
			return
		}
	}
}

// NoteRequest identifies the catalog record a note is built from.
type NoteRequest struct {
	Kind   string `json:"kind"`
	ID     int    `json:"id"`
	Folder string `json:"folder,omitempty"`
}

func (s Server) decodeNoteRequest(r *http.Request) (media.Kind, media.Item, *media.Detail, string, error) {
	var request NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return "", media.Item{}, nil, "", fmt.Errorf("invalid request body: %w", err)
	}

	kind, err := media.ParseKind(request.Kind)
	if err != nil {
		return "", media.Item{}, nil, "", err
	}

	item, detail, err := s.manager.ItemByID(r.Context(), kind, request.ID)
	if err != nil {
		return "", media.Item{}, nil, "", err
	}

	return kind, item, detail, request.Folder, nil
}

// CreateNote builds and persists a note for a catalog record
func (s Server) CreateNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		_, item, detail, folder, err := s.decodeNoteRequest(r)
		if err != nil {
			log.Debug("rejected note request", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		result, err := s.manager.CreateNote(r.Context(), item, manager.CreateOptions{
			Folder: folder,
			Detail: detail,
		})
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusCreated, GenericResponse{Response: result})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
			return
		}
	}
}

// PreviewNote renders a note for a catalog record without writing it
func (s Server) PreviewNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		_, item, detail, _, err := s.decodeNoteRequest(r)
		if err != nil {
			log.Debug("rejected preview request", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		doc, err := s.manager.Preview(r.Context(), item, detail)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: doc})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
			return
		}
	}
}

// ConfigurationNotices reports configuration gaps as human-readable notices
func (s Server) ConfigurationNotices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		notices := s.manager.ValidateConfiguration()

		err := writeResponse(w, http.StatusOK, GenericResponse{Response: notices})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
			return
		}
	}
}
