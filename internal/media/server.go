package media

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server streams stored uploads back out over /uploads/{filename}.
type Server struct {
	storage Storage
	logger  *zap.Logger
}

func NewServer(storage Storage, logger *zap.Logger) *Server {
	return &Server{storage: storage, logger: logger}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/uploads/{filename}", s.serveFile).Methods(http.MethodGet)
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]

	file, size, err := s.storage.Open(r.Context(), name)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", ContentTypeFor(name))
	if size > 0 {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", size))
	}

	if _, err := io.Copy(w, file); err != nil {
		s.logger.Warn("error streaming file", zap.String("file", name), zap.Error(err))
	}
}
