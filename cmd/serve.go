package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsphweid/quartal/model"
)

const maxBodyBytes = 1 << 16

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config)")
	v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord API over HTTP",
	Long:  `Serves POST /chords and GET /chords/{unit}/{root}/{size} as JSON.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

// NewRouter returns the API handler with request IDs, logging and CORS.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestIDMiddleware, loggingMiddleware)
	router.HandleFunc("/chords", HandleChord).Methods(http.MethodPost)
	router.HandleFunc("/chords/{unit}/{root}/{size:[0-9]+}", HandleChordPath).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(router)
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	var input model.ChordRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, r, http.StatusBadRequest, errors.New("could not parse request body: "+err.Error()))
		return
	}

	respondWithChord(w, r, requestFromBody(input))
}

func HandleChordPath(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	cr := requestFromBody(model.ChordRequestBody{Root: vars["root"], Unit: vars["unit"]})
	cr.Size = size
	respondWithChord(w, r, cr)
}

func respondWithChord(w http.ResponseWriter, r *http.Request, cr chordRequest) {
	c, _, err := cr.realize()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(&c))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	requestLogger(r).Info("request rejected", zap.Int("status", status), zap.Error(err))
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: model.CodeOf(err)})
}

type ctxKey struct{}

func withLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

func requestLogger(r *http.Request) *zap.Logger {
	if l, ok := r.Context().Value(ctxKey{}).(*zap.Logger); ok {
		return l
	}
	return logger
}

const requestIDHeader = "X-Request-Id"

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		l := logger.With(zap.String("request_id", id))
		next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), l)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		requestLogger(r).Debug("request served",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)))
	})
}

func serve() error {
	logger.Info("serving chord API", zap.String("addr", cfg.Server.Addr))
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}
