package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/jsphweid/modalchords/chord"
	"github.com/jsphweid/modalchords/constants"
	"github.com/jsphweid/modalchords/logger"
	"github.com/jsphweid/modalchords/model"
	"github.com/jsphweid/modalchords/note"
	"github.com/jsphweid/modalchords/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

const sentryFlushTimeout = 2 * time.Second

// what the form starts on
const (
	defaultBaseScale = scale.MajorName
	defaultMode      = "ionian"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis API",
	Long:  `Serves the analysis API`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "healthy"})
}

func HandleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, createOptionsResponse())
}

func HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	input := model.AnalysisRequestBody{
		Root:      constants.DefaultRoot,
		BaseScale: defaultBaseScale,
		Mode:      defaultMode,
	}

	if r.Method == http.MethodPost {
		reqBody, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err)
			return
		}
		if err := json.Unmarshal(reqBody, &input); err != nil {
			writeError(w, r, http.StatusBadRequest, err)
			return
		}
	} else if err := readQuery(r, &input); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	s, chords, err := analyze(input.Root, string(input.BaseScale), string(input.Mode), input.Seventh)
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, createAnalysisResponse(s, chords))
}

func readQuery(r *http.Request, input *model.AnalysisRequestBody) error {
	q := r.URL.Query()
	if v := q.Get("root"); v != "" {
		input.Root = v
	}
	if v := q.Get("base_scale"); v != "" {
		input.BaseScale = model.BaseScale(v)
	}
	if v := q.Get("mode"); v != "" {
		input.Mode = model.Mode(v)
	}
	if v := q.Get("seventh"); v != "" {
		seventh, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		input.Seventh = seventh
	}
	return nil
}

// statusFor separates bad input from failures that point at a defect.
func statusFor(err error) int {
	var (
		unknownNote *note.UnknownNoteError
		pattern     *scale.InvalidIntervalPatternError
		scaleType   *scale.InvalidScaleTypeError
		mode        *scale.InvalidModeError
	)
	switch {
	case errors.As(err, &unknownNote),
		errors.As(err, &pattern),
		errors.As(err, &scaleType),
		errors.As(err, &mode):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Could not encode response", logger.Fields{"error": err.Error()})
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	requestId := requestIdFrom(r.Context())
	if status >= http.StatusInternalServerError {
		fields := logger.Fields{"request_id": requestId, "path": r.URL.Path}
		var unclassifiable *chord.UnclassifiableChordError
		if errors.As(err, &unclassifiable) {
			fields["intervals"] = unclassifiable.Intervals
		}
		logger.Error("Analysis failed", err, fields)
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), RequestId: requestId})
}

func newRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestTracking, recoverWithSentry)
	router.HandleFunc("/health", HandleHealth).Methods(http.MethodGet)
	router.HandleFunc("/options", HandleOptions).Methods(http.MethodGet)
	router.HandleFunc("/analysis", HandleAnalysis).Methods(http.MethodGet, http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetAllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{requestIdHeader},
	})
	return c.Handler(router)
}

func initSentry() bool {
	dsn := constants.GetSentryDSN()
	if dsn == "" {
		log.Println("Sentry not configured (SENTRY_DSN not set)")
		return false
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: constants.GetEnvironment(),
		Release:     "modalchords@" + releaseVersion,
	})
	if err != nil {
		log.Printf("Failed to initialize Sentry: %v", err)
		return false
	}
	return true
}

func serve() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if initSentry() {
		defer sentry.Flush(sentryFlushTimeout)
	}

	port := constants.GetPort()
	logger.Info("Starting server", logger.Fields{"port": port, "environment": constants.GetEnvironment()})
	err := http.ListenAndServe(":"+port, newRouter())
	if err != nil {
		sentry.CaptureException(err)
	}
	return err
}
