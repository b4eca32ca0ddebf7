package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Dosada05/chess-registry/services"
)

type jsonResponse map[string]interface{}

const maxBodyBytes = 1_048_576 // 1MB

// storedKeys are the server-owned keys of a stored record. Embedding it in a
// request body lets clients send a fetched record back unchanged; the values are ignored.
type storedKeys struct {
	ID        json.RawMessage `json:"id"`
	CreatedAt json.RawMessage `json:"created_at"`
}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBodyBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var parseTimeError *time.ParseError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.As(err, &parseTimeError):
			return fmt.Errorf("body contains invalid timestamp %q (want an ISO-8601 date-time, e.g. 2024-01-15T09:00:00Z)", parseTimeError.Value)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBodyBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		logger.Errorw("failed to write error response", "method", r.Method, "path", r.URL.Path, "error", err)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, err error) {
	logger.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, logger, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, err error) {
	errorResponse(w, r, logger, http.StatusBadRequest, err.Error())
}

func failedValidationResponse(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, fields map[string]string) {
	errorResponse(w, r, logger, http.StatusUnprocessableEntity, fields)
}

// mapServiceErrorToHTTP translates service errors into HTTP responses.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, err error) {
	var validationErr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrFederationNotFound),
		errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrTournamentNotFound):
		errorResponse(w, r, logger, http.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrFederationCodeConflict),
		errors.Is(err, services.ErrResultConflict):
		errorResponse(w, r, logger, http.StatusConflict, err.Error())

	case errors.As(err, &validationErr):
		failedValidationResponse(w, r, logger, validationErr.Fields)

	case errors.Is(err, services.ErrExportUnavailable):
		errorResponse(w, r, logger, http.StatusServiceUnavailable, err.Error())

	default:
		serverErrorResponse(w, r, logger, err)
	}
}
