package frameworks

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

type seedResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

type seedErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// SeedHandler handles GET /seed. Every outcome, including a panic inside the
// store, is answered with JSON.
func SeedHandler(seeder *Seeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			details := UnknownErrorDetails
			if err, ok := rec.(error); ok {
				details = err.Error()
			}
			log.Printf("[frameworks] Error seeding frameworks: panic: %v", rec)
			writeJSON(w, http.StatusInternalServerError, seedErrorResponse{
				Error:   FailureMessage,
				Details: details,
			})
		}()

		res, err := seeder.Seed(r.Context())
		if err != nil {
			log.Printf("[frameworks] Error seeding frameworks: %v%s", err, describeStoreError(err))
			writeJSON(w, http.StatusInternalServerError, seedErrorResponse{
				Error:   FailureMessage,
				Details: failureDetails(err),
			})
			return
		}

		writeJSON(w, http.StatusOK, seedResponse{Message: res.Message, Count: res.Count})
	}
}

// ListHandler handles GET / and returns every visible framework.
func ListHandler(lister VisibleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := lister.ListVisible(r.Context())
		if err != nil {
			http.Error(w, "Failed to fetch frameworks: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []Framework{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func failureDetails(err error) string {
	var se *SeedError
	if errors.As(err, &se) {
		return se.Details()
	}
	if err.Error() == "" {
		return UnknownErrorDetails
	}
	return err.Error()
}

// describeStoreError adds the SQLSTATE and constraint to log lines when the
// failure came from Postgres.
func describeStoreError(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	if pgErr.ConstraintName != "" {
		return fmt.Sprintf(" (sqlstate=%s constraint=%s)", pgErr.Code, pgErr.ConstraintName)
	}
	return fmt.Sprintf(" (sqlstate=%s)", pgErr.Code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[frameworks] failed to encode response: %v", err)
	}
}
