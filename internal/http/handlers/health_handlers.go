package handlers

import (
	"net/http"
	"time"

	repo "github.com/qbyten/site-api/internal/repo"
)

type DatabaseHealth struct {
	Status  string            `json:"status"`
	Error   string            `json:"error,omitempty"`
	Name    string            `json:"name"`
	Records repo.RecordCounts `json:"records"`
}

type HealthResult struct {
	OK       bool           `json:"ok"`
	TS       int64          `json:"ts"`
	Database DatabaseHealth `json:"database"`
	API      string         `json:"api"`
}

// HealthHandler always answers 200 with a body describing overall health,
// a missing or unreachable store included.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	db := DatabaseHealth{
		Status: "not_available",
		Name:   "qbyten",
	}

	if statsRepo != nil {
		if err := statsRepo.Ping(); err != nil {
			db.Status = "error"
			db.Error = err.Error()
		} else {
			db.Status = "available"
			// counting failures are swallowed; reachability is the signal
			if counts, err := statsRepo.Counts(); err == nil {
				db.Records = counts
			}
		}
	}

	writeJSON(w, http.StatusOK, HealthResult{
		OK:       true,
		TS:       time.Now().UnixMilli(),
		Database: db,
		API:      "running",
	})
}
