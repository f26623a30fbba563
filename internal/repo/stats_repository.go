package repo

// RecordCounts holds per-table row counts for the health endpoint.
type RecordCounts struct {
	Products int `json:"products"`
	Services int `json:"services"`
	Settings int `json:"settings"`
	Menus    int `json:"menus"`
}

// StatsRepository probes store reachability and aggregates row counts.
type StatsRepository interface {
	Ping() error
	Counts() (RecordCounts, error)
}
