package monitor

import "time"

type Status struct {
	PostgreSQL  bool      `json:"postgresql"`
	Redis       bool      `json:"redis"`
	Journal     bool      `json:"journal"`
	JournalRuns int       `json:"journal_runs"`
	LastCheck   time.Time `json:"last_check"`
}
