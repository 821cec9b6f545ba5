package transport

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	SessionID string `json:"session_id"`
}

// ActivityRequest covers both create and full-replace update. Dates are
// calendar days in YYYY-MM-DD form.
type ActivityRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
	Duration    *int   `json:"duration"`
	Category    string `json:"category"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// LogCreateRequest creates a manual activity log outside the generator.
type LogCreateRequest struct {
	ActivityID string `json:"activity_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type CommentRequest struct {
	Comment string `json:"comment"`
}

// GenerateRequest triggers log generation for a specific day. An empty
// date means today.
type GenerateRequest struct {
	Date string `json:"date"`
}

type ExcludedIntervalRequest struct {
	Frequency string `json:"frequency"`
	Type      string `json:"type"`
	Value     int    `json:"value"`
}
