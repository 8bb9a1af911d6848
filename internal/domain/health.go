package domain

// StatusOK is the only status a live process reports.
const StatusOK = "ok"

// Health is the liveness payload returned by GET /health.
type Health struct {
	Status string `json:"status"`
}

func NewHealth() Health {
	return Health{Status: StatusOK}
}
