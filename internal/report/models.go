package report

import (
	"github.com/TheraTrack/practice-service/internal/risk"
	"github.com/TheraTrack/practice-service/internal/session"
)

// GoalCount is one bar of the goal-frequency visualization.
type GoalCount struct {
	Goal  string `json:"goal"`
	Count int    `json:"count"`
}

// Dashboard is the practice overview screen's payload.
type Dashboard struct {
	ActiveClients  int                       `json:"active_clients"`
	TotalSessions  int                       `json:"total_sessions"`
	RecentSessions []session.FilteredSession `json:"recent_sessions"`
	RiskAlerts     []risk.Alert              `json:"risk_alerts"`
}
