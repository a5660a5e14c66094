package models

import "time"

// LeaderboardLimit caps how many sessions GET /leaderboard returns.
const LeaderboardLimit = 100

// Request types

// RecordResponseRequest is one user decision. TrialNumber is a pointer so
// that a missing field can be told apart from zero.
type RecordResponseRequest struct {
	SessionID      string `json:"session_id"`
	TrialNumber    *int   `json:"trial_number"`
	LeftFace       string `json:"left_face"`
	RightFace      string `json:"right_face"`
	SelectedFace   string `json:"selected_face"`
	ResponseTimeMs *int64 `json:"response_time_ms,omitempty"`
}

// Response types

// TrialPair is one trial: the face drawn on the left and the one on the right.
type TrialPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type CreateSessionResponse struct {
	SessionID   string      `json:"session_id"`
	Trials      []TrialPair `json:"trials"`
	TotalTrials int         `json:"total_trials"`
}

type RecordResponseResponse struct {
	Success bool `json:"success"`
}

type CompleteSessionResponse struct {
	SessionID      string `json:"session_id"`
	AgreementScore int    `json:"agreement_score"`
	Completed      bool   `json:"completed"`
}

type SessionWithTrials struct {
	Session Session `json:"session"`
	Trials  []Trial `json:"trials"`
}

type FaceStatView struct {
	FaceID        string  `json:"face_id"`
	TimesShown    int64   `json:"times_shown"`
	TimesSelected int64   `json:"times_selected"`
	NicenessPct   float64 `json:"niceness_pct"`
}

type StatsResponse struct {
	Faces         []FaceStatView `json:"faces"`
	TotalSessions int            `json:"total_sessions"`
}

type LeaderboardEntry struct {
	ID             string    `json:"id"`
	AgreementScore int       `json:"agreement_score"`
	CompletedAt    time.Time `json:"completed_at"`
	CompletedAgo   string    `json:"completed_ago"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Domain types

type Session struct {
	ID             string     `json:"id"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	AgreementScore *int       `json:"agreement_score"`
}

type Trial struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"session_id"`
	TrialNumber    int       `json:"trial_number"`
	LeftFace       string    `json:"left_face"`
	RightFace      string    `json:"right_face"`
	SelectedFace   string    `json:"selected_face"`
	ResponseTimeMs *int64    `json:"response_time_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

// RejectedFace is the face in the pair that was not picked.
func (t Trial) RejectedFace() string {
	if t.SelectedFace == t.LeftFace {
		return t.RightFace
	}
	return t.LeftFace
}

// FaceStat holds the aggregate counters for one face across all sessions.
type FaceStat struct {
	FaceID        string `json:"face_id"`
	TimesShown    int64  `json:"times_shown"`
	TimesSelected int64  `json:"times_selected"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
