package domain

import "time"

type MatchStatus string

const (
	MatchStatusPending MatchStatus = "PENDING"
	MatchStatusMatched MatchStatus = "MATCHED"
)

// Match se materializa una unica vez por par cuando la admiracion es mutua.
// El score se captura en ese momento y no se recalcula despues.
type Match struct {
	ID                 string      `json:"id"`
	UserAID            string      `json:"user_a_id"`
	UserBID            string      `json:"user_b_id"`
	CompatibilityScore int         `json:"compatibility_score"`
	Status             MatchStatus `json:"status"`
	InitiatedByID      string      `json:"initiated_by_id"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}
