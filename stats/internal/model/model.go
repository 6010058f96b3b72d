package model

import "time"

// Stats is the per-user activity roll-up kept by the consumer.
type Stats struct {
	Username     string    `json:"username" db:"username"`
	CntBooks     int       `json:"cntBooks" db:"cnt_books"`
	CntRequested int       `json:"cntRequested" db:"cnt_requested"`
	CntAccepted  int       `json:"cntAccepted" db:"cnt_accepted"`
	CntRejected  int       `json:"cntRejected" db:"cnt_rejected"`
	LastUpdated  time.Time `json:"lastUpdated" db:"last_updated"`
}

type StatsInfo struct {
	Data []Stats `json:"data"`
}
