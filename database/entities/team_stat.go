package entities

import "time"

// TeamStat is the single mutable aggregate row for a game. Every submission
// adds its deltas in place; Timestamp tracks the last update.
type TeamStat struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	GameID       string    `gorm:"column:game_id;uniqueIndex;not null" json:"gameId"`
	TotalPoints  int       `gorm:"column:total_points" json:"totalPoints"`
	Errors       int       `gorm:"column:errors" json:"errors"`
	MissedServes int       `gorm:"column:missed_serves" json:"missedServes"`
	Aces         int       `gorm:"column:aces" json:"aces"`
	Timeouts     int       `gorm:"column:timeouts" json:"timeouts"`
	Timestamp    time.Time `gorm:"column:timestamp;not null" json:"timestamp"`
}

func (TeamStat) TableName() string {
	return "team_stats"
}
