package entities

import "time"

// PlayerStat is one submitted batch of player actions. Rows are append-only:
// a new submission always creates a new row, never touches an old one.
type PlayerStat struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	GameID    string    `gorm:"column:game_id;not null;index:idx_player_stats_game" json:"gameId"`
	PlayerID  string    `gorm:"column:player_id;not null;index:idx_player_stats_game" json:"playerId"`
	Kills     int       `gorm:"column:kills" json:"kills"`
	Blocks    int       `gorm:"column:blocks" json:"blocks"`
	Aces      int       `gorm:"column:aces" json:"aces"`
	Digs      int       `gorm:"column:digs" json:"digs"`
	Assists   int       `gorm:"column:assists" json:"assists"`
	Errors    int       `gorm:"column:errors" json:"errors"`
	Timestamp time.Time `gorm:"column:timestamp;not null" json:"timestamp"`
}

func (PlayerStat) TableName() string {
	return "player_stats"
}
