package entities

// Player is a roster entry. The owning account is never serialized to API
// clients.
type Player struct {
	ID           string `gorm:"column:id;primaryKey" json:"id"`
	Name         string `gorm:"column:name;not null" json:"name"`
	JerseyNumber int    `gorm:"column:jersey_number" json:"jerseyNumber"`
	Position     string `gorm:"column:position" json:"position"`
	AccountID    string `gorm:"column:account_id;index" json:"-"`
}

func (Player) TableName() string {
	return "players"
}
