package live

// Update types published on game topics.
const (
	TypePlayerStat = "PLAYER_STAT_UPDATE"
	TypeTeamStat   = "TEAM_STAT_UPDATE"
)

// Update is the JSON envelope delivered to every subscriber of a game topic.
type Update struct {
	Type     string `json:"type"`
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId,omitempty"`
	Stat     any    `json:"stat"`
}

// Publisher is the only surface the recording path sees. Delivery is
// best-effort and at-most-once: a failed or absent subscriber is never
// reported back to the caller.
type Publisher interface {
	Publish(gameID string, update Update)
}
