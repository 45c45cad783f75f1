package database

import (
	"context"
	"errors"
	"volley/database/entities"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Store is the persistence surface the rest of the service talks to. The
// gorm implementation backs the server; tests use the in-memory one.
type Store interface {
	AccountByEmail(ctx context.Context, email string) (*entities.Account, error)
	CreateAccount(ctx context.Context, account *entities.Account) error

	// ListPlayers returns the roster for a game. For the MVP every player
	// belongs to every game, so the game ID is accepted but not filtered on.
	ListPlayers(ctx context.Context, gameID string) ([]entities.Player, error)
	CreatePlayer(ctx context.Context, player *entities.Player) error

	CreatePlayerStat(ctx context.Context, stat *entities.PlayerStat) error
	// PlayerStats returns all rows for the (game, player) pair in ascending
	// timestamp order.
	PlayerStats(ctx context.Context, gameID, playerID string) ([]entities.PlayerStat, error)
	// GameStats returns all player-stat rows for a game in ascending
	// timestamp order.
	GameStats(ctx context.Context, gameID string) ([]entities.PlayerStat, error)

	TeamStat(ctx context.Context, gameID string) (*entities.TeamStat, error)
	// SaveTeamStat inserts the aggregate or replaces the existing row with
	// the same ID.
	SaveTeamStat(ctx context.Context, stat *entities.TeamStat) error
}
