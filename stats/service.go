package stats

import (
	"context"
	"errors"
	"fmt"
	"time"
	"volley/database"
	"volley/database/entities"
	"volley/live"

	"github.com/google/uuid"
)

// PlayerStatDelta carries the counters present in a player-stat submission.
// Absent fields become zero in the stored row: a submission replaces nothing
// and combines with nothing, it is simply a new event row.
type PlayerStatDelta struct {
	Kills   *int `json:"kills"`
	Blocks  *int `json:"blocks"`
	Aces    *int `json:"aces"`
	Digs    *int `json:"digs"`
	Assists *int `json:"assists"`
	Errors  *int `json:"errors"`
}

// TeamStatDelta carries the counters present in a team-stat submission.
// Present fields are added to the game aggregate; absent fields leave it
// untouched.
type TeamStatDelta struct {
	TotalPoints  *int `json:"totalPoints"`
	Errors       *int `json:"errors"`
	MissedServes *int `json:"missedServes"`
	Aces         *int `json:"aces"`
	Timeouts     *int `json:"timeouts"`
}

// ReportPoint is one entry of a player performance report.
type ReportPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     int       `json:"value"`
}

// Service records stat submissions, reads aggregates, and notifies the live
// channel after each successful write.
type Service struct {
	store database.Store
	pub   live.Publisher
	locks *keyedLocks
	now   func() time.Time
}

func New(store database.Store, pub live.Publisher) *Service {
	return &Service{
		store: store,
		pub:   pub,
		locks: newKeyedLocks(),
		now:   time.Now().UTC,
	}
}

// RecordPlayerStat persists a new event row for the player and broadcasts it
// on the game topic. Game and player IDs are taken as-is: an unknown ID
// produces an orphaned row, not an error.
func (s *Service) RecordPlayerStat(ctx context.Context, gameID, playerID string, delta PlayerStatDelta) (*entities.PlayerStat, error) {
	stat := &entities.PlayerStat{
		ID:        uuid.NewString(),
		GameID:    gameID,
		PlayerID:  playerID,
		Kills:     intValue(delta.Kills),
		Blocks:    intValue(delta.Blocks),
		Aces:      intValue(delta.Aces),
		Digs:      intValue(delta.Digs),
		Assists:   intValue(delta.Assists),
		Errors:    intValue(delta.Errors),
		Timestamp: s.now(),
	}

	if err := s.store.CreatePlayerStat(ctx, stat); err != nil {
		return nil, fmt.Errorf("failed to save player stat: %w", err)
	}

	s.pub.Publish(gameID, live.Update{
		Type:     live.TypePlayerStat,
		GameID:   gameID,
		PlayerID: playerID,
		Stat:     stat,
	})

	return stat, nil
}

// RecordTeamStat adds the delta to the game aggregate, creating it on first
// write. Updates for one game are serialized on a per-game lock so two
// concurrent submissions cannot read the same baseline and lose an update.
func (s *Service) RecordTeamStat(ctx context.Context, gameID string, delta TeamStatDelta) (*entities.TeamStat, error) {
	unlock := s.locks.Lock(gameID)
	defer unlock()

	stat, err := s.store.TeamStat(ctx, gameID)
	if errors.Is(err, database.ErrNotFound) {
		stat = &entities.TeamStat{ID: uuid.NewString(), GameID: gameID}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load team stats: %w", err)
	}

	if delta.TotalPoints != nil {
		stat.TotalPoints += *delta.TotalPoints
	}
	if delta.Errors != nil {
		stat.Errors += *delta.Errors
	}
	if delta.MissedServes != nil {
		stat.MissedServes += *delta.MissedServes
	}
	if delta.Aces != nil {
		stat.Aces += *delta.Aces
	}
	if delta.Timeouts != nil {
		stat.Timeouts += *delta.Timeouts
	}
	stat.Timestamp = s.now()

	if err := s.store.SaveTeamStat(ctx, stat); err != nil {
		return nil, fmt.Errorf("failed to save team stats: %w", err)
	}

	s.pub.Publish(gameID, live.Update{
		Type:   live.TypeTeamStat,
		GameID: gameID,
		Stat:   stat,
	})

	return stat, nil
}

// TeamStatsForGame returns the aggregate for the game, or a zero-valued one
// stamped now when nothing has been recorded yet.
func (s *Service) TeamStatsForGame(ctx context.Context, gameID string) (*entities.TeamStat, error) {
	stat, err := s.store.TeamStat(ctx, gameID)
	if errors.Is(err, database.ErrNotFound) {
		return &entities.TeamStat{GameID: gameID, Timestamp: s.now()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load team stats: %w", err)
	}
	return stat, nil
}

// PlayersForGame returns the roster for the game. MVP semantics: every
// player is on the roster of every game.
func (s *Service) PlayersForGame(ctx context.Context, gameID string) ([]entities.Player, error) {
	players, err := s.store.ListPlayers(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	return players, nil
}

// StatsForGame returns every player-stat row recorded for the game in
// ascending timestamp order.
func (s *Service) StatsForGame(ctx context.Context, gameID string) ([]entities.PlayerStat, error) {
	stats, err := s.store.GameStats(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game stats: %w", err)
	}
	return stats, nil
}

// PlayerReport maps each stored event row for the (game, player) pair to a
// performance point: kills + blocks + aces + digs + assists - errors,
// floored at zero. Rows come back in ascending timestamp order.
func (s *Service) PlayerReport(ctx context.Context, gameID, playerID string) ([]ReportPoint, error) {
	rows, err := s.store.PlayerStats(ctx, gameID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player stats: %w", err)
	}

	report := make([]ReportPoint, 0, len(rows))
	for _, row := range rows {
		performance := row.Kills + row.Blocks + row.Aces + row.Digs + row.Assists - row.Errors
		if performance < 0 {
			performance = 0
		}
		report = append(report, ReportPoint{Timestamp: row.Timestamp, Value: performance})
	}
	return report, nil
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
