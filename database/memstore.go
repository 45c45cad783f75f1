package database

import (
	"context"
	"sort"
	"sync"
	"volley/database/entities"
)

// MemStore is a thread-safe in-memory Store used by tests and local
// experiments. Ordering of stat rows follows timestamp, with insertion order
// breaking ties.
type MemStore struct {
	mu          sync.RWMutex
	accounts    map[string]entities.Account // keyed by email
	players     []entities.Player
	playerStats []memPlayerStat
	teamStats   map[string]entities.TeamStat // keyed by game ID
	seq         int
}

type memPlayerStat struct {
	entities.PlayerStat
	seq int
}

func NewMemStore() *MemStore {
	return &MemStore{
		accounts:  make(map[string]entities.Account),
		teamStats: make(map[string]entities.TeamStat),
	}
}

func (s *MemStore) AccountByEmail(ctx context.Context, email string) (*entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &account, nil
}

func (s *MemStore) CreateAccount(ctx context.Context, account *entities.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.Email] = *account
	return nil
}

func (s *MemStore) ListPlayers(ctx context.Context, gameID string) ([]entities.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]entities.Player, len(s.players))
	copy(players, s.players)
	return players, nil
}

func (s *MemStore) CreatePlayer(ctx context.Context, player *entities.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = append(s.players, *player)
	return nil
}

func (s *MemStore) CreatePlayerStat(ctx context.Context, stat *entities.PlayerStat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.playerStats = append(s.playerStats, memPlayerStat{PlayerStat: *stat, seq: s.seq})
	return nil
}

func (s *MemStore) PlayerStats(ctx context.Context, gameID, playerID string) ([]entities.PlayerStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedStats(func(ps memPlayerStat) bool {
		return ps.GameID == gameID && ps.PlayerID == playerID
	}), nil
}

func (s *MemStore) GameStats(ctx context.Context, gameID string) ([]entities.PlayerStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedStats(func(ps memPlayerStat) bool {
		return ps.GameID == gameID
	}), nil
}

func (s *MemStore) sortedStats(match func(memPlayerStat) bool) []entities.PlayerStat {
	var rows []memPlayerStat
	for _, ps := range s.playerStats {
		if match(ps) {
			rows = append(rows, ps)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Timestamp.Equal(rows[j].Timestamp) {
			return rows[i].seq < rows[j].seq
		}
		return rows[i].Timestamp.Before(rows[j].Timestamp)
	})
	stats := make([]entities.PlayerStat, len(rows))
	for i, row := range rows {
		stats[i] = row.PlayerStat
	}
	return stats
}

func (s *MemStore) TeamStat(ctx context.Context, gameID string) (*entities.TeamStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stat, ok := s.teamStats[gameID]
	if !ok {
		return nil, ErrNotFound
	}
	return &stat, nil
}

func (s *MemStore) SaveTeamStat(ctx context.Context, stat *entities.TeamStat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teamStats[stat.GameID] = *stat
	return nil
}
