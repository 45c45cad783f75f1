package database

import (
	"context"
	"errors"
	"volley/database/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) AccountByEmail(ctx context.Context, email string) (*entities.Account, error) {
	var account entities.Account
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (s *GormStore) CreateAccount(ctx context.Context, account *entities.Account) error {
	return s.db.WithContext(ctx).Create(account).Error
}

func (s *GormStore) ListPlayers(ctx context.Context, gameID string) ([]entities.Player, error) {
	var players []entities.Player
	if err := s.db.WithContext(ctx).Order("jersey_number").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (s *GormStore) CreatePlayer(ctx context.Context, player *entities.Player) error {
	return s.db.WithContext(ctx).Create(player).Error
}

func (s *GormStore) CreatePlayerStat(ctx context.Context, stat *entities.PlayerStat) error {
	return s.db.WithContext(ctx).Create(stat).Error
}

func (s *GormStore) PlayerStats(ctx context.Context, gameID, playerID string) ([]entities.PlayerStat, error) {
	var stats []entities.PlayerStat
	err := s.db.WithContext(ctx).
		Where("game_id = ? AND player_id = ?", gameID, playerID).
		Order("timestamp ASC").
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *GormStore) GameStats(ctx context.Context, gameID string) ([]entities.PlayerStat, error) {
	var stats []entities.PlayerStat
	err := s.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("timestamp ASC").
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *GormStore) TeamStat(ctx context.Context, gameID string) (*entities.TeamStat, error) {
	var stat entities.TeamStat
	if err := s.db.WithContext(ctx).Where("game_id = ?", gameID).First(&stat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &stat, nil
}

func (s *GormStore) SaveTeamStat(ctx context.Context, stat *entities.TeamStat) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(stat).Error
}
