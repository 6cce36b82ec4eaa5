// internal/services/favorite_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ayupanchal18/Renters-sub005/internal/models"
	"github.com/Ayupanchal18/Renters-sub005/internal/utils"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

func (s *FavoriteService) AddFavorite(userID, propertyID uuid.UUID) (*models.Favorite, error) {
	var property models.Property
	if err := s.db.First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if !property.IsActive() {
		return nil, ErrPropertyNotFound
	}

	var existing int64
	if err := s.db.Model(&models.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if existing > 0 {
		return nil, ErrFavoriteExists
	}

	favorite := &models.Favorite{
		UserID:     userID,
		PropertyID: propertyID,
	}
	if err := s.db.Create(favorite).Error; err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	// Best-effort counter; the favorites table stays the source of truth
	go s.bumpFavoritesCount(propertyID, 1)

	favorite.Property = &property
	return favorite, nil
}

func (s *FavoriteService) RemoveFavorite(userID, propertyID uuid.UUID) error {
	result := s.db.Unscoped().
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	go s.bumpFavoritesCount(propertyID, -1)
	return nil
}

func (s *FavoriteService) GetUserFavorites(userID uuid.UUID, params utils.PaginationParams) ([]models.Favorite, int64, error) {
	query := s.db.Model(&models.Favorite{}).Where("user_id = ?", userID)

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count favorites: %w", err)
	}

	query = query.Order("created_at DESC")
	query = utils.ApplyPagination(query, params)

	var favorites []models.Favorite
	if err := query.Preload("Property").Find(&favorites).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch favorites: %w", err)
	}

	return favorites, total, nil
}

// Helper methods

func (s *FavoriteService) bumpFavoritesCount(propertyID uuid.UUID, delta int) {
	s.db.Model(&models.Property{}).Where("id = ?", propertyID).
		UpdateColumn("favorites_count", gorm.Expr("GREATEST(favorites_count + ?, 0)", delta))
}
