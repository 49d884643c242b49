package persistent

import (
	"context"

	"vidtube/pkg/apperr"
	"vidtube/pkg/models"
	"vidtube/services/platform/internal/entity"

	"gorm.io/gorm"
)

// ProfileRepository reads public profiles from the users table, which the
// auth service owns.
type ProfileRepository interface {
	GetProfiles(ctx context.Context, ids []string) (map[string]*entity.Profile, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetProfiles returns the profiles it found keyed by id; missing ids are
// simply absent from the map.
func (r *profileRepository) GetProfiles(ctx context.Context, ids []string) (map[string]*entity.Profile, error) {
	return loadProfiles(ctx, r.db, ids)
}

func (r *profileRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperr.Internal(err)
	}
	return count > 0, nil
}

func loadProfiles(ctx context.Context, db *gorm.DB, ids []string) (map[string]*entity.Profile, error) {
	profiles := make(map[string]*entity.Profile, len(ids))
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return profiles, nil
	}

	var users []models.User
	err := db.WithContext(ctx).
		Select("id", "username", "full_name", "avatar").
		Where("id IN ?", ids).
		Find(&users).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}

	for i := range users {
		profiles[users[i].ID] = ToProfileEntity(&users[i])
	}
	return profiles, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
