package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"jornales/entities"
	"jornales/pkg/auth/repository"
)

type authRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AuthRepository { return &authRepo{db} }

func (r *authRepo) ProfileByEmail(email string) (*entities.Profile, error) {
	var p entities.Profile
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
