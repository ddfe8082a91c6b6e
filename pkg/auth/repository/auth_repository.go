package repository

import "jornales/entities"

type AuthRepository interface {
	ProfileByEmail(email string) (*entities.Profile, error)
}
