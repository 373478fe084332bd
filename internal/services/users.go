package services

import (
	"context"

	"taskhub/internal/models"
	"taskhub/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	FindOneByID(ctx context.Context, id uint) (*models.User, error)
	FindOneByEmail(ctx context.Context, email string) (*models.User, error)
	ChangePassword(ctx context.Context, user *models.User, plaintext string) error
}

type UserServiceImpl struct {
	userRepo   *repositories.UserRepository
	bcryptCost int
}

func NewUserService(userRepo *repositories.UserRepository, bcryptCost int) *UserServiceImpl {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserServiceImpl{userRepo: userRepo, bcryptCost: bcryptCost}
}

func (s *UserServiceImpl) FindOneByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserServiceImpl) FindOneByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, user *models.User, plaintext string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.bcryptCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	return s.userRepo.Save(ctx, user)
}
