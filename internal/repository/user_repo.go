package repository

import (
	"FitSphere/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id uint64) (*model.User, error)
	GetUserByIDs(ctx context.Context, ids []uint64) ([]*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	SearchUsers(ctx context.Context, keyword string, limit int) ([]*model.User, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserRepoImpl) GetUserByIDs(ctx context.Context, ids []uint64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(ids))
	err := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsernameOrEmail 注册查重
func (s *UserRepoImpl) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserRepoImpl) SearchUsers(ctx context.Context, keyword string, limit int) ([]*model.User, error) {
	users := make([]*model.User, 0)
	pattern := "%" + keyword + "%"
	err := s.db.WithContext(ctx).
		Where("username LIKE ? OR email LIKE ?", pattern, pattern).
		Order("username ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
