package service

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/model"
	"FitSphere/internal/pkg/consts"
	"FitSphere/internal/pkg/redis"
	"FitSphere/internal/pkg/security"
	"FitSphere/internal/pkg/util"
	"FitSphere/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/copier"
)

const MySQLDuplicateEntry = 1062

type UserService interface {
	Register(ctx context.Context, d *dto.RegisterDTO) (*dto.PublicUserDTO, error)
	Login(ctx context.Context, d *dto.LoginDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	SearchUsers(ctx context.Context, keyword string) ([]*dto.PublicUserDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// isDuplicateKeyErr 唯一键冲突判定，注册查重与加入挑战共用
func isDuplicateKeyErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == MySQLDuplicateEntry
}

func (s *UserServiceImpl) Register(ctx context.Context, d *dto.RegisterDTO) (*dto.PublicUserDTO, error) {
	findUser, err := s.userRepo.GetUserByUsernameOrEmail(ctx, d.Username, d.Email)
	if err != nil {
		return nil, err
	}
	if findUser != nil {
		return nil, ErrUserExist
	}

	passwordHash, err := security.HashPassword(d.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:      d.Username,
		Email:         d.Email,
		Password:      passwordHash,
		ProfilePicURL: util.PtrString(consts.DefaultAvatarURL),
	}
	err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		// 查重和插入之间的窗口里仍可能撞上唯一键
		if isDuplicateKeyErr(err) {
			return nil, ErrUserExist
		}
		return nil, err
	}

	return toPublicUserDTO(user), nil
}

func (s *UserServiceImpl) Login(ctx context.Context, d *dto.LoginDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, d.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}

	err = security.CheckPasswordHash(d.Password, user.Password)
	if err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResultDTO{
		Token: token,
		User:  toPublicUserDTO(user),
	}, nil
}

// Logout 把 token 签名挂进黑名单，有效期与 token 本身一致
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, true, security.JWTExpirationTime)
}

func (s *UserServiceImpl) SearchUsers(ctx context.Context, keyword string) ([]*dto.PublicUserDTO, error) {
	users, err := s.userRepo.SearchUsers(ctx, keyword, consts.MaxPageSize)
	if err != nil {
		return nil, err
	}
	return toPublicUserDTOs(users), nil
}

func toPublicUserDTO(user *model.User) *dto.PublicUserDTO {
	out := &dto.PublicUserDTO{}
	_ = copier.Copy(out, user)
	out.CreatedAt = user.CreatedAt.Format(time.DateOnly)
	return out
}

func toPublicUserDTOs(users []*model.User) []*dto.PublicUserDTO {
	out := make([]*dto.PublicUserDTO, 0, len(users))
	for _, user := range users {
		out = append(out, toPublicUserDTO(user))
	}
	return out
}
