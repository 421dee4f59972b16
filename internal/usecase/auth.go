package usecase

import (
	"context"
	"errors"

	"holiday-booker/internal/domain/user"
	"holiday-booker/internal/pkg/errs"
	"holiday-booker/internal/pkg/jwt"
	"holiday-booker/internal/pkg/password"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
}

// UserView is the sanitized user record returned to callers. It never
// carries the password hash.
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type RegisterParams struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type AuthUseCase interface {
	Register(ctx context.Context, params RegisterParams) (*UserView, error)
	Login(ctx context.Context, email, plaintext string) (string, *UserView, error)
	GetCurrentUser(ctx context.Context, userID string) (*UserView, error)
	ValidateToken(tokenString string) (string, user.Role, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) (*UserView, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, err
	}
	plaintext, err := user.NewPassword(params.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.Hash(plaintext.Value())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCredentialHashing)
	}

	newUser, err := user.NewUser(params.Name, email, params.Phone, hash, user.RoleUser)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	return viewFromUser(newUser), nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both come back as ErrInvalidCredentials so callers cannot
// enumerate registered addresses.
func (a *authUseCaseImpl) Login(ctx context.Context, email, plaintext string) (string, *UserView, error) {
	found, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return "", nil, errs.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !password.Verify(found.PasswordHash, plaintext) {
		return "", nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(found.ID, found.Role)
	if err != nil {
		return "", nil, errs.Wrap(err, "generate token")
	}

	return token, viewFromUser(found), nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID string) (*UserView, error) {
	found, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return viewFromUser(found), nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (string, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return "", "", err
	}

	return claims.UserID, role, nil
}

func viewFromUser(u *user.User) *UserView {
	return &UserView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role.String(),
	}
}
