package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixture {
	t.Helper()

	fx := userServiceFixture{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	fx.service = NewUserService(UserServiceParams{
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := usecase.RegisterUserInput{Name: "Test User", Email: "test@example.com", Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.False(t, user.IsPremium)
}

func TestUserService_RegisterAdmin_SetsRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := usecase.RegisterUserInput{Name: "Admin", Email: "admin@example.com", Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Role == entity.RoleAdmin })).Return(nil)

	user, err := fx.service.RegisterAdmin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterUserInput{Email: "taken@example.com", Password: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("", errors.New("cost out of range"))

	_, err := fx.service.Register(ctx, usecase.RegisterUserInput{Email: "a@example.com", Password: "pw"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: "hashed", Role: entity.RoleVendor}

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateTokens(user.ID, "VENDOR").Return("access", "refresh", nil)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
		assert.Equal(t, user, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, domainerrors.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_ResolveRequester(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Role: entity.RoleUser, IsPremium: true}, nil)

	requester, err := fx.service.ResolveRequester(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, &entity.Requester{ID: id, Role: entity.RoleUser, IsPremium: true}, requester)
}
