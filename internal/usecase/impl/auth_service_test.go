package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    mockTxManager,
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockTokenSvc,
		Logger:       testLogger(),
	})

	return service, mockTxManager, mockUserRepo, mockHasher, mockTokenSvc
}

func TestAuthService_Register_Customer_CreatesCart(t *testing.T) {
	service, mockTxManager, _, mockHasher, mockTokenSvc := newAuthServiceForTest(t)

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash("secret123").
		Return("hashed-secret", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().CartRepo().Return(txCartRepo)

	txUserRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)

	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = uuid.New()

			return nil
		})

	txCartRepo.EXPECT().
		CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	mockTokenSvc.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), "alice", entity.UserTypeCustomer).
		Return("token-abc", nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Password: "secret123",
		Name:     "Alice",
		Surname:  "Smith",
		Type:     entity.UserTypeCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", output.Token)
	assert.Equal(t, "Bearer", output.TokenType)
	assert.Equal(t, "alice", output.Username)
	assert.Equal(t, entity.UserTypeCustomer, output.Type)
}

func TestAuthService_Register_Merchant_NoCart(t *testing.T) {
	service, mockTxManager, _, mockHasher, mockTokenSvc := newAuthServiceForTest(t)

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash("secret123").
		Return("hashed-secret", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().
		FindByUsername(ctx, "bob-shop").
		Return(nil, repository.ErrUserNotFound)

	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			require.NotNil(t, user.MerchantProfile)
			assert.Equal(t, "Bob's Shop", user.MerchantProfile.CompanyName)
			user.ID = uuid.New()

			return nil
		})

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	mockTokenSvc.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), "bob-shop", entity.UserTypeMerchant).
		Return("token-xyz", nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Username:    "bob-shop",
		Password:    "secret123",
		Name:        "Bob",
		Surname:     "Jones",
		Type:        entity.UserTypeMerchant,
		CompanyName: "Bob's Shop",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UserTypeMerchant, output.Type)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	service, mockTxManager, _, mockHasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash("secret123").
		Return("hashed-secret", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{ID: uuid.New(), Username: "alice"}, nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Password: "secret123",
		Name:     "Alice",
		Surname:  "Smith",
		Type:     entity.UserTypeCustomer,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Register_InvalidType(t *testing.T) {
	service, _, _, _, _ := newAuthServiceForTest(t)

	_, err := service.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Password: "secret123",
		Name:     "Alice",
		Surname:  "Smith",
		Type:     entity.UserType("ADMIN"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Register_MerchantWithoutCompanyName(t *testing.T) {
	service, _, _, _, _ := newAuthServiceForTest(t)

	_, err := service.Register(context.Background(), &usecase.RegisterInput{
		Username: "bob-shop",
		Password: "secret123",
		Name:     "Bob",
		Surname:  "Jones",
		Type:     entity.UserTypeMerchant,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, _, mockUserRepo, mockHasher, mockTokenSvc := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{
			ID:           userID,
			Username:     "alice",
			PasswordHash: "hashed-secret",
			Type:         entity.UserTypeCustomer,
		}, nil)

	mockHasher.EXPECT().
		Check("secret123", "hashed-secret").
		Return(true)

	mockTokenSvc.EXPECT().
		GenerateToken(userID, "alice", entity.UserTypeCustomer).
		Return("token-abc", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", output.Token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, _, mockUserRepo, mockHasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{
			ID:           uuid.New(),
			Username:     "alice",
			PasswordHash: "hashed-secret",
			Type:         entity.UserTypeCustomer,
		}, nil)

	mockHasher.EXPECT().
		Check("wrong", "hashed-secret").
		Return(false)

	_, err := service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	service, _, mockUserRepo, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, &usecase.LoginInput{
		Username: "ghost",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	service, _, mockUserRepo, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, errors.New("connection refused"))

	_, err := service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUserNotFound)
}
