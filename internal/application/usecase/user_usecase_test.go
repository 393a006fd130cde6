package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/testutil"
)

// seedUser inserta un usuario activo directamente en el store.
func seedUser(store *testutil.MemStore, userName, email string) string {
	id := uuid.New().String()
	now := time.Now()
	store.Users[id] = entity.User{
		ID:           id,
		UserName:     userName,
		Email:        email,
		PasswordHash: "$2a$10$hashirrelevante",
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return id
}

func TestUserCreate(t *testing.T) {
	store := testutil.NewMemStore()
	uc := usecase.NewUserUseCase(store)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		UserName: "maria01",
		Email:    "maria@example.com",
		Password: "Secreto123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)

	// El usuario recién creado es visible y el password quedó hasheado.
	saved, ok := store.Users[out.ID]
	require.True(t, ok)
	assert.Equal(t, "maria01", saved.UserName)
	assert.Equal(t, entity.StatusActive, saved.Status)
	assert.NotEqual(t, "Secreto123", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("Secreto123")))
}

func TestUserCreateEmailDuplicado(t *testing.T) {
	store := testutil.NewMemStore()
	seedUser(store, "maria01", "maria@example.com")
	uc := usecase.NewUserUseCase(store)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		UserName: "otra",
		Email:    "maria@example.com",
		Password: "Secreto123",
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, store.Users, 1)
}

func TestUserCreateUserNameDuplicado(t *testing.T) {
	store := testutil.NewMemStore()
	seedUser(store, "maria01", "maria@example.com")
	uc := usecase.NewUserUseCase(store)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		UserName: "maria01",
		Email:    "otra@example.com",
		Password: "Secreto123",
	})
	require.ErrorIs(t, err, domain.ErrUserNameAlreadyExists)
	assert.Len(t, store.Users, 1)
}

// Si email y userName chocan a la vez, gana el error de email: es la
// primera verificación de la transacción.
func TestUserCreateAmbosDuplicados(t *testing.T) {
	store := testutil.NewMemStore()
	seedUser(store, "maria01", "maria@example.com")
	uc := usecase.NewUserUseCase(store)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		UserName: "maria01",
		Email:    "maria@example.com",
		Password: "Secreto123",
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
