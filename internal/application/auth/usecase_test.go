package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/testutil"
	"github.com/tu-usuario/almacen-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func newAuthUC(t *testing.T) (*auth.AuthUseCase, string) {
	t.Helper()
	store := testutil.NewMemStore()

	hash, err := bcrypt.GenerateFromPassword([]byte("Secreto123"), bcrypt.MinCost)
	require.NoError(t, err)

	id := uuid.New().String()
	now := time.Now()
	store.Users[id] = entity.User{
		ID:           id,
		UserName:     "maria01",
		Email:        "maria@example.com",
		PasswordHash: string(hash),
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	uc := auth.NewAuthUseCase(store.UserRepo(), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "almacen-api-test",
	})
	return uc, id
}

func TestLogin(t *testing.T) {
	uc, userID := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "maria@example.com", Password: "Secreto123"})
	require.NoError(t, err)
	assert.Equal(t, userID, out.UserID)
	assert.Equal(t, "maria@example.com", out.Email)

	// El token emitido es verificable y lleva el ID del usuario.
	parsedID, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

// Email desconocido y password incorrecto devuelven el mismo error: el
// cliente no puede distinguir cuál de los dos falló.
func TestLoginPasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "maria@example.com", Password: "Incorrecto1"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginEmailDesconocido(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "Secreto123"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
