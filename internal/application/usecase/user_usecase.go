package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// UserUseCase aplica las reglas transaccionales de registro de usuarios.
// Email y userName deben ser únicos entre usuarios activos; la verificación
// corre dentro de la transacción y el índice único en DB es la fuente de
// verdad ante carreras.
type UserUseCase struct {
	txRunner TxRunner
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(txRunner TxRunner) *UserUseCase {
	return &UserUseCase{txRunner: txRunner}
}

// Create registra un usuario: hashea el password con bcrypt, verifica
// email y userName (en ese orden) y persiste. El hash ocurre fuera de la
// transacción; todo lo demás dentro.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.IDResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.Run(ctx, func(
		users repository.UserRepository,
		_ repository.WarehouseRepository,
		_ repository.ProductRepository,
		_ repository.WarehouseStockRepository,
	) error {
		existing, err := users.GetByEmail(in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		existing, err = users.GetByUserName(in.UserName)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrUserNameAlreadyExists
		}
		return users.Create(user)
	})
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: user.ID}, nil
}
