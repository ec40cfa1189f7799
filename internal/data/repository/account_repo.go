package repository

import (
	"context"
	"fmt"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/storage"

	"go.uber.org/zap"
)

// accountsKey is the persisted key holding the registered account list.
const accountsKey = "trimtime_users"

// AccountRepository reads and writes the registered account list. The list
// is append-only except for password updates via the reset flow.
type AccountRepository interface {
	FindByPhone(ctx context.Context, phone string) (*entity.Account, error)
	Create(ctx context.Context, account *entity.Account) error
	UpdatePassword(ctx context.Context, phone, passwordHash string) error
}

type accountRepository struct {
	store storage.Store
	log   *zap.Logger
}

func NewAccountRepository(store storage.Store, log *zap.Logger) AccountRepository {
	return &accountRepository{
		store: store,
		log:   log.With(zap.String("repository", "account")),
	}
}

func (r *accountRepository) load() ([]entity.Account, error) {
	var accounts []entity.Account
	if _, err := r.store.Load(accountsKey, &accounts); err != nil {
		r.log.Error("Failed to load accounts", zap.Error(err))
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) FindByPhone(_ context.Context, phone string) (*entity.Account, error) {
	accounts, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].Phone == phone {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

func (r *accountRepository) Create(_ context.Context, account *entity.Account) error {
	accounts, err := r.load()
	if err != nil {
		return err
	}

	for i := range accounts {
		if accounts[i].Phone == account.Phone {
			return ErrAccountExists
		}
	}

	accounts = append(accounts, *account)
	if err := r.store.Save(accountsKey, accounts); err != nil {
		r.log.Error("Failed to save accounts", zap.Error(err), zap.String("phone", account.Phone))
		return fmt.Errorf("save accounts: %w", err)
	}

	r.log.Info("Account created", zap.String("account_id", account.ID), zap.String("phone", account.Phone))
	return nil
}

func (r *accountRepository) UpdatePassword(_ context.Context, phone, passwordHash string) error {
	accounts, err := r.load()
	if err != nil {
		return err
	}

	for i := range accounts {
		if accounts[i].Phone == phone {
			accounts[i].Password = passwordHash
			if err := r.store.Save(accountsKey, accounts); err != nil {
				r.log.Error("Failed to save accounts", zap.Error(err), zap.String("phone", phone))
				return fmt.Errorf("save accounts: %w", err)
			}
			r.log.Info("Password updated", zap.String("phone", phone))
			return nil
		}
	}

	return ErrAccountNotFound
}
