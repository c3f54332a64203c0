package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/quasar-gd/quasar_api/model"
)

// AccountRepository handles API credential records
type AccountRepository struct {
	BaseRepository
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *AccountRepository) GetAccount(id string) (*model.Account, error) {
	var account model.Account
	if err := r.db.Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) GetAccountByUsername(username string) (*model.Account, error) {
	var account model.Account
	if err := r.db.Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) GetAccountByEmail(email string) (*model.Account, error) {
	var account model.Account
	if err := r.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) CreateAccount(account *model.Account) error {
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	return r.db.Create(account).Error
}
