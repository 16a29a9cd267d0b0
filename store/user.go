package store

import (
	"helpdesk/models"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) ExistsEmail(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *UserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

// Update applies a partial column update and reports how many rows changed.
// An unknown id reports zero, not an error.
func (s *UserStore) Update(id uint, updates map[string]interface{}) (int64, error) {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

// Delete removes the user row for good. Chamados keep existing with their
// creator reference cleared by the foreign key.
func (s *UserStore) Delete(id uint) (int64, error) {
	res := s.db.Where("id = ?", id).Delete(&models.User{})
	return res.RowsAffected, res.Error
}

// ListAll returns every user, newest id first, for the admin screen.
func (s *UserStore) ListAll() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := s.db.Order("id DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
