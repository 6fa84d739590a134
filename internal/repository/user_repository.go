package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"userbase/internal/model"
)

// UserRepository defines persistence operations on the users table.
// Mutations run inside a transaction so a failure never leaves partial
// state; GORM rolls back before the error is surfaced. Not-found is a
// nil/false result, never an error: only genuine store failures error.
type UserRepository interface {
	Create(ctx context.Context, name, passwordHash string) (uint, error)
	FindByName(ctx context.Context, name string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.UserView, error)
	List(ctx context.Context) ([]model.UserView, error)
	Update(ctx context.Context, id uint, name, passwordHash *string) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	Ping(ctx context.Context) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user and returns the store-assigned id.
func (r *userRepository) Create(ctx context.Context, name, passwordHash string) (uint, error) {
	user := model.User{Name: name, PasswordHash: passwordHash}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

// FindByName returns the full record including the password hash. It exists
// for credential verification during login and must never feed a response
// body directly.
func (r *userRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by name: %w", err)
	}
	return &user, nil
}

// FindByID returns the hashless projection, or nil when no row matches.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.UserView, error) {
	var view model.UserView
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("id", "name").
		Where("id = ?", id).
		First(&view).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &view, nil
}

// List returns all users as projections, ordered by id ascending.
func (r *userRepository) List(ctx context.Context) ([]model.UserView, error) {
	views := make([]model.UserView, 0)
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("id", "name").
		Order("id ASC").
		Find(&views).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return views, nil
}

// Update applies the provided fields in a single statement, so name and
// password change together or not at all. It returns false when no row
// matched the id. Callers guarantee at least one field is set.
func (r *userRepository) Update(ctx context.Context, id uint, name, passwordHash *string) (bool, error) {
	fields := map[string]interface{}{}
	if name != nil {
		fields["name"] = *name
	}
	if passwordHash != nil {
		fields["password"] = *passwordHash
	}

	matched := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// MySQL reports affected rows as *changed* rows, so a no-op update
		// would look like a miss; check for the row explicitly instead.
		var count int64
		if err := tx.Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		if err := tx.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return err
		}
		matched = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("update user: %w", err)
	}
	return matched, nil
}

// Delete physically removes the row, returning false when none matched.
func (r *userRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var matched int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		matched = res.RowsAffected
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return matched > 0, nil
}

// Ping verifies the store is reachable.
func (r *userRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("acquire sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}
	return nil
}
