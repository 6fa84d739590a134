package model

// User represents a user record in the `users` table. The stored column is
// named `password` for historical reasons but only ever holds a bcrypt hash.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
}

// UserView is the read-facing projection of a User. It is the only shape
// handlers ever return; the password hash stays behind the repository
// boundary.
type UserView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// View projects the entity onto its public shape.
func (u *User) View() UserView {
	return UserView{ID: u.ID, Name: u.Name}
}
