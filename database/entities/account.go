package entities

// Account is a coach or scorekeeper login. The password hash never leaves
// the server.
type Account struct {
	ID           string `gorm:"column:id;primaryKey" json:"id"`
	Email        string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}
