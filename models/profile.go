package models

import "time"

// Profile is the purchase registration a user must finish before checkout.
// One profile per user; its existence is what the checkout gate reads.
type Profile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"uniqueIndex;not null" json:"user_id"`
	CPF       string    `gorm:"size:11;not null" json:"cpf"`
	Birthdate time.Time `json:"birthdate"`
	Address   Address   `gorm:"embedded" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address fields embedded in Profile
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	CEP        string `gorm:"size:8" json:"cep"`
	City       string `json:"city"`
	State      string `gorm:"size:2" json:"state"`
}
