package entities

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                     string             `bson:"name" json:"name"`
	Email                    string             `bson:"email" json:"email"`
	Password                 string             `bson:"password" json:"-"`
	Active                   bool               `bson:"active" json:"active"`
	VerificationToken        string             `bson:"verification_token,omitempty" json:"-"`
	VerificationTokenExpires time.Time          `bson:"verification_token_expires,omitempty" json:"-"`
	CreatedAt                time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt                time.Time          `bson:"updated_at" json:"updatedAt"`
}

func NewUser(name, email, password string) *User {
	now := time.Now()
	return &User{
		Name:      name,
		Email:     email,
		Password:  password,
		Active:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *User) validate() error {
	if u.Name == "" {
		return errors.New("name must not be empty")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares the stored hash against a plaintext candidate.
// A hash bcrypt cannot parse is reported as ErrCorruptCredential so callers
// never mistake a broken record for a wrong password.
func (u *User) CheckPassword(password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	return ErrCorruptCredential
}

// BeginVerification puts the user into the pending-verification state.
func (u *User) BeginVerification(token string, expires time.Time) {
	u.Active = false
	u.VerificationToken = token
	u.VerificationTokenExpires = expires
	u.UpdatedAt = time.Now()
}

// MarkAsVerified activates the account and clears the verification token so
// it can never be presented again.
func (u *User) MarkAsVerified() {
	u.Active = true
	u.VerificationToken = ""
	u.VerificationTokenExpires = time.Time{}
	u.UpdatedAt = time.Now()
}

// GenerateVerificationToken returns 20 random bytes, hex encoded.
func GenerateVerificationToken() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
