package token

import (
	"errors"
	"time"
)

var ErrExpiredToken = errors.New("token has expired")
var ErrInvalidToken = errors.New("token is invalid")

type PayloadUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ProfileID int64     `json:"profile_id"`
	Document  string    `json:"document"`
	GoogleID  string    `json:"google_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
}

func NewPayloadUser(id int64, name, email string, profileId int64, document, googleId string, expireAt time.Time) (*PayloadUser, error) {
	payload := &PayloadUser{
		ID:        id,
		Name:      name,
		Email:     email,
		ProfileID: profileId,
		Document:  document,
		GoogleID:  googleId,
		IssuedAt:  time.Now().UTC(),
		ExpiredAt: expireAt,
	}

	return payload, nil
}

func (payload *PayloadUser) valid() error {
	if time.Now().After(payload.ExpiredAt) {
		return ErrExpiredToken
	}
	return nil
}
