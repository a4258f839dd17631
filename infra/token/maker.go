package token

import (
	"time"
)

type Maker interface {
	CreateTokenUser(id int64, name string, email string, profileId int64, document string, googleId string, expireAt time.Time) (string, error)
	VerifyTokenUser(token string) (*PayloadUser, error)
}
