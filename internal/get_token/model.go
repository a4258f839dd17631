package get_token

import (
	"time"
)

type PayloadUserDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ProfileID int64     `json:"profile_id"`
	Document  string    `json:"document"`
	GoogleID  string    `json:"google_id"`
	ExpireAt  time.Time `json:"expire_at"`
}
