package response

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Access  string        `json:"access"`
	Refresh string        `json:"refresh"`
	User    *UserResponse `json:"user"`
}

type AccessResponse struct {
	Access string `json:"access"`
}

type UploadSignatureResponse struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	Folder    string `json:"folder"`
}
