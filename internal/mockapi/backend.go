// Package mockapi defines the contract of the operations a real backend would
// serve (register, social login, KYC status) and an in-memory fake of it.
// Failures are returned as data: auth calls resolve with Success=false and a
// message instead of an error.
package mockapi

import (
	"context"
	"math"
	"time"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
)

type Backend interface {
	Register(ctx context.Context, p Profile) AuthResult
	SocialLogin(ctx context.Context, provider string) AuthResult
	// GetKYCStatus only errors when ctx is done or the transport fails.
	GetKYCStatus(ctx context.Context, userID string) (KYCData, error)
}

// Profile is the registration payload. Password is a placeholder and is
// neither stored nor echoed.
type Profile struct {
	Name     string          `json:"name"`
	Phone    string          `json:"phone"`
	Password string          `json:"password"`
	Category string          `json:"category"`
	Role     domain.UserType `json:"role"`
	Avatar   string          `json:"avatar,omitempty"` // data URL
}

type User struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	Email     string          `json:"email,omitempty"`
	Category  string          `json:"category"`
	UserType  domain.UserType `json:"userType"`
	Avatar    string          `json:"avatar,omitempty"`
	Provider  string          `json:"provider,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}

func failure(msg string) AuthResult {
	return AuthResult{Success: false, Message: msg}
}

type KYCData struct {
	UserID    string                              `json:"userId"`
	Progress  int                                 `json:"progress"`
	Documents map[domain.DocKind]domain.DocStatus `json:"documents"`
}

// KYCProgress is round(present / required * 100) over domain.RequiredDocs,
// where present means verified or pending. Always within [0, 100].
func KYCProgress(docs map[domain.DocKind]domain.DocStatus) int {
	total := len(domain.RequiredDocs)
	if total == 0 {
		return 0
	}
	present := 0
	for _, kind := range domain.RequiredDocs {
		if docs[kind].Present() {
			present++
		}
	}
	p := int(math.Round(float64(present) / float64(total) * 100))
	return max(0, min(100, p))
}
