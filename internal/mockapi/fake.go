package mockapi

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
)

const msgCancelled = "request cancelled"

// Latency is the artificial round-trip per operation. Jitter adds up to that
// much random extra delay.
type Latency struct {
	Register    time.Duration
	SocialLogin time.Duration
	KYC         time.Duration
	Jitter      time.Duration
}

// Fake answers from the catalog after an artificial delay. Nothing is
// persisted: registering the same phone twice yields two unrelated users.
type Fake struct {
	cat     *catalog.Catalog
	latency Latency
	logger  *zap.Logger
	now     func() time.Time
}

func NewFake(cat *catalog.Catalog, latency Latency, logger *zap.Logger) *Fake {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fake{cat: cat, latency: latency, logger: logger, now: time.Now}
}

func (f *Fake) delay(base time.Duration) time.Duration {
	if f.latency.Jitter > 0 {
		base += time.Duration(rand.Int63n(int64(f.latency.Jitter) + 1))
	}
	return base
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (f *Fake) Register(ctx context.Context, p Profile) AuthResult {
	if err := wait(ctx, f.delay(f.latency.Register)); err != nil {
		return failure(msgCancelled)
	}
	p, reason := normalizeProfile(p)
	if reason != "" {
		f.logger.Debug("mock register rejected", zap.String("reason", reason))
		return failure(reason)
	}

	user := &User{
		ID:        uuid.NewString(),
		Name:      p.Name,
		Phone:     p.Phone,
		Category:  p.Category,
		UserType:  p.Role,
		Avatar:    p.Avatar,
		CreatedAt: f.now().UTC(),
	}
	f.logger.Debug("mock register",
		zap.String("user_id", user.ID),
		zap.String("user_type", string(user.UserType)),
		zap.String("category", user.Category),
	)
	return AuthResult{Success: true, Message: "Registration successful", User: user}
}

func (f *Fake) SocialLogin(ctx context.Context, provider string) AuthResult {
	if err := wait(ctx, f.delay(f.latency.SocialLogin)); err != nil {
		return failure(msgCancelled)
	}
	prov := domain.Provider(strings.ToLower(strings.TrimSpace(provider)))
	if !prov.Valid() {
		return failure("unsupported provider: " + provider + " (allowed: google, facebook)")
	}

	user := &User{
		ID:        "social-" + string(prov) + "-user",
		Name:      "WheelBoard Member",
		Email:     "member@" + string(prov) + ".example",
		Category:  "Fleet Professional",
		UserType:  domain.UserProfessional,
		Provider:  string(prov),
		CreatedAt: f.now().UTC(),
	}
	f.logger.Debug("mock social login", zap.String("provider", string(prov)))
	return AuthResult{Success: true, Message: "Signed in with " + string(prov), User: user}
}

func (f *Fake) GetKYCStatus(ctx context.Context, userID string) (KYCData, error) {
	if err := wait(ctx, f.delay(f.latency.KYC)); err != nil {
		return KYCData{}, err
	}
	docs := f.cat.KYCDocuments(userID)
	f.logger.Debug("mock kyc status", zap.String("user_id", userID))
	return KYCData{UserID: userID, Progress: KYCProgress(docs), Documents: docs}, nil
}
