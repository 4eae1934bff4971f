package usecases

import (
	"context"
	"strings"
	"sync"
	"time"

	"sentinel/internal/domain/user"
	"sentinel/internal/infrastructure/auth"
	"sentinel/internal/shared/authorization"
	"sentinel/internal/shared/errors"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*user.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*user.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := u.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email().String() == strings.ToLower(strings.TrimSpace(email)) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIdentifier(ctx context.Context, identifier string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trimmed := strings.TrimSpace(identifier)
	for _, u := range r.users {
		if u.Email().String() == strings.ToLower(trimmed) || u.Username().String() == trimmed {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email().String() == strings.ToLower(email) || u.Username().String() == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID()]; !ok {
		return errors.NewNotFoundError("user not found")
	}
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) GetByVerificationTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		data := u.GetAuthData()
		if data.EmailVerificationToken != nil && *data.EmailVerificationToken == tokenHash {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByPasswordResetTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		data := u.GetAuthData()
		if data.PasswordResetToken != nil && *data.PasswordResetToken == tokenHash {
			return u, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*user.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*user.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *user.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("session not found")
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSessionRepo) GetActiveByUserID(ctx context.Context, userID uint) ([]*user.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*user.Session
	for _, s := range r.sessions {
		if s.UserID == userID && s.IsActive {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) GetActiveByUserIDAndTokenHash(ctx context.Context, userID uint, tokenHash string) (*user.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.UserID == userID && s.TokenHash == tokenHash && s.IsActive {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, s *user.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; !ok {
		return errors.NewNotFoundError("session not found")
	}
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) DeactivateAllByUserID(ctx context.Context, userID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, s := range r.sessions {
		if s.UserID == userID && s.IsActive {
			s.Deactivate()
			count++
		}
	}
	return count, nil
}

func (r *fakeSessionRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for id, s := range r.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(r.sessions, id)
			count++
		}
	}
	return count, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, digest string) bool { return digest == "hashed:"+password }

type fakeJWT struct{}

func (fakeJWT) Generate(userID uint, email string, role authorization.UserRole) (string, error) {
	return "token-for-" + email, nil
}

func (fakeJWT) Verify(tokenString string) (*auth.Claims, error) {
	return nil, errors.NewTokenInvalidError()
}

func (fakeJWT) TTL() time.Duration { return 168 * time.Hour }

type fakeEmail struct {
	mu       sync.Mutex
	welcome  []string
	verify   []string
	reset    []string
	resetTok []string
	changed  []string
}

func (f *fakeEmail) SendWelcomeEmail(to, firstName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcome = append(f.welcome, to)
	return nil
}

func (f *fakeEmail) SendVerificationEmail(to, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verify = append(f.verify, token)
	return nil
}

func (f *fakeEmail) SendPasswordResetEmail(to, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset = append(f.reset, to)
	f.resetTok = append(f.resetTok, token)
	return nil
}

func (f *fakeEmail) SendPasswordChangedEmail(to string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changed = append(f.changed, to)
	return nil
}

func (f *fakeEmail) resetTokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.resetTok))
	copy(out, f.resetTok)
	return out
}
