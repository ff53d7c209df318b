package auth

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/julianstephens/daylearn/internal/constants"
	"github.com/julianstephens/daylearn/internal/errors"
	"github.com/julianstephens/daylearn/internal/logger"
	"github.com/julianstephens/daylearn/internal/models"
	"github.com/julianstephens/daylearn/internal/storage"
)

type account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a account) user() *models.User {
	return &models.User{
		ID:        a.ID,
		Email:     a.Email,
		FullName:  a.FullName,
		Username:  a.Username,
		CreatedAt: a.CreatedAt,
	}
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// LocalProvider keeps accounts in a storage.KV with bcrypt password hashes and issues
// HS256 session tokens signed with a per-install key.
type LocalProvider struct {
	kv     storage.KV
	tokens TokenStore
	cost   int
	now    func() time.Time
}

func NewLocalProvider(kv storage.KV, tokens TokenStore) *LocalProvider {
	return &LocalProvider{
		kv:     kv,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

func failure(msg string) error {
	return fmt.Errorf("%s: %w", msg, errors.ErrAuthFailure)
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return "", failure("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", failure("invalid email address")
	}
	return email, nil
}

func accountKey(email string) string {
	return constants.AccountKeyPrefix + email
}

func (p *LocalProvider) loadAccount(email string) (account, error) {
	raw, err := p.kv.Get(accountKey(email))
	if err != nil {
		return account{}, err
	}
	var a account
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return account{}, fmt.Errorf("corrupt account record for %s: %w", email, err)
	}
	return a, nil
}

func (p *LocalProvider) SignUp(email, password string, profile models.Profile) (*models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < constants.MinPasswordLength {
		return nil, failure(fmt.Sprintf("password must be at least %d characters", constants.MinPasswordLength))
	}

	if _, err := p.kv.Get(accountKey(email)); err == nil {
		return nil, failure("account already exists")
	} else if !stderrors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		if stderrors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, failure("password is too long")
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a := account{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     strings.TrimSpace(profile.FullName),
		Username:     strings.TrimSpace(profile.Username),
		PasswordHash: string(hash),
		CreatedAt:    p.now().UTC(),
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	if err := p.kv.Set(accountKey(email), string(data)); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	logger.Info("Created account", "user", a.ID)

	if err := p.startSession(a); err != nil {
		return nil, err
	}
	return a.user(), nil
}

func (p *LocalProvider) SignIn(email, password string) (*models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, failure("email and password are required")
	}

	a, err := p.loadAccount(email)
	if stderrors.Is(err, storage.ErrNotFound) {
		return nil, failure("invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		logger.Debug("Password mismatch", "user", a.ID)
		return nil, failure("invalid email or password")
	}

	if err := p.startSession(a); err != nil {
		return nil, err
	}
	logger.Info("Signed in", "user", a.ID)
	return a.user(), nil
}

func (p *LocalProvider) CurrentUser() (*models.User, error) {
	token, err := p.tokens.Get()
	if err != nil {
		if p.tokens.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	c, err := p.parseToken(token)
	if err != nil {
		// Expired or tampered sessions count as signed out.
		logger.Warn("Discarding invalid session", "error", err)
		_ = p.tokens.Delete()
		return nil, nil
	}

	a, err := p.loadAccount(c.Email)
	if err != nil || a.ID != c.Subject {
		logger.Warn("Session refers to a missing account", "user", c.Subject)
		_ = p.tokens.Delete()
		return nil, nil
	}
	return a.user(), nil
}

func (p *LocalProvider) SignOut() error {
	if err := p.tokens.Delete(); err != nil && !p.tokens.IsNotFound(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (p *LocalProvider) startSession(a account) error {
	token, err := p.issueToken(a)
	if err != nil {
		return err
	}
	if err := p.tokens.Set(token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (p *LocalProvider) issueToken(a account) (string, error) {
	key, err := p.signingKey()
	if err != nil {
		return "", err
	}
	now := p.now()
	c := claims{
		Email: a.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID,
			Issuer:    constants.AppName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(constants.SessionTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (p *LocalProvider) parseToken(token string) (*claims, error) {
	key, err := p.signingKey()
	if err != nil {
		return nil, err
	}
	c := &claims{}
	_, err = jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(constants.AppName),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// signingKey returns the install's HMAC key, creating it on first use.
func (p *LocalProvider) signingKey() ([]byte, error) {
	raw, err := p.kv.Get(constants.SigningKeyName)
	if err == nil {
		return hex.DecodeString(raw)
	}
	if !stderrors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to read signing key: %w", err)
	}

	key := make([]byte, constants.SigningKeyBytes)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	if err := p.kv.Set(constants.SigningKeyName, hex.EncodeToString(key)); err != nil {
		return nil, fmt.Errorf("failed to save signing key: %w", err)
	}
	return key, nil
}

// Accounts lists the emails of every local account.
func (p *LocalProvider) Accounts() ([]string, error) {
	keys, err := p.kv.Keys(constants.AccountKeyPrefix)
	if err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(keys))
	for _, k := range keys {
		emails = append(emails, strings.TrimPrefix(k, constants.AccountKeyPrefix))
	}
	return emails, nil
}
