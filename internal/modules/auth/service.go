package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/florarium/core/internal/models"
	jwtpkg "github.com/florarium/core/internal/pkg/jwt"
	mysqldrv "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenTTL is the bearer token lifetime. Account status is re-checked on
// every request, so revocation does not wait for expiry.
const TokenTTL = 7 * 24 * time.Hour

var (
	errUserExists         = errors.New("username or email already taken")
	errInvalidCredentials = errors.New("invalid credentials")
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Signup creates an active cultivator account and issues a token.
// Uniqueness is checked across every row, deleted accounts included:
// anonymized usernames stay reserved forever.
func (s *Service) Signup(dto *SignupDTO) (*models.UserModel, string, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var count int64
	if err := s.db.Model(&models.UserModel{}).
		Where("username = ? OR email = ?", dto.Username, email).
		Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", errUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	displayName := dto.DisplayName
	if displayName == "" {
		displayName = dto.Username
	}
	u := models.UserModel{
		Username:      dto.Username,
		DisplayName:   displayName,
		Email:         &email,
		Password:      string(hash),
		Role:          models.RoleCultivator,
		AccountStatus: models.AccountActive,
	}
	if err := s.db.Create(&u).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, "", errUserExists
		}
		return nil, "", err
	}

	token, err := jwtpkg.Sign(u.ID, u.Role, TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

// isDuplicateKey reports whether err is a unique-index violation. The
// pre-insert existence check races with concurrent signups, so the index
// is the source of truth for uniqueness.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqldrv.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// Signin verifies credentials against the store. A missing user, a wrong
// password and a non-active account all fail identically; the last-login
// stamp and token issuance happen in one transaction.
func (s *Service) Signin(email, password string) (*models.UserModel, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u models.UserModel
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}
	if u.AccountStatus != models.AccountActive {
		return nil, "", errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, "", errInvalidCredentials
	}

	var token string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&u).Update("last_login_at", &now).Error; err != nil {
			return err
		}
		u.LastLoginAt = &now

		var err error
		token, err = jwtpkg.Sign(u.ID, u.Role, TokenTTL)
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}
