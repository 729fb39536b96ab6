package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/gratitude-grove/core/internal/models"
	sessionpkg "github.com/gratitude-grove/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service handles signup, signin and profile identity changes.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// EmailAvailable reports whether no profile row holds the email.
func (s *Service) EmailAvailable(email string) (bool, error) {
	var count int64
	err := s.db.Model(&models.ProfileModel{}).Where("email = ?", email).Count(&count).Error
	return count == 0, err
}

// NicknameAvailable reports whether no profile row holds the nickname.
// excludeUserID lets a profile ignore its own row during a nickname change.
func (s *Service) NicknameAvailable(nickname, excludeUserID string) (bool, error) {
	tx := s.db.Model(&models.ProfileModel{}).Where("nickname = ?", nickname)
	if excludeUserID != "" {
		tx = tx.Where("id <> ?", excludeUserID)
	}
	var count int64
	err := tx.Count(&count).Error
	return count == 0, err
}

// SignUp validates, pre-checks availability and inserts the profile. The
// pre-checks only shorten the failure path: the unique indexes on email and
// nickname decide concurrent signups, and their violations map to the same
// taken errors.
func (s *Service) SignUp(dto *SignUpDTO, ip, ua string) (*models.ProfileModel, string, error) {
	if err := ValidatePassword(dto.Password); err != nil {
		return nil, "", err
	}
	if err := ValidateNickname(dto.Nickname); err != nil {
		return nil, "", err
	}

	if ok, err := s.EmailAvailable(dto.Email); err != nil {
		return nil, "", err
	} else if !ok {
		return nil, "", errEmailTaken
	}
	if ok, err := s.NicknameAvailable(dto.Nickname, ""); err != nil {
		return nil, "", err
	} else if !ok {
		return nil, "", errNicknameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	profile := models.ProfileModel{
		Email:    dto.Email,
		Nickname: dto.Nickname,
		Password: string(hash),
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, "", translateDuplicate(err)
	}

	token, _, err := sessionpkg.Issue(s.db, profile.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return nil, "", err
	}
	return &profile, token, nil
}

// SignIn verifies credentials and issues a session. A missing email and a
// wrong password are indistinguishable to the caller.
func (s *Service) SignIn(email, password, ip, ua string) (*models.ProfileModel, string, error) {
	var profile models.ProfileModel
	if err := s.db.Where("email = ?", email).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(3 * time.Second)
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		time.Sleep(3 * time.Second)
		return nil, "", errInvalidCredentials
	}

	token, _, err := sessionpkg.Issue(s.db, profile.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return nil, "", err
	}
	return &profile, token, nil
}

// SignOut revokes the session row. Idempotent.
func (s *Service) SignOut(userID, sessionID string) error {
	return sessionpkg.Revoke(s.db, userID, sessionID)
}

// GetProfile fetches a profile by id.
func (s *Service) GetProfile(userID string) (*models.ProfileModel, error) {
	var profile models.ProfileModel
	if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateNickname re-checks availability excluding the caller's own row, then
// replaces the nickname and returns the fresh profile.
func (s *Service) UpdateNickname(userID, nickname string) (*models.ProfileModel, error) {
	if err := ValidateNickname(nickname); err != nil {
		return nil, err
	}
	if nickname == "" {
		return nil, errNicknameCharset
	}

	if ok, err := s.NicknameAvailable(nickname, userID); err != nil {
		return nil, err
	} else if !ok {
		return nil, errNicknameTaken
	}

	if err := s.db.Model(&models.ProfileModel{}).
		Where("id = ?", userID).
		Update("nickname", nickname).Error; err != nil {
		return nil, translateDuplicate(err)
	}
	return s.GetProfile(userID)
}

// translateDuplicate maps unique-index violations to the taken errors, so a
// signup losing the check-then-act race still gets the specific message.
func translateDuplicate(err error) error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != 1062 {
		return err
	}
	if strings.Contains(mysqlErr.Message, "email") {
		return errEmailTaken
	}
	return errNicknameTaken
}
