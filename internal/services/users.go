package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/avelichko/schoolinv/internal/common"
	"github.com/avelichko/schoolinv/internal/dbx"
	"github.com/avelichko/schoolinv/internal/logging"
	"github.com/avelichko/schoolinv/internal/models"
	"github.com/avelichko/schoolinv/internal/store"
)

// MinPasswordLen is the shortest password accepted at registration and on
// password change.
const MinPasswordLen = 6

// RegisterDraft is the registration form input.
type RegisterDraft struct {
	Email        string
	Password     string
	FullName     string
	Organization string
	JobTitle     string
}

// UserService manages accounts and the current session.
//
// Registration is two-step: Register parks the account under a per-email
// pending key; Confirm promotes it to the account list, marks it verified
// and signs it in. Login rejects unconfirmed accounts with a dedicated
// error so the caller can route back to confirmation.
type UserService interface {
	Hydrate(ctx context.Context) error
	Current() *models.User
	Register(ctx context.Context, draft RegisterDraft) (models.User, error)
	Confirm(ctx context.Context, email string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, fullName, organization, jobTitle string) error
	ChangePassword(ctx context.Context, current, next, confirm string) error
	ToggleNotifications(ctx context.Context) (bool, error)
	DeleteAccount(ctx context.Context, password string) error
}

type userService struct {
	db  *sql.DB
	log logging.Logger

	mu      sync.Mutex
	current *models.User
}

func NewUserService(db *sql.DB, log logging.Logger) UserService {
	return &userService{db: db, log: log}
}

func (s *userService) getStore() store.Store {
	return store.NewSQLiteStore(s.db)
}

// Hydrate restores the signed-in user, if any.
func (s *userService) Hydrate(ctx context.Context) error {
	u, err := store.LoadSnapshot[models.User](ctx, s.getStore(), store.KeyCurrentUser)
	if err != nil {
		return fmt.Errorf("failed to hydrate session: %w", err)
	}
	s.mu.Lock()
	if u.Email != "" {
		s.current = &u
	}
	s.mu.Unlock()
	return nil
}

// Current returns a copy of the signed-in user, or nil when logged out.
func (s *userService) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *userService) loadAllUsers(ctx context.Context) ([]models.User, error) {
	return store.LoadSnapshot[[]models.User](ctx, s.getStore(), store.KeyAllUsers)
}

// Register validates the form and parks the account as pending confirmation.
// Registering the same email again overwrites the previous pending entry.
func (s *userService) Register(ctx context.Context, draft RegisterDraft) (models.User, error) {
	var zero models.User

	for field, v := range map[string]string{
		"email":        draft.Email,
		"password":     draft.Password,
		"fullName":     draft.FullName,
		"organization": draft.Organization,
		"jobTitle":     draft.JobTitle,
	} {
		if strings.TrimSpace(v) == "" {
			return zero, fmt.Errorf("%w: %s is required", common.ErrorValidation, field)
		}
	}
	if len(draft.Password) < MinPasswordLen {
		return zero, common.ErrorPasswordTooShort
	}

	u := models.NewUser(draft.Email, draft.FullName, draft.Organization, draft.JobTitle, draft.Password)
	if err := store.SaveSnapshot(ctx, s.getStore(), store.PendingUserKey(u.Email), u); err != nil {
		return zero, err
	}

	s.log.Info(ctx, "user registered, pending confirmation", "email", u.Email, "admin", u.IsAdmin)
	return u, nil
}

// Confirm promotes a pending account: verified, appended to the account
// list, pending key dropped, signed in.
func (s *userService) Confirm(ctx context.Context, email string) (models.User, error) {
	var zero models.User
	st := s.getStore()

	u, err := store.LoadSnapshot[models.User](ctx, st, store.PendingUserKey(email))
	if err != nil {
		return zero, err
	}
	if u.Email == "" {
		return zero, common.ErrorNoPendingUser
	}
	u.IsVerified = true

	all, err := s.loadAllUsers(ctx)
	if err != nil {
		return zero, err
	}
	replaced := false
	for i := range all {
		if all[i].Email == u.Email {
			all[i] = u
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, u)
	}

	if err := store.SaveSnapshot(ctx, st, store.KeyAllUsers, all); err != nil {
		return zero, err
	}
	if err := st.Delete(ctx, store.PendingUserKey(email)); err != nil {
		return zero, err
	}
	if err := store.SaveSnapshot(ctx, st, store.KeyCurrentUser, u); err != nil {
		return zero, err
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()

	s.log.Info(ctx, "user confirmed", "email", u.Email)
	return u, nil
}

// Login checks the credentials against the account list.
func (s *userService) Login(ctx context.Context, email, password string) (models.User, error) {
	var zero models.User

	all, err := s.loadAllUsers(ctx)
	if err != nil {
		return zero, err
	}
	for _, u := range all {
		if u.Email != email || u.Password != password {
			continue
		}
		if !u.IsVerified {
			return zero, common.ErrorNotVerified
		}
		if err := store.SaveSnapshot(ctx, s.getStore(), store.KeyCurrentUser, u); err != nil {
			return zero, err
		}
		s.mu.Lock()
		s.current = &u
		s.mu.Unlock()
		s.log.Info(ctx, "user logged in", "email", u.Email)
		return u, nil
	}
	return zero, common.ErrorInvalidCredentials
}

// Logout drops the session snapshot; the account itself stays.
func (s *userService) Logout(ctx context.Context) error {
	if err := s.getStore().Delete(ctx, store.KeyCurrentUser); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.log.Info(ctx, "user logged out")
	return nil
}

// saveCurrent persists a mutated current user to both the session snapshot
// and the account list.
func (s *userService) saveCurrent(ctx context.Context, u models.User) error {
	st := s.getStore()

	all, err := s.loadAllUsers(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].Email == u.Email {
			all[i] = u
			break
		}
	}
	if err := store.SaveSnapshot(ctx, st, store.KeyAllUsers, all); err != nil {
		return err
	}
	if err := store.SaveSnapshot(ctx, st, store.KeyCurrentUser, u); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	return nil
}

func (s *userService) UpdateProfile(ctx context.Context, fullName, organization, jobTitle string) error {
	u := s.Current()
	if u == nil {
		return common.ErrorInvalidCredentials
	}
	if strings.TrimSpace(fullName) != "" {
		u.FullName = fullName
	}
	if strings.TrimSpace(organization) != "" {
		u.Organization = organization
	}
	if strings.TrimSpace(jobTitle) != "" {
		u.JobTitle = jobTitle
	}
	return s.saveCurrent(ctx, *u)
}

func (s *userService) ChangePassword(ctx context.Context, current, next, confirm string) error {
	u := s.Current()
	if u == nil {
		return common.ErrorInvalidCredentials
	}
	if current != u.Password {
		return common.ErrorWrongPassword
	}
	if next != confirm {
		return common.ErrorPasswordMismatch
	}
	if len(next) < MinPasswordLen {
		return common.ErrorPasswordTooShort
	}

	u.Password = next
	if err := s.saveCurrent(ctx, *u); err != nil {
		return err
	}
	s.log.Info(ctx, "password changed", "email", u.Email)
	return nil
}

func (s *userService) ToggleNotifications(ctx context.Context) (bool, error) {
	u := s.Current()
	if u == nil {
		return false, common.ErrorInvalidCredentials
	}
	u.NotificationsEnabled = !u.NotificationsEnabled
	if err := s.saveCurrent(ctx, *u); err != nil {
		return false, err
	}
	if u.NotificationsEnabled {
		s.log.Info(ctx, "notifications enabled", "email", u.Email)
	} else {
		s.log.Info(ctx, "notifications disabled", "email", u.Email)
	}
	return u.NotificationsEnabled, nil
}

// DeleteAccount removes the account, its records and the session in one
// transaction. The password must match exactly.
func (s *userService) DeleteAccount(ctx context.Context, password string) error {
	u := s.Current()
	if u == nil {
		return common.ErrorInvalidCredentials
	}
	if password != u.Password {
		return common.ErrorWrongPassword
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := store.NewSQLiteStore(tx)

		all, err := store.LoadSnapshot[[]models.User](ctx, st, store.KeyAllUsers)
		if err != nil {
			return err
		}
		kept := all[:0:0]
		for _, other := range all {
			if other.Email != u.Email {
				kept = append(kept, other)
			}
		}
		if err := store.SaveSnapshot(ctx, st, store.KeyAllUsers, kept); err != nil {
			return err
		}
		if err := st.Delete(ctx, store.KeyRecords); err != nil {
			return err
		}
		return st.Delete(ctx, store.KeyCurrentUser)
	})
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.log.Info(ctx, "account deleted", "email", u.Email)
	return nil
}
