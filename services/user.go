package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"planner/dto"
	"planner/model"
	"planner/store"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type UserService struct {
	deps
	checkMX  bool
	lookupMX func(domain string) ([]*net.MX, error)
}

func NewUserService(s store.DocumentStore, checkMX bool) *UserService {
	return &UserService{deps: newDeps(s), checkMX: checkMX, lookupMX: net.LookupMX}
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) validateEmail(is *issues, email string) {
	if !emailPattern.MatchString(email) {
		is.add("email", "must be a valid email address")
		return
	}
	if !s.checkMX {
		return
	}
	_, domain, _ := strings.Cut(email, "@")
	if mx, err := s.lookupMX(domain); err != nil || len(mx) == 0 {
		is.add("email", "domain does not accept mail")
	}
}

func validatePassword(is *issues, password string) {
	if len(password) < 8 {
		is.add("password", "must be at least 8 characters")
		return
	}
	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !letter || !digit {
		is.add("password", "must contain a letter and a digit")
	}
}

// Register creates a user. The normalized email is reserved first so two
// concurrent registrations cannot both succeed.
func (s *UserService) Register(ctx context.Context, req dto.SignupRequest) (*model.User, error) {
	var is issues
	email := NormalizeEmail(req.Email)
	s.validateEmail(&is, email)
	validatePassword(&is, req.Password)
	name := requireText(&is, "name", req.Name, 100)
	if err := is.err(); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := s.timestamp()
	user := &model.User{
		UserID:    newID(),
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}

	reservation := model.EmailReservation{UserID: user.UserID, CreatedAt: now}
	if err := s.store.Create(ctx, store.UserEmails, email, reservation); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, fmt.Errorf("email %s: %w", email, ErrConflict)
		}
		return nil, fmt.Errorf("reserving email: %w", err)
	}
	if err := s.store.Create(ctx, store.Users, user.UserID, user); err != nil {
		_ = s.store.Delete(ctx, store.UserEmails, email)
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// Authenticate checks credentials. Unknown email and wrong password both
// return ErrUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	users, err := findRecords[model.User](ctx, s.store, store.Users, store.Eq("email", NormalizeEmail(email)))
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUnauthorized
	}
	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return getRecord[model.User](ctx, s.store, store.Users, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, req dto.UpdateProfileRequest) (*model.User, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	var is issues
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = requireText(&is, "name", *req.Name, 100)
	}
	if req.Password != nil {
		validatePassword(&is, *req.Password)
	}
	if err := is.err(); err != nil {
		return nil, err
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		fields["password"] = string(hashed)
	}
	fields["updatedAt"] = s.timestamp()

	if err := updateRecord(ctx, s.store, store.Users, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
