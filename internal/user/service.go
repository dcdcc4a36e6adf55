package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/pixkit/pkg/cpf"
	"github.com/dmitrymomot/pixkit/pkg/file"
	"github.com/dmitrymomot/pixkit/pkg/logger"
	"github.com/dmitrymomot/pixkit/pkg/sanitizer"
	"github.com/dmitrymomot/pixkit/pkg/validator"
)

const MinPasswordLength = 6

// Storage defines the persistence operations required by Service.
type Storage interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// CheckUnique reports whether cpf and email are already registered.
	CheckUnique(ctx context.Context, cpf, email string) (cpfTaken, emailTaken bool, err error)
	UpdateProfilePicture(ctx context.Context, id uuid.UUID, url, key string) error
}

// Service registers users, checks credentials and manages profile pictures.
type Service struct {
	storage    Storage
	files      file.Storage
	logger     *slog.Logger
	bcryptCost int
	policy     file.Policy
	now        func() time.Time
}

type Option func(*Service)

// WithLogger sets a custom logger for the service
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithBcryptCost sets the bcrypt cost for password hashing
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

// WithPicturePolicy overrides file.ProfilePicturePolicy.
func WithPicturePolicy(p file.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// NewService creates a user service. files may be nil when profile pictures
// are not served; SetProfilePicture then fails.
func NewService(storage Storage, files file.Storage, opts ...Option) *Service {
	s := &Service{
		storage:    storage,
		files:      files,
		logger:     slog.New(slog.DiscardHandler),
		bcryptCost: bcrypt.DefaultCost,
		policy:     file.ProfilePicturePolicy,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register validates the input, enforces CPF and e-mail uniqueness and
// stores a new user with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	name := sanitizer.CapitalizeWords(in.Name)
	email := sanitizer.NormalizeEmail(in.Email)
	doc := cpf.Normalize(in.CPF)

	if err := validator.Apply(
		validator.Required("name", name),
		validator.MaxLen("name", name, 120),
		validator.Required("email", email),
		validator.ValidEmail("email", email),
		validator.ValidCPF("cpf", doc),
		validator.MinLen("password", in.Password, MinPasswordLength),
		validator.MaxLen("password", in.Password, 72),
	); err != nil {
		return nil, err
	}

	cpfTaken, emailTaken, err := s.storage.CheckUnique(ctx, doc, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if err := uniquenessError(cpfTaken, emailTaken); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		CPF:          doc,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.storage.CreateUser(ctx, u); err != nil {
		if errors.Is(err, ErrCPFInUse) || errors.Is(err, ErrEmailInUse) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.UserID(u.ID),
		logger.CPF(u.CPF),
		logger.Component("user"),
	)

	return u, nil
}

func uniquenessError(cpfTaken, emailTaken bool) error {
	switch {
	case cpfTaken && emailTaken:
		return ErrCPFAndEmailInUse
	case cpfTaken:
		return ErrCPFInUse
	case emailTaken:
		return ErrEmailInUse
	default:
		return nil
	}
}

// Authenticate verifies email and password, returns user if valid.
// Returns generic ErrInvalidCredentials for any failure to prevent user enumeration attacks.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to load user for login",
				logger.Error(err),
				logger.Component("user"),
			)
		}
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// Get returns the user by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// SetProfilePicture validates the uploaded image against the picture policy,
// stores it and records its public URL. The previous picture is removed on a
// best-effort basis.
func (s *Service) SetProfilePicture(ctx context.Context, id uuid.UUID, fh *multipart.FileHeader) (*User, error) {
	if fh == nil {
		return nil, validator.ValidationErrors{{
			Field:             "profile_picture",
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": "profile_picture"},
		}}
	}

	mimeType, err := s.policy.Check(fh)
	if err != nil {
		return nil, pictureError(err, s.policy)
	}

	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.files == nil {
		return nil, fmt.Errorf("profile picture storage is not configured")
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", file.ErrFailedToOpenFile, err)
	}
	defer src.Close()

	key := fmt.Sprintf("profile-pictures/%s/%s%s", u.ID, uuid.New(), file.Extension(mimeType))
	obj, err := s.files.Put(ctx, key, src, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to store profile picture: %w", err)
	}

	if err := s.storage.UpdateProfilePicture(ctx, u.ID, obj.URL, obj.Key); err != nil {
		if delErr := s.files.Delete(ctx, obj.Key); delErr != nil {
			s.logger.WarnContext(ctx, "failed to clean up profile picture",
				logger.UserID(u.ID),
				logger.Error(delErr),
				logger.Component("user"),
			)
		}
		return nil, fmt.Errorf("failed to save profile picture: %w", err)
	}

	if old := u.ProfilePictureKey; old != "" && old != obj.Key {
		if err := s.files.Delete(ctx, old); err != nil && !errors.Is(err, file.ErrFileNotFound) {
			s.logger.WarnContext(ctx, "failed to delete previous profile picture",
				logger.UserID(u.ID),
				logger.Error(err),
				logger.Component("user"),
			)
		}
	}

	u.ProfilePicture = obj.URL
	u.ProfilePictureKey = obj.Key
	return u, nil
}

// pictureError turns policy violations into field errors.
func pictureError(err error, p file.Policy) error {
	switch {
	case errors.Is(err, file.ErrFileTooLarge):
		return validator.ValidationErrors{{
			Field:             "profile_picture",
			Message:           fmt.Sprintf("file must be at most %d bytes", p.MaxBytes),
			TranslationKey:    "validation.file_size",
			TranslationValues: map[string]any{"max": p.MaxBytes},
		}}
	case errors.Is(err, file.ErrMIMETypeNotAllowed):
		return validator.ValidationErrors{{
			Field:          "profile_picture",
			Message:        "file type is not allowed",
			TranslationKey: "validation.file_type",
		}}
	default:
		return err
	}
}
