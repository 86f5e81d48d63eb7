package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blognest/core/internal/database"
	"github.com/blognest/core/internal/models"
	"github.com/blognest/core/internal/pkg/jwt"
	"github.com/blognest/core/internal/pkg/mail"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Domain errors surfaced to handlers. Login deliberately collapses
// unknown-email and wrong-password into one message.
var (
	ErrUserExists         = errors.New("User with that email or username already exists")
	ErrInvalidCredentials = errors.New("Invalid Credentials")
	ErrInvalidOTP         = errors.New("Invalid OTP")
	ErrOTPExpired         = errors.New("OTP has expired")
	ErrUserNotFound       = errors.New("User not found")
	ErrEmailTaken         = errors.New("Email is already in use")
)

type Service struct {
	users  *mongo.Collection
	otps   *mongo.Collection
	logins *mongo.Collection
	mailer *mail.Sender
}

func NewService(db *mongo.Database, mailer *mail.Sender) *Service {
	return &Service{
		users:  db.Collection(database.Users),
		otps:   db.Collection(database.OTPs),
		logins: db.Collection(database.LoginActivities),
		mailer: mailer,
	}
}

// Signup registers an account in the unverified state and emails it an OTP.
// An inactive account with the same email or name is overwritten so a user
// who abandoned verification can re-register; an active one is rejected.
func (s *Service) Signup(ctx context.Context, dto *SignupDTO) error {
	var existing models.User
	err := s.users.FindOne(ctx, bson.M{
		"$or": bson.A{bson.M{"email": dto.Email}, bson.M{"name": dto.Name}},
	}).Decode(&existing)
	switch {
	case err == nil && existing.IsActive:
		return ErrUserExists
	case err != nil && !errors.Is(err, mongo.ErrNoDocuments):
		return err
	}

	hash, hashErr := bcrypt.GenerateFromPassword([]byte(dto.Password), bcryptCost)
	if hashErr != nil {
		return hashErr
	}

	now := time.Now()
	if errors.Is(err, mongo.ErrNoDocuments) {
		_, err = s.users.InsertOne(ctx, models.User{
			Name:      dto.Name,
			Email:     dto.Email,
			Password:  string(hash),
			Role:      models.RoleUser,
			LastLogin: now,
			IsActive:  false,
			CreatedAt: now,
		})
	} else {
		_, err = s.users.UpdateByID(ctx, existing.ID, bson.M{"$set": bson.M{
			"name":      dto.Name,
			"email":     dto.Email,
			"password":  string(hash),
			"lastLogin": now,
			"isActive":  false,
		}})
	}
	if err != nil {
		return err
	}

	return s.issueOTP(ctx, dto.Email, mail.SubjectRegistration)
}

// VerifyOTP consumes a pending passcode, activates the account and issues
// the first session token.
func (s *Service) VerifyOTP(ctx context.Context, dto *VerifyOTPDTO) (string, error) {
	otp, err := s.findOTP(ctx, dto.Email, dto.OTP)
	if err != nil {
		return "", err
	}

	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": dto.Email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", fmt.Errorf("verify otp: %w", ErrUserNotFound)
		}
		return "", err
	}
	if _, err := s.users.UpdateByID(ctx, user.ID, bson.M{"$set": bson.M{"isActive": true}}); err != nil {
		return "", err
	}
	if _, err := s.otps.DeleteOne(ctx, bson.M{"_id": otp.ID}); err != nil {
		return "", err
	}

	user.IsActive = true
	return signToken(&user)
}

// Login authenticates by password. It does not check isActive: an
// unverified account that knows its password can log in directly.
func (s *Service) Login(ctx context.Context, dto *LoginDTO) (string, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": dto.Email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	if _, err := s.users.UpdateByID(ctx, user.ID, bson.M{"$set": bson.M{"lastLogin": now}}); err != nil {
		return "", err
	}
	if _, err := s.logins.InsertOne(ctx, models.LoginActivity{User: user.ID, Timestamp: now}); err != nil {
		return "", err
	}

	return signToken(&user)
}

// GoogleLogin trusts the OAuth-asserted email. Unknown emails get an active
// account with a hashed throwaway password that is never used to log in.
func (s *Service) GoogleLogin(ctx context.Context, dto *GoogleLoginDTO) (token string, created bool, err error) {
	var user models.User
	err = s.users.FindOne(ctx, bson.M{"email": dto.Email}).Decode(&user)
	if err == nil {
		token, err = signToken(&user)
		return token, false, err
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcryptCost)
	if err != nil {
		return "", false, err
	}
	now := time.Now()
	user = models.User{
		Name:           dto.Name,
		Email:          dto.Email,
		Password:       string(hash),
		Role:           models.RoleUser,
		ProfilePicture: dto.PhotoURL,
		LastLogin:      now,
		IsActive:       true,
		CreatedAt:      now,
	}
	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return "", false, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	token, err = signToken(&user)
	return token, true, err
}

// ForgotPassword issues a reset OTP to a known account.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	count, err := s.users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return s.issueOTP(ctx, email, mail.SubjectPasswordReset)
}

// ResetPassword consumes a reset OTP and replaces the stored hash.
func (s *Service) ResetPassword(ctx context.Context, dto *ResetPasswordDTO) error {
	otp, err := s.findOTP(ctx, dto.Email, dto.OTP)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcryptCost)
	if err != nil {
		return err
	}
	res, err := s.users.UpdateOne(ctx, bson.M{"email": dto.Email}, bson.M{"$set": bson.M{"password": string(hash)}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}

	_, err = s.otps.DeleteOne(ctx, bson.M{"_id": otp.ID})
	return err
}

// CurrentUser loads the account behind a token principal.
func (s *Service) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes name/email, guarding email uniqueness against other
// accounts.
func (s *Service) UpdateProfile(ctx context.Context, userID primitive.ObjectID, dto *UpdateProfileDTO) (*models.User, error) {
	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(dto.Email, user.Email) {
		count, err := s.users.CountDocuments(ctx, bson.M{
			"email": dto.Email,
			"_id":   bson.M{"$ne": userID},
		})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
	}

	if _, err := s.users.UpdateByID(ctx, userID, bson.M{"$set": bson.M{
		"name":  dto.Name,
		"email": dto.Email,
	}}); err != nil {
		return nil, err
	}
	user.Name = dto.Name
	user.Email = dto.Email
	return user, nil
}

// SetProfilePicture stores the client-supplied data URL verbatim.
func (s *Service) SetProfilePicture(ctx context.Context, userID primitive.ObjectID, picture string) error {
	res, err := s.users.UpdateByID(ctx, userID, bson.M{"$set": bson.M{"profilePicture": picture}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *Service) issueOTP(ctx context.Context, email, subject string) error {
	code, err := generateOTP()
	if err != nil {
		return err
	}
	if _, err := s.otps.InsertOne(ctx, models.OTP{
		Email:     email,
		Code:      code,
		CreatedAt: time.Now(),
	}); err != nil {
		return err
	}
	if err := s.mailer.SendOTP(email, subject, code); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	return nil
}

// findOTP resolves an (email, code) pair to an unexpired passcode document.
func (s *Service) findOTP(ctx context.Context, email, code string) (*models.OTP, error) {
	var otp models.OTP
	if err := s.otps.FindOne(ctx, bson.M{"email": email, "otp": code}).Decode(&otp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidOTP
		}
		return nil, err
	}
	if otp.Expired(time.Now()) {
		return nil, ErrOTPExpired
	}
	return &otp, nil
}

func signToken(user *models.User) (string, error) {
	return jwt.Sign(jwt.Principal{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}
