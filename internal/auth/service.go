package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"examhall/internal/config"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthService struct {
	EmailService *config.EmailService
}
type UserService struct {
	repo        *UserRepository
	authService *AuthService
}

func NewUserService(repo *UserRepository, authService *AuthService) *UserService {
	return &UserService{repo: repo, authService: authService}
}

func NewAuthService(emailService *config.EmailService) *AuthService {
	return &AuthService{EmailService: emailService}
}

func (s *UserService) RegisterUser(ctx context.Context, req RegisterRequest) error {
	existingUser, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existingUser != nil {
		return errors.New("email already registered")
	}

	role := req.Role
	if role == "" {
		role = RoleStaff
	}

	hashPassword, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &User{
		ID:           primitive.NewObjectID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashPassword,
		Role:         role,
		Verified:     false,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return err
	}
	token, _ := GenerateJWT(user.Name, user.Email, user.Role, time.Hour*24)
	return s.authService.SendVerificationEmail(user.Email, token)
}

func (s *UserService) AuthenticateUser(ctx context.Context, cred Credential) (string, error) {
	user, err := s.repo.FindByEmail(ctx, cred.Email)
	if err != nil || user == nil || !CheckPasswordHash(cred.Password, user.PasswordHash) {
		log.Printf("invalid credentials for identifier: %s", cred.Email)
		return "", errors.New("invalid credentials")
	}

	if !user.Verified {
		return "", errors.New("email not verified")
	}

	token, err := GenerateJWT(user.Name, user.Email, user.Role, time.Hour*24)
	if err != nil {
		return "", errors.New("token not generated")
	}
	return token, nil
}

func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := ValidateJWT(token)
	if err != nil {
		return errors.New("invalid token")
	}
	user, err := s.repo.FindByEmail(ctx, claims.Email)
	if err != nil || user == nil {
		return errors.New("user not found")
	}
	user.Verified = true
	return s.repo.UpdateUser(ctx, user)
}

func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return errors.New("user not found")
	}
	resetToken, _ := GenerateJWT(user.Name, user.Email, user.Role, time.Minute*15)
	user.ResetToken = resetToken
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return err
	}

	if err := s.authService.SendResetPasswordEmail(email, resetToken); err != nil {
		log.Println("email sending error:", err)
		return errors.New("failed to send reset password email")
	}
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := ValidateJWT(token)
	if err != nil {
		return errors.New("invalid token")
	}

	user, err := s.repo.FindByEmail(ctx, claims.Email)
	if err != nil || user == nil {
		return errors.New("user not found")
	}
	hashPassword, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashPassword
	user.ResetToken = ""
	return s.repo.UpdateUser(ctx, user)
}

func (a *AuthService) SendVerificationEmail(email, token string) error {
	subject := "Email Verification"
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}
	body := fmt.Sprintf("Click the link to verify your email: %s/verify-email?token=%s", frontendURL, token)
	return a.EmailService.SendEmail(email, subject, body)
}

func (a *AuthService) SendResetPasswordEmail(email, token string) error {
	subject := "Password Reset"
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}
	body := fmt.Sprintf("Click the link to reset your password: %s/reset-password?token=%s", frontendURL, token)
	return a.EmailService.SendEmail(email, subject, body)
}
