package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

const otpTTL = 10 * time.Minute

// AuthUseCase casos de uso de autenticación: registro, login y recuperación
// de contraseña con códigos de un solo uso.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	otpRepo    repository.OTPRepository
	codeSender CodeSender
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	otpRepo repository.OTPRepository,
	codeSender CodeSender,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, otpRepo: otpRepo, codeSender: codeSender, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: valida complejidad, hashea password con
// bcrypt y persiste. Retorna ErrLoginIDAlreadyExists / ErrEmailAlreadyExists
// según el campo duplicado.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := CheckPasswordComplexity(in.Password); err != nil {
		return nil, err
	}
	if existing, _ := uc.userRepo.GetByLoginID(in.LoginID); existing != nil {
		return nil, domain.ErrLoginIDAlreadyExists
	}
	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		LoginID:      in.LoginID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica login_id/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByLoginID(in.LoginID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Me retorna el usuario del token (nil si ya no existe).
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ForgotPassword genera un código de 6 dígitos con vigencia de 10 minutos y
// lo envía fuera de banda. Si el email no existe no revela nada: responde
// igual que en el caso exitoso.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, in dto.ForgotPasswordRequest) error {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil // no revelar existencia de la cuenta
	}
	code, err := generateCode()
	if err != nil {
		return err
	}
	now := time.Now()
	otp := &entity.OTP{
		ID:        uuid.New().String(),
		Email:     in.Email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(otpTTL),
	}
	if err := uc.otpRepo.Create(otp); err != nil {
		return err
	}
	return uc.codeSender.SendResetCode(ctx, in.Email, code)
}

// ResetPassword cambia la contraseña si el código está vigente y sin usar;
// el código se marca usado en el mismo flujo.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	if err := CheckPasswordComplexity(in.Password); err != nil {
		return err
	}
	otp, err := uc.otpRepo.GetActive(in.Email, in.Code)
	if err != nil {
		return err
	}
	if otp == nil || otp.Used || otp.Expired(time.Now()) {
		return domain.ErrInvalidOTP
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.otpRepo.MarkUsed(otp.ID); err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(user.ID, string(hash))
}

// CheckPasswordComplexity reglas declarativas de contraseña: mínimo 8
// caracteres, al menos una letra y un dígito. Complementa los tags validate
// del DTO (que solo cubren longitud).
func CheckPasswordComplexity(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("%w: password debe combinar letras y dígitos", domain.ErrInvalidInput)
	}
	return nil
}

// generateCode produce un código numérico de 6 dígitos con crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		LoginID:   u.LoginID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
