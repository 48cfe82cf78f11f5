package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.OTPRepository = (*OTPRepo)(nil)

// OTPRepo implementación del puerto OTPRepository sobre PostgreSQL.
type OTPRepo struct {
	q Querier
}

// NewOTPRepository construye el adaptador de persistencia para códigos de recuperación.
func NewOTPRepository(q Querier) *OTPRepo {
	return &OTPRepo{q: q}
}

// Create persiste un nuevo código OTP.
func (r *OTPRepo) Create(otp *entity.OTP) error {
	query := `
		INSERT INTO otps (id, email, code, created_at, expires_at, used)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		otp.ID, otp.Email, otp.Code, otp.CreatedAt, otp.ExpiresAt, otp.Used,
	)
	if err != nil {
		return fmt.Errorf("insert otp: %w", err)
	}
	return nil
}

// GetActive devuelve el código sin usar más reciente que coincida con email
// y code. nil si no hay ninguno. La validación de expiración es del caso de
// uso, no de la consulta.
func (r *OTPRepo) GetActive(email, code string) (*entity.OTP, error) {
	query := `
		SELECT id, email, code, created_at, expires_at, used
		FROM otps
		WHERE email = $1 AND code = $2 AND used = false
		ORDER BY created_at DESC LIMIT 1`
	var o entity.OTP
	err := r.q.QueryRow(context.Background(), query, email, code).Scan(
		&o.ID, &o.Email, &o.Code, &o.CreatedAt, &o.ExpiresAt, &o.Used,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active otp: %w", err)
	}
	return &o, nil
}

// MarkUsed invalida un código para que no pueda reutilizarse.
func (r *OTPRepo) MarkUsed(id string) error {
	query := `UPDATE otps SET used = true WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("mark otp used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
