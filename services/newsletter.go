package services

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
)

// Código de violación de unicidad en PostgreSQL.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// sqlite en tests traduce a ErrDuplicatedKey
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// SubscribeNewsletter registra el correo en el boletín. El duplicado se
// detecta por el código de unicidad, no releyendo antes de escribir.
func SubscribeNewsletter(db *gorm.DB, email string) (*models.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, NewError(KindValidation, "El correo es obligatorio")
	}

	subscriber := models.NewsletterSubscriber{Email: email}
	if err := db.Create(&subscriber).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, NewError(KindConflict, "Este correo ya está suscrito al boletín")
		}
		return nil, WrapError(KindUpstream, "No se pudo completar la suscripción", err)
	}
	return &subscriber, nil
}
