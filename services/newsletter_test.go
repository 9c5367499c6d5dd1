package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeNewsletter(t *testing.T) {
	db := testDB(t)

	sub, err := SubscribeNewsletter(db, "  Lector@Ejemplo.COM ")
	require.NoError(t, err)
	assert.Equal(t, "lector@ejemplo.com", sub.Email, "el correo se normaliza")

	// El duplicado se detecta por el código de unicidad, no por mensaje
	_, err = SubscribeNewsletter(db, "lector@ejemplo.com")
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestSubscribeNewsletterEmptyEmail(t *testing.T) {
	db := testDB(t)

	_, err := SubscribeNewsletter(db, "   ")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}
