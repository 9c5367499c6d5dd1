package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
)

// IncrementArticleViews suma 1 al contador de vistas con un solo UPDATE
// atómico en el storage; escritores concurrentes no pierden incrementos.
// El contador es best-effort: si la fila no existe o el UPDATE falla, el
// conteo simplemente no avanza y el caller decide si loguear.
func IncrementArticleViews(db *gorm.DB, articleID uuid.UUID) error {
	result := db.Model(&models.Article{}).
		Where("id = ?", articleID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return WrapError(KindUpstream, "No se pudo incrementar las vistas", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewError(KindNotFound, "Artículo no encontrado")
	}
	return nil
}
