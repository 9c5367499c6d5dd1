package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles permite el acceso solo a los roles indicados.
// Asume que AuthMiddleware ya corrió y dejó "role" en el contexto.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No se pudo determinar el rol del usuario"})
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error procesando el rol del usuario"})
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para acceder a este recurso"})
		c.Abort()
	}
}
