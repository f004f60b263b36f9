package selector

import (
	"strings"

	"comodatos-admin/internal/models"
)

// Filter keeps the clientes whose name contains search, ignoring case.
// An empty search keeps every cliente. The input slice is never modified.
func Filter(clientes []models.Cliente, search string) []models.Cliente {
	needle := strings.ToLower(search)

	out := make([]models.Cliente, 0, len(clientes))
	for _, c := range clientes {
		if strings.Contains(strings.ToLower(c.Nombre), needle) {
			out = append(out, c)
		}
	}
	return out
}
