package models

import (
	"encoding/json"
	"strings"
)

// Cliente is a client record as served by the backend's GET /clientes.
// The admin interface only reads and selects clientes.
type Cliente struct {
	ID           int64             `json:"id"`
	Nombre       string            `json:"nombre"`
	Rut          string            `json:"rut"`
	CodigoComuna string            `json:"codigo_comuna"`
	Direccion    string            `json:"direccion"`
	Logo         string            `json:"logo,omitempty"`
	Comodatos    []json.RawMessage `json:"comodatos"`
}

// UnmarshalJSON never fails on shape mismatches: unexpected field types
// decode to zero values and a non-object entry decodes to an empty Cliente.
func (c *Cliente) UnmarshalJSON(data []byte) error {
	*c = Cliente{}
	if !isJSONObject(data) {
		return nil
	}

	var raw struct {
		ID           lenientInt64  `json:"id"`
		Nombre       lenientString `json:"nombre"`
		Rut          lenientString `json:"rut"`
		CodigoComuna lenientString `json:"codigo_comuna"`
		Direccion    lenientString `json:"direccion"`
		Logo         lenientString `json:"logo"`
		Comodatos    lenientList   `json:"comodatos"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	c.ID = int64(raw.ID)
	c.Nombre = string(raw.Nombre)
	c.Rut = string(raw.Rut)
	c.CodigoComuna = string(raw.CodigoComuna)
	c.Direccion = string(raw.Direccion)
	c.Logo = strings.TrimSpace(string(raw.Logo))
	c.Comodatos = raw.Comodatos
	return nil
}

func (c Cliente) MarshalJSON() ([]byte, error) {
	type alias Cliente
	out := alias(c)
	if out.Comodatos == nil {
		out.Comodatos = []json.RawMessage{}
	}
	return json.Marshal(out)
}

// ComodatoCount is the number of loan agreements attached to the client.
func (c Cliente) ComodatoCount() int {
	return len(c.Comodatos)
}

// LogoOr returns the client's logo reference, or placeholder when it has none.
func (c Cliente) LogoOr(placeholder string) string {
	if c.Logo == "" {
		return placeholder
	}
	return c.Logo
}
