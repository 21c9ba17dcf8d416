package owners

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"vetclinic/internal/apperr"
	"vetclinic/internal/domain/pets"
	"vetclinic/internal/patch"
	"vetclinic/internal/record"
)

// ContactPhone es el canal preferido por defecto. El documento acepta cualquier texto.
const ContactPhone = "telefono"

var (
	ErrNotFound       = apperr.NotFound("Dueño no encontrado")
	ErrDuplicateEmail = apperr.Conflict("Ya existe un dueño registrado con ese email")
)

// ContactInfo es el documento JSONB info_contacto del dueño.
type ContactInfo struct {
	PreferredContact *string `json:"contacto_preferido"`
	EmergencyPhone   *string `json:"telefono_emergencia"`
	Notes            *string `json:"notas"`
}

func DefaultContactInfo() ContactInfo {
	pref := ContactPhone
	return ContactInfo{PreferredContact: &pref}
}

type contactInfoDoc ContactInfo

// UnmarshalJSON aplica los defaults a las claves que no vienen en el body.
func (c *ContactInfo) UnmarshalJSON(b []byte) error {
	doc := contactInfoDoc(DefaultContactInfo())
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*c = ContactInfo(doc)
	return nil
}

func (c ContactInfo) Value() (driver.Value, error) {
	b, err := json.Marshal(contactInfoDoc(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan lee el documento tal cual está guardado, sin defaults.
func (c *ContactInfo) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*c = ContactInfo{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("owners: cannot scan %T into ContactInfo", src)
	}
	var doc contactInfoDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("owners: decode info_contacto: %w", err)
	}
	*c = ContactInfo(doc)
	return nil
}

// Owner representa a una persona propietaria de mascotas.
type Owner struct {
	ID int64

	Name    string
	Email   string
	Phone   *string
	Address *string

	ContactInfo ContactInfo

	CreatedAt record.Timestamp
}

// Detail es el dueño con sus mascotas ordenadas por id.
type Detail struct {
	Owner
	Pets []pets.Pet
}

// Patch lista los campos actualizables del dueño. Cualquier otra clave
// del body se descarta al decodificar.
type Patch struct {
	Name        patch.Field[string]      `json:"nombre"`
	Email       patch.Field[string]      `json:"email"`
	Phone       patch.Field[string]      `json:"telefono"`
	Address     patch.Field[string]      `json:"direccion"`
	ContactInfo patch.Field[ContactInfo] `json:"info_contacto"`
}
