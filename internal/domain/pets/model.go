package pets

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"vetclinic/internal/apperr"
	"vetclinic/internal/domain/appointments"
	"vetclinic/internal/patch"
	"vetclinic/internal/record"

	"github.com/shopspring/decimal"
)

// MaxWeightKg es el tope de NUMERIC(5,2).
var MaxWeightKg = decimal.RequireFromString("999.99")

var (
	ErrNotFound     = apperr.NotFound("Mascota no encontrada")
	ErrOwnerMissing = apperr.NotFound("El dueño especificado no existe")
)

// MedicalInfo es el documento JSONB info_medica.
// Sterilized es tri-estado: true, false o nil (no se sabe).
type MedicalInfo struct {
	Allergies  []string `json:"alergias"`
	Conditions []string `json:"condiciones"`
	Vaccines   []string `json:"vacunas"`
	Microchip  *string  `json:"microchip"`
	Sterilized *bool    `json:"esterilizado"`
	Notes      *string  `json:"notas"`
}

func DefaultMedicalInfo() MedicalInfo {
	return MedicalInfo{
		Allergies:  []string{},
		Conditions: []string{},
		Vaccines:   []string{},
	}
}

type medicalInfoDoc MedicalInfo

func (m *MedicalInfo) UnmarshalJSON(b []byte) error {
	doc := medicalInfoDoc(DefaultMedicalInfo())
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*m = MedicalInfo(doc).normalized()
	return nil
}

// normalized evita que un array nulo llegue como null al JSONB.
func (m MedicalInfo) normalized() MedicalInfo {
	if m.Allergies == nil {
		m.Allergies = []string{}
	}
	if m.Conditions == nil {
		m.Conditions = []string{}
	}
	if m.Vaccines == nil {
		m.Vaccines = []string{}
	}
	return m
}

func (m MedicalInfo) Value() (driver.Value, error) {
	b, err := json.Marshal(medicalInfoDoc(m.normalized()))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *MedicalInfo) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*m = DefaultMedicalInfo()
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("pets: cannot scan %T into MedicalInfo", src)
	}
	var doc medicalInfoDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("pets: decode info_medica: %w", err)
	}
	*m = MedicalInfo(doc).normalized()
	return nil
}

// Pet representa un paciente de la clínica.
type Pet struct {
	ID      int64
	OwnerID int64

	Name      string
	Species   string
	Breed     *string
	BirthDate *record.Date
	WeightKg  decimal.NullDecimal

	MedicalInfo MedicalInfo

	CreatedAt record.Timestamp
}

// Listing es una fila del listado, con el nombre del dueño.
type Listing struct {
	Pet
	OwnerName string
}

// Detail es la ficha de la mascota con su historial de citas,
// de la más reciente a la más antigua.
type Detail struct {
	Pet
	OwnerName  string
	OwnerPhone *string
	History    []appointments.Appointment
}

type ListFilter struct {
	Species string // substring, sin distinguir mayúsculas
	OwnerID *int64 // exacto
}

// Patch lista los únicos campos que se pueden actualizar. Especie y dueño
// no se cambian por PATCH.
type Patch struct {
	Name        patch.Field[string]          `json:"nombre"`
	Breed       patch.Field[string]          `json:"raza"`
	BirthDate   patch.Field[record.Date]     `json:"fecha_nac"`
	WeightKg    patch.Field[decimal.Decimal] `json:"peso_kg"`
	MedicalInfo patch.Field[MedicalInfo]     `json:"info_medica"`
}
