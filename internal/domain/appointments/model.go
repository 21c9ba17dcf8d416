package appointments

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"vetclinic/internal/apperr"
	"vetclinic/internal/record"
)

type Status string

const (
	StatusScheduled Status = "programada"
	StatusCompleted Status = "completada"
	StatusCancelled Status = "cancelada"
	StatusNoShow    Status = "no_asistio"
)

var (
	ErrNotFound     = apperr.NotFound("Cita no encontrada")
	ErrPetMissing   = apperr.NotFound("La mascota no existe")
	ErrOwnerMissing = apperr.NotFound("El dueño especificado no existe")
)

// ValidStatuses en el orden en que se muestran al cliente.
var ValidStatuses = []Status{StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow}

func (s Status) Valid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseStatus valida un estado recibido del cliente. No recorta espacios:
// " completada " no es un estado.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", apperr.BadRequest(fmt.Sprintf("Estado no válido. Opciones: %v", ValidStatuses))
	}
	return st, nil
}

// PaymentPending es el estado de pago con el que nace toda cita.
const PaymentPending = "pendiente"

// ConsultationDetails es el documento JSONB datos_cita.
type ConsultationDetails struct {
	Symptoms       []string `json:"sintomas"`
	Treatment      *string  `json:"tratamiento"`
	Veterinarian   *string  `json:"veterinario"`
	Cost           *float64 `json:"coste"`
	Payment        *string  `json:"pago"`
	FollowUpNeeded *bool    `json:"requiere_seguimiento"`
}

func DefaultConsultationDetails() ConsultationDetails {
	payment := PaymentPending
	followUp := false
	return ConsultationDetails{
		Symptoms:       []string{},
		Payment:        &payment,
		FollowUpNeeded: &followUp,
	}
}

type consultationDoc ConsultationDetails

func (d *ConsultationDetails) UnmarshalJSON(b []byte) error {
	doc := consultationDoc(DefaultConsultationDetails())
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*d = ConsultationDetails(doc).normalized()
	return nil
}

func (d ConsultationDetails) normalized() ConsultationDetails {
	if d.Symptoms == nil {
		d.Symptoms = []string{}
	}
	return d
}

func (d ConsultationDetails) Value() (driver.Value, error) {
	b, err := json.Marshal(consultationDoc(d.normalized()))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *ConsultationDetails) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*d = ConsultationDetails{Symptoms: []string{}}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("appointments: cannot scan %T into ConsultationDetails", src)
	}
	var doc consultationDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("appointments: decode datos_cita: %w", err)
	}
	*d = ConsultationDetails(doc).normalized()
	return nil
}

// Appointment es una visita a la clínica.
type Appointment struct {
	ID      int64
	PetID   int64
	OwnerID int64

	ScheduledAt record.Timestamp
	Reason      string
	Status      Status
	Notes       *string

	Details ConsultationDetails

	CreatedAt record.Timestamp
}

// Listing es una fila de agenda: la cita con datos de mascota y dueño.
type Listing struct {
	Appointment
	PetName    string
	Species    string
	OwnerName  string
	OwnerPhone *string
}

type ListFilter struct {
	Status Status // exacto; vacío = todos
	PetID  *int64
}
