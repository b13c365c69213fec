package entity

import "time"

// CustomerKind discrimina el subtipo de cliente (persona natural o empresa).
type CustomerKind string

const (
	KindIndividual CustomerKind = "Individual"
	KindCompany    CustomerKind = "Company"
)

// ParseCustomerKind convierte el valor recibido por la API al tipo de dominio.
func ParseCustomerKind(s string) (CustomerKind, bool) {
	switch CustomerKind(s) {
	case KindIndividual, KindCompany:
		return CustomerKind(s), true
	}
	return "", false
}

// CustomerStatus estado del cliente.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "Active"
	CustomerInactive CustomerStatus = "Inactive"
)

// ParseCustomerStatus convierte el valor recibido por la API al tipo de dominio.
func ParseCustomerStatus(s string) (CustomerStatus, bool) {
	switch CustomerStatus(s) {
	case CustomerActive, CustomerInactive:
		return CustomerStatus(s), true
	}
	return "", false
}

// CustomerSubtype es la unión etiquetada del subtipo de cliente. Un Customer
// lleva exactamente un subtipo poblado y el kind se deriva de él, de modo que
// "payload presente y consistente con kind" se cumple por construcción.
type CustomerSubtype interface {
	SubtypeKind() CustomerKind
}

// IndividualDetails datos propios de un cliente persona natural.
type IndividualDetails struct {
	FirstName string
	LastName  string
}

// SubtypeKind implementa CustomerSubtype.
func (IndividualDetails) SubtypeKind() CustomerKind { return KindIndividual }

// CompanyDetails datos propios de un cliente empresa.
type CompanyDetails struct {
	CompanyName   string
	ContactPerson string
	Position      string
}

// SubtypeKind implementa CustomerSubtype.
func (CompanyDetails) SubtypeKind() CustomerKind { return KindCompany }

// Customer representa un cliente del taller.
type Customer struct {
	ID          string
	Email       string
	PhoneNumber string
	Address     string
	Notes       string
	Status      CustomerStatus
	Subtype     CustomerSubtype
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Kind devuelve el tipo de cliente derivado del subtipo poblado.
func (c *Customer) Kind() CustomerKind {
	return c.Subtype.SubtypeKind()
}
