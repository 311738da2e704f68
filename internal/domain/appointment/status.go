package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusUnconfirmed Status = "UNCONFIRMED"
	StatusConfirmed   Status = "CONFIRMED"
	StatusCancelled   Status = "CANCELLED"
	StatusCompleted   Status = "COMPLETED"
)

// FilterAll é o valor-sentinela aceito pelo filtro de status: devolve a
// coleção inteira sem filtrar.
const FilterAll = "all"

var AllStatuses = []Status{
	StatusUnconfirmed,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// StatusLabels mapeia status para rótulos de exibição.
var StatusLabels = map[Status]string{
	StatusUnconfirmed: "Não Confirmado",
	StatusConfirmed:   "Confirmado",
	StatusCancelled:   "Cancelado",
	StatusCompleted:   "Concluído",
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnconfirmed, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// InitialStatus é o status forçado na criação, independente do que o
// chamador enviar.
func InitialStatus() Status {
	return StatusUnconfirmed
}

// ===============================
// Appointment Origin
// ===============================

type Origin string

const (
	OriginSite  Origin = "site"  // criado pelo cliente na página pública
	OriginAdmin Origin = "admin" // criado pela equipe no painel
)

var OriginLabels = map[Origin]string{
	OriginSite:  "Site",
	OriginAdmin: "Admin",
}

func (o Origin) IsValid() bool {
	return o == OriginSite || o == OriginAdmin
}
