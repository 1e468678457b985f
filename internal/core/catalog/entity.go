package catalog

// Region は地域の参照データです。
type Region struct {
	ID   int64
	Name string
}

// BusinessStatus はオペレーターの業務ステータス ID です。
type BusinessStatus int

const (
	StatusPendingCreate BusinessStatus = 1
	StatusCreated       BusinessStatus = 2
	StatusPendingDelete BusinessStatus = 3
	StatusDeleted       BusinessStatus = 4
)

// Valid は既知の 4 ステータスのいずれかであるかを返します。
func (s BusinessStatus) Valid() bool {
	switch s {
	case StatusPendingCreate, StatusCreated, StatusPendingDelete, StatusDeleted:
		return true
	default:
		return false
	}
}

func (s BusinessStatus) String() string {
	switch s {
	case StatusPendingCreate:
		return "pending_create"
	case StatusCreated:
		return "created"
	case StatusPendingDelete:
		return "pending_delete"
	case StatusDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Status は業務ステータスと表示用の説明です。
type Status struct {
	ID          BusinessStatus
	Description string
}

// DefaultStatuses は固定の業務ステータス一覧です。
func DefaultStatuses() []Status {
	return []Status{
		{ID: StatusPendingCreate, Description: "Pendiente crear"},
		{ID: StatusCreated, Description: "Creado"},
		{ID: StatusPendingDelete, Description: "Pendiente eliminar"},
		{ID: StatusDeleted, Description: "Eliminado"},
	}
}
