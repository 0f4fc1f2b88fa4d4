package core

import "github.com/shopspring/decimal"

// CategoryKind distinguishes income categories from expense categories.
type CategoryKind string

const (
	KindIncome  CategoryKind = "ingreso"
	KindExpense CategoryKind = "gasto"
)

// GoalState is the lifecycle state of a savings goal.
type GoalState string

const (
	GoalActive    GoalState = "activa"
	GoalCompleted GoalState = "completada"
	GoalCancelled GoalState = "cancelada"
)

// Monetary amounts arrive from the API as either JSON numbers or strings;
// decimal.Decimal accepts both and preserves exact cents.

type Category struct {
	ID        int64        `json:"id_categoria"`
	Name      string       `json:"nombre"`
	Kind      CategoryKind `json:"tipo"`
	Color     string       `json:"color"`
	Icon      string       `json:"icono"`
	Global    bool         `json:"es_global"`
	UserID    int64        `json:"id_usuario,omitempty"`
	CreatedAt string       `json:"fecha_creacion"`
	UpdatedAt string       `json:"fecha_actualizacion"`
}

type CategoryStats struct {
	TotalExpenses    decimal.Decimal `json:"total_gastos"`
	TotalIncomes     decimal.Decimal `json:"total_ingresos"`
	TransactionCount int             `json:"cantidad_transacciones"`
	MonthlyAverage   decimal.Decimal `json:"promedio_mensual"`
}

type Expense struct {
	ID            int64           `json:"id_gasto"`
	Description   string          `json:"descripcion"`
	Amount        decimal.Decimal `json:"monto"`
	Date          string          `json:"fecha"`
	PaymentMethod string          `json:"metodo_pago"`
	Note          string          `json:"nota,omitempty"`
	Recurring     bool            `json:"recurrente"`
	CategoryID    int64           `json:"id_categoria"`
	GroupID       *int64          `json:"id_grupo,omitempty"`
	UserID        int64           `json:"id_usuario"`
	CreatedAt     string          `json:"fecha_creacion,omitempty"`
	UpdatedAt     string          `json:"fecha_actualizacion,omitempty"`
}

type Income struct {
	ID          int64           `json:"id_ingreso"`
	Description string          `json:"descripcion"`
	Amount      decimal.Decimal `json:"monto"`
	Date        string          `json:"fecha"`
	Source      string          `json:"fuente"`
	CategoryID  int64           `json:"id_categoria"`
	GroupID     *int64          `json:"id_grupo,omitempty"`
	UserID      int64           `json:"id_usuario"`
	CreatedAt   string          `json:"fecha_creacion,omitempty"`
	UpdatedAt   string          `json:"fecha_actualizacion,omitempty"`
}

// Total is the aggregate returned by the income and expense total endpoints.
type Total struct {
	Total decimal.Decimal `json:"total"`
}

type Goal struct {
	ID           int64           `json:"id_meta"`
	Name         string          `json:"nombre"`
	TargetAmount decimal.Decimal `json:"monto_objetivo"`
	StartDate    string          `json:"fecha_inicio"`
	EndDate      string          `json:"fecha_fin"`
	State        GoalState       `json:"estado"`
	GroupID      *int64          `json:"id_grupo,omitempty"`
	UserID       int64           `json:"id_usuario"`
	CreatedAt    string          `json:"fecha_creacion,omitempty"`
	UpdatedAt    string          `json:"fecha_actualizacion,omitempty"`

	// Aggregates the API computes server-side.
	Accumulated       decimal.Decimal `json:"monto_acumulado"`
	PercentComplete   float64         `json:"porcentaje_completado"`
	ContributionCount int             `json:"total_aportes"`
}

// GoalProgress is the flat progress view from the goal-progress endpoint.
type GoalProgress struct {
	GoalID          int64           `json:"id_meta"`
	Name            string          `json:"nombre"`
	TargetAmount    decimal.Decimal `json:"monto_objetivo"`
	Accumulated     decimal.Decimal `json:"monto_acumulado"`
	PercentComplete float64         `json:"porcentaje_completado"`
	State           string          `json:"estado"`
	Remaining       decimal.Decimal `json:"faltante"`
}

type GoalContribution struct {
	ID        int64           `json:"id_aporte"`
	GoalID    int64           `json:"id_meta"`
	UserID    int64           `json:"id_usuario"`
	Amount    decimal.Decimal `json:"monto"`
	Date      string          `json:"fecha"`
	CreatedAt string          `json:"fecha_creacion,omitempty"`
	UpdatedAt string          `json:"fecha_actualizacion,omitempty"`
}

// ContributionTotal aggregates contributions for one goal.
type ContributionTotal struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"cantidad"`
}

// Create/update payloads. Update payloads use pointers so the client sends
// only the fields the caller intends to change.

type NewCategory struct {
	Name   string       `json:"nombre"`
	Kind   CategoryKind `json:"tipo"`
	Color  string       `json:"color"`
	Icon   string       `json:"icono"`
	Global bool         `json:"es_global,omitempty"`
}

type CategoryPatch struct {
	Name  *string       `json:"nombre,omitempty"`
	Kind  *CategoryKind `json:"tipo,omitempty"`
	Color *string       `json:"color,omitempty"`
	Icon  *string       `json:"icono,omitempty"`
}

type NewExpense struct {
	Description   string          `json:"descripcion"`
	Amount        decimal.Decimal `json:"monto"`
	Date          string          `json:"fecha"`
	PaymentMethod string          `json:"metodo_pago"`
	Note          string          `json:"nota,omitempty"`
	Recurring     bool            `json:"recurrente,omitempty"`
	CategoryID    int64           `json:"id_categoria"`
	GroupID       *int64          `json:"id_grupo,omitempty"`
}

type ExpensePatch struct {
	Description   *string          `json:"descripcion,omitempty"`
	Amount        *decimal.Decimal `json:"monto,omitempty"`
	Date          *string          `json:"fecha,omitempty"`
	PaymentMethod *string          `json:"metodo_pago,omitempty"`
	Note          *string          `json:"nota,omitempty"`
	Recurring     *bool            `json:"recurrente,omitempty"`
	CategoryID    *int64           `json:"id_categoria,omitempty"`
	GroupID       *int64           `json:"id_grupo,omitempty"`
}

type NewIncome struct {
	Description string          `json:"descripcion"`
	Amount      decimal.Decimal `json:"monto"`
	Date        string          `json:"fecha"`
	Source      string          `json:"fuente"`
	CategoryID  int64           `json:"id_categoria"`
	GroupID     *int64          `json:"id_grupo,omitempty"`
}

type IncomePatch struct {
	Description *string          `json:"descripcion,omitempty"`
	Amount      *decimal.Decimal `json:"monto,omitempty"`
	Date        *string          `json:"fecha,omitempty"`
	Source      *string          `json:"fuente,omitempty"`
	CategoryID  *int64           `json:"id_categoria,omitempty"`
	GroupID     *int64           `json:"id_grupo,omitempty"`
}

type NewGoal struct {
	Name         string          `json:"nombre"`
	TargetAmount decimal.Decimal `json:"monto_objetivo"`
	StartDate    string          `json:"fecha_inicio"`
	EndDate      string          `json:"fecha_fin"`
	State        GoalState       `json:"estado,omitempty"`
	GroupID      *int64          `json:"id_grupo,omitempty"`
}

type GoalPatch struct {
	Name         *string          `json:"nombre,omitempty"`
	TargetAmount *decimal.Decimal `json:"monto_objetivo,omitempty"`
	StartDate    *string          `json:"fecha_inicio,omitempty"`
	EndDate      *string          `json:"fecha_fin,omitempty"`
	State        *GoalState       `json:"estado,omitempty"`
}

type NewContribution struct {
	GoalID int64           `json:"id_meta"`
	Amount decimal.Decimal `json:"monto"`
	Date   string          `json:"fecha"`
}

type ContributionPatch struct {
	Amount *decimal.Decimal `json:"monto,omitempty"`
	Date   *string          `json:"fecha,omitempty"`
}
