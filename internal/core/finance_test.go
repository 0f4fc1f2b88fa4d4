package core

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountDecodesNumberOrString(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"json number", `{"id_gasto": 1, "monto": 42.50}`, "42.5"},
		{"json string", `{"id_gasto": 1, "monto": "42.50"}`, "42.5"},
		{"integer", `{"id_gasto": 1, "monto": 100}`, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var expense Expense
			if err := json.Unmarshal([]byte(tt.payload), &expense); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			want, _ := decimal.NewFromString(tt.want)
			if !expense.Amount.Equal(want) {
				t.Errorf("Amount = %s, want %s", expense.Amount, want)
			}
		})
	}
}

func TestGoalDecodesServerAggregates(t *testing.T) {
	payload := `{
		"id_meta": 3,
		"nombre": "Vacaciones",
		"monto_objetivo": "1500.00",
		"estado": "activa",
		"monto_acumulado": "375.00",
		"porcentaje_completado": 25.0,
		"total_aportes": 5
	}`

	var goal Goal
	if err := json.Unmarshal([]byte(payload), &goal); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if goal.State != GoalActive {
		t.Errorf("State = %q, want %q", goal.State, GoalActive)
	}
	if goal.PercentComplete != 25.0 {
		t.Errorf("PercentComplete = %v, want 25", goal.PercentComplete)
	}
	if goal.ContributionCount != 5 {
		t.Errorf("ContributionCount = %d, want 5", goal.ContributionCount)
	}
	if want := decimal.RequireFromString("375.00"); !goal.Accumulated.Equal(want) {
		t.Errorf("Accumulated = %s, want %s", goal.Accumulated, want)
	}
}

func TestExpensePatchOmitsUnsetFields(t *testing.T) {
	amount := decimal.RequireFromString("10.00")
	encoded, err := json.Marshal(ExpensePatch{Amount: &amount})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(encoded, &fields); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if _, ok := fields["monto"]; !ok {
		t.Error("set monto missing from payload")
	}
	if _, ok := fields["descripcion"]; ok {
		t.Error("unset descripcion serialized")
	}
	if _, ok := fields["id_categoria"]; ok {
		t.Error("unset id_categoria serialized")
	}
}
