package parser

import (
	"errors"
	"testing"
)

func TestResolveColumns(t *testing.T) {
	rows := [][]string{
		{"", "", ""},
		{"Поставщик", "Адрес", "ФИРМА", `"Цена"`, "Кол-во"},
		{"ООО Ромашка", "Москва", "Nike", "100", "2"},
	}

	m, err := ResolveColumns(rows)
	if err != nil {
		t.Fatalf("ResolveColumns failed: %v", err)
	}

	tests := []struct {
		role Role
		col  int
	}{
		{RoleSupplier, 1},
		{RoleAddress, 2},
		{RoleBrand, 3},
		{RolePrice, 4},
		{RoleQuantity, 5},
		{RoleMaterial, Unresolved},
	}
	for _, tt := range tests {
		if got := m.Col(tt.role); got != tt.col {
			t.Errorf("Col(%d) = %d, expected %d", tt.role, got, tt.col)
		}
	}
	if m.HeaderRow != 2 {
		t.Errorf("HeaderRow = %d, expected 2", m.HeaderRow)
	}
}

func TestResolveColumnsAnyPosition(t *testing.T) {
	// Mandatory headers anywhere in the range, any casing and quoting.
	rows := [][]string{
		{"отчёт за месяц"},
		{},
		{"", "", "фирма"},
		{"'ЦЕНА'"},
	}

	m, err := ResolveColumns(rows)
	if err != nil {
		t.Fatalf("ResolveColumns failed: %v", err)
	}
	if m.Col(RoleBrand) != 3 {
		t.Errorf("brand col = %d, expected 3", m.Col(RoleBrand))
	}
	if m.Col(RolePrice) != 1 {
		t.Errorf("price col = %d, expected 1", m.Col(RolePrice))
	}
}

func TestResolveColumnsFirstMatchWins(t *testing.T) {
	// Row-major scan order: the first occurrence binds the slot.
	rows := [][]string{
		{"Цена", "Фирма", "Цена"},
	}

	m, err := ResolveColumns(rows)
	if err != nil {
		t.Fatalf("ResolveColumns failed: %v", err)
	}
	if m.Col(RolePrice) != 1 {
		t.Errorf("price col = %d, expected first match 1", m.Col(RolePrice))
	}
}

func TestResolveColumnsMissingMandatory(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
	}{
		{"no price", [][]string{{"Фирма", "Материал"}}},
		{"no brand", [][]string{{"Цена", "Размер"}}},
		{"empty", [][]string{}},
	}

	for _, tt := range tests {
		_, err := ResolveColumns(tt.rows)
		if !errors.Is(err, ErrMissingHeaders) {
			t.Errorf("%s: expected ErrMissingHeaders, got %v", tt.name, err)
		}
	}
}
