package pgxcasbin

import (
	"context"
	"errors"
	"testing"

	"github.com/casbin/casbin/v3/model"
	"github.com/shandysiswandi/academia/internal/pkg/pgtest"
)

const testModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

func newModel(t *testing.T) model.Model {
	t.Helper()
	m, err := model.NewModelFromString(testModel)
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	return m
}

func policies(m model.Model, sec, ptype string) [][]string {
	ast, ok := m[sec][ptype]
	if !ok {
		return nil
	}
	return ast.Policy
}

func TestPad(t *testing.T) {
	tests := []struct {
		name    string
		rule    []string
		want    []string
		wantErr error
	}{
		{name: "policy", rule: []string{"admin", "students", "write"}, want: []string{"p", "admin", "students", "write", "", "", ""}},
		{name: "empty", rule: nil, wantErr: ErrRuleEmpty},
		{name: "too long", rule: []string{"1", "2", "3", "4", "5", "6", "7"}, wantErr: ErrRuleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got, err := pad("p", tt.rule)

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("pad() error = %v, want %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("pad() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("pad()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWithTableName(t *testing.T) {
	a := NewAdapter(nil, WithTableName("CasbinRules"))

	if a.table != "casbin_rules" {
		t.Fatalf("table = %q, want casbin_rules", a.table)
	}
}

func TestWhereFields(t *testing.T) {
	tests := []struct {
		name       string
		fieldIndex int
		values     []string
		wantWhere  string
		wantArgs   int
		wantErr    error
	}{
		{name: "ptype only", wantWhere: "ptype = $1", wantArgs: 1},
		{name: "skips empty", values: []string{"admin", "", "write"}, wantWhere: "ptype = $1 AND v0 = $2 AND v2 = $3", wantArgs: 3},
		{name: "offset", fieldIndex: 1, values: []string{"students"}, wantWhere: "ptype = $1 AND v1 = $2", wantArgs: 2},
		{name: "out of range", fieldIndex: 5, values: []string{"a", "b"}, wantErr: ErrRuleTooLong},
		{name: "negative index", fieldIndex: -1, wantErr: ErrRuleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			where, args, err := whereFields("p", tt.fieldIndex, tt.values...)

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("whereFields() error = %v, want %v", err, tt.wantErr)
			}
			if where != tt.wantWhere || len(args) != tt.wantArgs {
				t.Fatalf("whereFields() = %q, %v", where, args)
			}
		})
	}
}

func TestModelFilter(t *testing.T) {
	// Act
	ft := ModelFilter(newModel(t))

	// Assert
	if len(ft) != 2 {
		t.Fatalf("ModelFilter() = %v, want p and g", ft)
	}
	for _, ptype := range []string{"p", "g"} {
		conds, ok := ft[ptype]
		if !ok || len(conds) != 1 || len(conds[0]) != 0 {
			t.Fatalf("ModelFilter()[%s] = %v, want one match-all condition", ptype, conds)
		}
	}
}

func TestAdapter_FilterGuards(t *testing.T) {
	// Arrange
	a := NewAdapter(nil)
	m := newModel(t)

	// Act
	errType := a.LoadFilteredPolicy(m, map[string]string{"p": "admin"})
	a.filtered.Store(true)
	errSave := a.SavePolicy(m)

	// Assert
	if !errors.Is(errType, ErrInvalidFilterType) {
		t.Fatalf("LoadFilteredPolicy() error = %v, want %v", errType, ErrInvalidFilterType)
	}
	if !errors.Is(errSave, ErrFilteredSave) {
		t.Fatalf("SavePolicy() error = %v, want %v", errSave, ErrFilteredSave)
	}
}

func TestAdapter_LoadFilteredPolicy(t *testing.T) {
	// Arrange
	db := pgtest.New(t)
	a := NewAdapter(db)
	ctx := context.Background()
	if _, err := db.Exec(ctx, "DELETE FROM casbin_rules"); err != nil {
		t.Fatalf("clear rules: %v", err)
	}
	for _, r := range []struct {
		ptype string
		rule  []string
	}{
		{ptype: "p", rule: []string{"admin", "students", "read"}},
		{ptype: "p", rule: []string{"editor", "courses", "write"}},
		{ptype: "g", rule: []string{"alice", "admin"}},
		{ptype: "g2", rule: []string{"students", "records"}},
	} {
		if err := a.AddPolicyCtx(ctx, r.ptype[:1], r.ptype, r.rule); err != nil {
			t.Fatalf("AddPolicyCtx(%v) error = %v", r.rule, err)
		}
	}

	// Act
	byModel := newModel(t)
	errModel := a.LoadFilteredPolicyCtx(ctx, byModel, ModelFilter(byModel))
	filteredAfterModel := a.IsFiltered()
	errSave := a.SavePolicyCtx(ctx, byModel)

	byRole := newModel(t)
	errRole := a.LoadFilteredPolicyCtx(ctx, byRole, Filter{"p": {{"editor"}}})

	full := newModel(t)
	full.AddDef("g", "g2", "_, _")
	errFull := a.LoadPolicyCtx(ctx, full)
	filteredAfterFull := a.IsFilteredCtx(ctx)

	// Assert
	if errModel != nil || errRole != nil || errFull != nil {
		t.Fatalf("load errors = %v, %v, %v", errModel, errRole, errFull)
	}
	if !filteredAfterModel || filteredAfterFull {
		t.Fatalf("IsFiltered = %v after filtered load, %v after full load", filteredAfterModel, filteredAfterFull)
	}
	if !errors.Is(errSave, ErrFilteredSave) {
		t.Fatalf("SavePolicyCtx() error = %v, want %v", errSave, ErrFilteredSave)
	}
	if got := policies(byModel, "p", "p"); len(got) != 2 {
		t.Fatalf("model filter p = %v, want 2 rules", got)
	}
	if got := policies(byModel, "g", "g"); len(got) != 1 {
		t.Fatalf("model filter g = %v, want 1 rule", got)
	}
	if got := policies(byModel, "g", "g2"); len(got) != 0 {
		t.Fatalf("model filter loaded g2 = %v", got)
	}
	if got := policies(byRole, "p", "p"); len(got) != 1 || got[0][0] != "editor" {
		t.Fatalf("role filter p = %v, want only editor", got)
	}
	if got := policies(byRole, "g", "g"); len(got) != 0 {
		t.Fatalf("role filter loaded g = %v", got)
	}
	if got := policies(full, "g", "g2"); len(got) != 1 {
		t.Fatalf("full load g2 = %v, want 1 rule", got)
	}
}
