// Package pgxcasbin persists Casbin policy rules in PostgreSQL through pgx.
// Rules are stored one per row as (ptype, v0..v5).
package pgxcasbin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/persist"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"
	"go.uber.org/atomic"
)

const (
	defaultTableName = "casbin_rules"
	fieldCount       = 6
)

var (
	// ErrRuleEmpty indicates an empty rule payload.
	ErrRuleEmpty = errors.New("pgxcasbin: rule is empty")
	// ErrRuleTooLong indicates a rule exceeds the field count.
	ErrRuleTooLong = errors.New("pgxcasbin: rule length exceeds field count")
	// ErrInvalidFilterType indicates a filter that is not a Filter.
	ErrInvalidFilterType = errors.New("pgxcasbin: invalid filter type")
	// ErrFilteredSave indicates a save attempted over a partially loaded model.
	ErrFilteredSave = errors.New("pgxcasbin: cannot save a filtered policy")
)

// Filter selects rules by ptype. Each entry of a ptype is one OR condition of
// field values from v0; an empty value matches anything.
type Filter map[string][][]string

// ModelFilter selects every rule whose ptype the model declares, leaving rows
// of other models sharing the table unloaded.
func ModelFilter(m model.Model) Filter {
	ft := Filter{}
	for _, sec := range []string{"p", "g"} {
		for ptype := range m[sec] {
			ft[ptype] = [][]string{{}}
		}
	}
	return ft
}

// Commander is the subset of pgx used by the adapter. *pgxpool.Pool satisfies it.
type Commander interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Adapter stores and retrieves Casbin policies using pgx.
type Adapter struct {
	db       Commander
	table    string
	filtered *atomic.Bool
}

var (
	_ persist.Adapter                = (*Adapter)(nil)
	_ persist.ContextAdapter         = (*Adapter)(nil)
	_ persist.FilteredAdapter        = (*Adapter)(nil)
	_ persist.ContextFilteredAdapter = (*Adapter)(nil)
)

// Option configures an Adapter.
type Option func(*Adapter)

// WithTableName overrides the rule table name.
func WithTableName(name string) Option {
	return func(a *Adapter) {
		a.table = lo.SnakeCase(name)
	}
}

// NewAdapter creates an adapter. The table is created by migrations.
func NewAdapter(db Commander, opts ...Option) *Adapter {
	a := &Adapter{db: db, table: defaultTableName, filtered: atomic.NewBool(false)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func columns() string {
	return strings.Join(lo.Times(fieldCount, func(i int) string { return "v" + strconv.Itoa(i) }), ", ")
}

// LoadPolicyCtx loads every rule into the model.
func (a *Adapter) LoadPolicyCtx(ctx context.Context, m model.Model) error {
	a.filtered.Store(false)
	lines, err := a.selectRules(ctx, "", nil)
	if err != nil {
		return err
	}
	return loadLines(m, lines)
}

// LoadFilteredPolicyCtx loads only the rules matching filter, which must be a
// Filter. A nil filter loads everything.
func (a *Adapter) LoadFilteredPolicyCtx(ctx context.Context, m model.Model, filter any) error {
	if lo.IsNil(filter) {
		return a.LoadPolicyCtx(ctx, m)
	}
	ft, ok := filter.(Filter)
	if !ok {
		return fmt.Errorf("%w: got %T, want pgxcasbin.Filter", ErrInvalidFilterType, filter)
	}
	a.filtered.Store(true)

	var lines [][]string
	for ptype, conds := range ft {
		for _, values := range conds {
			where, args, err := whereFields(ptype, 0, values...)
			if err != nil {
				return err
			}
			rows, err := a.selectRules(ctx, where, args)
			if err != nil {
				return err
			}
			lines = append(lines, rows...)
		}
	}
	lines = lo.UniqBy(lines, func(line []string) string { return strings.Join(line, ",") })

	return loadLines(m, lines)
}

// IsFilteredCtx reports whether the last load used a filter.
func (a *Adapter) IsFilteredCtx(context.Context) bool {
	return a.filtered.Load()
}

func (a *Adapter) selectRules(ctx context.Context, where string, args []any) ([][]string, error) {
	q := fmt.Sprintf("SELECT ptype, %s FROM %s", columns(), a.table)
	if where != "" {
		q += " WHERE " + where
	}
	rows, err := a.db.Query(ctx, q+" ORDER BY id", args...)
	if err != nil {
		return nil, fmt.Errorf("pgxcasbin: select rules: %w", err)
	}

	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) ([]string, error) {
		vals := make([]*string, fieldCount+1)
		dest := lo.Map(vals, func(_ *string, i int) any { return &vals[i] })
		if err := row.Scan(dest...); err != nil {
			return nil, err
		}
		line := make([]string, 0, len(vals))
		for _, v := range vals {
			if v == nil || *v == "" {
				break
			}
			line = append(line, *v)
		}
		return line, nil
	})
	if err != nil {
		return nil, fmt.Errorf("pgxcasbin: scan rules: %w", err)
	}
	return lines, nil
}

func loadLines(m model.Model, lines [][]string) error {
	for _, line := range lines {
		if err := persist.LoadPolicyArray(line, m); err != nil {
			return err
		}
	}
	return nil
}

// SavePolicyCtx replaces every stored rule with the model's rules.
func (a *Adapter) SavePolicyCtx(ctx context.Context, m model.Model) (err error) {
	if a.filtered.Load() {
		return ErrFilteredSave
	}

	tx, err := a.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pgxcasbin: begin: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = errors.Join(err, rbErr)
		}
	}()

	if _, err := tx.Exec(ctx, "DELETE FROM "+a.table); err != nil {
		return fmt.Errorf("pgxcasbin: clear rules: %w", err)
	}

	for _, sec := range []string{"p", "g"} {
		for ptype, ast := range m[sec] {
			for _, rule := range ast.Policy {
				if err := a.insert(ctx, tx, ptype, rule); err != nil {
					return err
				}
			}
		}
	}

	return tx.Commit(ctx)
}

// AddPolicyCtx inserts one rule; duplicates are ignored.
func (a *Adapter) AddPolicyCtx(ctx context.Context, _ string, ptype string, rule []string) error {
	return a.insert(ctx, a.db, ptype, rule)
}

// RemovePolicyCtx deletes one rule.
func (a *Adapter) RemovePolicyCtx(ctx context.Context, _ string, ptype string, rule []string) error {
	vals, err := pad(ptype, rule)
	if err != nil {
		return err
	}

	conds := lo.Times(fieldCount, func(i int) string { return fmt.Sprintf("v%d = $%d", i, i+2) })
	q := fmt.Sprintf("DELETE FROM %s WHERE ptype = $1 AND %s", a.table, strings.Join(conds, " AND "))
	if _, err := a.db.Exec(ctx, q, lo.ToAnySlice(vals)...); err != nil {
		return fmt.Errorf("pgxcasbin: delete rule: %w", err)
	}
	return nil
}

// RemoveFilteredPolicyCtx deletes rules whose fields from fieldIndex match
// the non-empty fieldValues.
func (a *Adapter) RemoveFilteredPolicyCtx(ctx context.Context, _ string, ptype string, fieldIndex int, fieldValues ...string) error {
	where, args, err := whereFields(ptype, fieldIndex, fieldValues...)
	if err != nil {
		return err
	}

	if _, err := a.db.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s", a.table, where), args...); err != nil {
		return fmt.Errorf("pgxcasbin: delete filtered rules: %w", err)
	}
	return nil
}

// whereFields builds the condition for ptype and the non-empty fieldValues
// starting at v<fieldIndex>.
func whereFields(ptype string, fieldIndex int, fieldValues ...string) (string, []any, error) {
	if fieldIndex < 0 || fieldIndex+len(fieldValues) > fieldCount {
		return "", nil, ErrRuleTooLong
	}

	conds := []string{"ptype = $1"}
	args := []any{ptype}
	for i, v := range fieldValues {
		if v == "" {
			continue
		}
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("v%d = $%d", fieldIndex+i, len(args)))
	}
	return strings.Join(conds, " AND "), args, nil
}

// LoadPolicy loads all policies into the model.
func (a *Adapter) LoadPolicy(m model.Model) error {
	return a.LoadPolicyCtx(context.Background(), m)
}

// SavePolicy persists all policies from the model.
func (a *Adapter) SavePolicy(m model.Model) error {
	return a.SavePolicyCtx(context.Background(), m)
}

// LoadFilteredPolicy loads only the rules matching filter.
func (a *Adapter) LoadFilteredPolicy(m model.Model, filter any) error {
	return a.LoadFilteredPolicyCtx(context.Background(), m, filter)
}

// IsFiltered reports whether the last load used a filter.
func (a *Adapter) IsFiltered() bool {
	return a.IsFilteredCtx(context.Background())
}

// AddPolicy adds a single policy rule.
func (a *Adapter) AddPolicy(sec, ptype string, rule []string) error {
	return a.AddPolicyCtx(context.Background(), sec, ptype, rule)
}

// RemovePolicy removes a single policy rule.
func (a *Adapter) RemovePolicy(sec, ptype string, rule []string) error {
	return a.RemovePolicyCtx(context.Background(), sec, ptype, rule)
}

// RemoveFilteredPolicy removes policy rules matching the filter.
func (a *Adapter) RemoveFilteredPolicy(sec, ptype string, fieldIndex int, fieldValues ...string) error {
	return a.RemoveFilteredPolicyCtx(context.Background(), sec, ptype, fieldIndex, fieldValues...)
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (a *Adapter) insert(ctx context.Context, db execer, ptype string, rule []string) error {
	vals, err := pad(ptype, rule)
	if err != nil {
		return err
	}

	placeholders := lo.Times(fieldCount+1, func(i int) string { return "$" + strconv.Itoa(i+1) })
	q := fmt.Sprintf(
		"INSERT INTO %s (ptype, %s) VALUES (%s) ON CONFLICT DO NOTHING",
		a.table, columns(), strings.Join(placeholders, ", "),
	)
	if _, err := db.Exec(ctx, q, lo.ToAnySlice(vals)...); err != nil {
		return fmt.Errorf("pgxcasbin: insert rule: %w", err)
	}
	return nil
}

// pad returns [ptype, v0..v5] with unused fields empty.
func pad(ptype string, rule []string) ([]string, error) {
	if len(rule) == 0 {
		return nil, ErrRuleEmpty
	}
	if len(rule) > fieldCount {
		return nil, ErrRuleTooLong
	}

	vals := make([]string, fieldCount+1)
	vals[0] = ptype
	copy(vals[1:], rule)
	return vals, nil
}
