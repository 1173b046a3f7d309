package db

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/academia/internal/career/entity"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type DB struct {
	conn   *pgxpool.Pool
	tracer pgsql.Tracer
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{conn: conn, tracer: pgsql.NewTracer(ins, "career.outbound.db")}
}

func employmentArg(v *entity.EmploymentType) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func employmentOf(v *string) *entity.EmploymentType {
	if v == nil {
		return nil
	}
	t := entity.EmploymentType(*v)
	return &t
}

func centsArg(m *valueobject.Money) *int64 {
	if m == nil {
		return nil
	}
	c := m.Cents()
	return &c
}

func moneyOf(cents *int64) *valueobject.Money {
	if cents == nil {
		return nil
	}
	m := valueobject.Money(*cents)
	return &m
}
