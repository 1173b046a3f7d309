package db

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
)

type DB struct {
	conn   *pgxpool.Pool
	tracer pgsql.Tracer
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{conn: conn, tracer: pgsql.NewTracer(ins, "admin.outbound.db")}
}
