package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type DB struct {
	*sqlx.DB
}

// Open connects to MySQL, tunes the pool and ensures the schema exists.
func Open(dsn string, maxOpen int) (*DB, error) {
	mcfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	// Affected-row counts must mean rows *matched*, not rows changed:
	// a patch that rewrites the already-stored values is not a missing row.
	mcfg.ClientFoundRows = true

	xdb, err := sqlx.Open("mysql", mcfg.FormatDSN())
	if err != nil {
		return nil, err
	}
	xdb.SetMaxOpenConns(maxOpen)
	xdb.SetMaxIdleConns(maxOpen)
	xdb.SetConnMaxLifetime(2 * time.Hour)

	if err := xdb.Ping(); err != nil {
		_ = xdb.Close()
		return nil, err
	}

	d := &DB{DB: xdb}
	if err := d.ensureSchema(context.Background()); err != nil {
		_ = xdb.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) Close() error { return d.DB.Close() }

// ErrEmptyPatch is returned when an update carries no whitelisted columns.
var ErrEmptyPatch = errors.New("no updatable fields in patch")

// updateRow builds "UPDATE <table> SET col=?,... WHERE id=?" from the subset
// of whitelisted columns present in changes. Column names only ever come from
// the fixed whitelist; values are always bound. Returns the matched row count.
func updateRow(d *DB, table string, columns []string, id int64, changes map[string]any) (int64, error) {
	fields := []string{}
	args := []any{}
	for _, col := range columns {
		v, ok := changes[col]
		if !ok {
			continue
		}
		fields = append(fields, col+"=?")
		args = append(args, v)
	}
	if len(fields) == 0 {
		return 0, ErrEmptyPatch
	}
	args = append(args, id)

	res, err := d.Exec("UPDATE "+table+" SET "+strings.Join(fields, ",")+" WHERE id=?", args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// MySQL error numbers for the constraint failures the handlers care about.
const (
	errFKNoParent   = 1452 // insert/update references a missing parent row
	errFKRestricted = 1451 // delete blocked by dependent child rows
	errDataTrunc    = 1265 // value outside an ENUM domain (strict mode off)
	errBadValue     = 1366 // value outside an ENUM domain (strict mode on)
)

func mysqlErrNo(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

// IsForeignKeyViolation reports whether a write failed because it referenced
// a row that does not exist.
func IsForeignKeyViolation(err error) bool { return mysqlErrNo(err) == errFKNoParent }

// IsDeleteRestricted reports whether a delete was blocked by dependent rows.
func IsDeleteRestricted(err error) bool { return mysqlErrNo(err) == errFKRestricted }

// IsEnumViolation reports whether a value fell outside an ENUM column domain.
func IsEnumViolation(err error) bool {
	n := mysqlErrNo(err)
	return n == errDataTrunc || n == errBadValue
}

// Dev-time schema (inline DDL)

func (d *DB) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS virtual_machines (
			id INT AUTO_INCREMENT PRIMARY KEY,
			nome_vm VARCHAR(255) NOT NULL,
			endereco_ipv4_vm VARCHAR(45) NULL,
			flg_status_vm TINYINT(1) NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS bots (
			id INT AUTO_INCREMENT PRIMARY KEY,
			nome_automacao VARCHAR(255) NOT NULL,
			flg_status_bot TINYINT(1) NOT NULL,
			frequencia_execucao ENUM('diaria','semanal','mensal','trimestral','intervalo','demanda') NOT NULL,
			dia_execucao VARCHAR(64) NULL,
			hora_execucao VARCHAR(64) NULL,
			intervalo_execucao INT NULL,
			tolerancia_execucao INT NULL,
			virtual_machine_id INT NOT NULL,

			INDEX (virtual_machine_id),
			CONSTRAINT fk_bots_virtual_machine
				FOREIGN KEY (virtual_machine_id) REFERENCES virtual_machines (id)
				ON DELETE RESTRICT
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, s := range stmts {
		if _, err := d.DB.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}
