package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

const (
	postgresUniqueViolation = "23505"
	postgresCheckViolation  = "23514"
	mysqlDuplicateEntry     = 1062
	mysqlOutOfRange         = 1690
	mysqlCheckViolation     = 3819
)

// IsUniqueViolation reports whether err is a unique constraint violation
// raised by PostgreSQL or MySQL.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == postgresUniqueViolation
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	return false
}

// IsCheckViolation reports whether err is a CHECK constraint violation, or for MySQL an
// unsigned column going out of range.
func IsCheckViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == postgresCheckViolation
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlCheckViolation || mysqlErr.Number == mysqlOutOfRange
	}

	return false
}
