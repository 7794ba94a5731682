package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "postgres unique violation", err: &pq.Error{Code: "23505"}, expected: true},
		{name: "postgres other error", err: &pq.Error{Code: "23503"}, expected: false},
		{name: "wrapped postgres unique violation", err: fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), expected: true},
		{name: "mysql duplicate entry", err: &mysql.MySQLError{Number: 1062}, expected: true},
		{name: "mysql other error", err: &mysql.MySQLError{Number: 1213}, expected: false},
		{name: "plain error", err: errors.New("duplicate entry"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUniqueViolation(tt.err))
		})
	}
}

func TestIsCheckViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "postgres check violation", err: &pq.Error{Code: "23514"}, expected: true},
		{name: "postgres unique violation", err: &pq.Error{Code: "23505"}, expected: false},
		{name: "mysql check violation", err: &mysql.MySQLError{Number: 3819}, expected: true},
		{name: "mysql out of range", err: fmt.Errorf("update: %w", &mysql.MySQLError{Number: 1690}), expected: true},
		{name: "mysql duplicate entry", err: &mysql.MySQLError{Number: 1062}, expected: false},
		{name: "plain error", err: errors.New("check failed"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCheckViolation(tt.err))
		})
	}
}
