package repository

import (
	"errors"
	"fmt"
	"strings"

	// Also registers the "mysql" database/sql driver.
	"github.com/go-sql-driver/mysql"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// mysqlDuplicateColumn is ER_DUP_FIELDNAME.
const mysqlDuplicateColumn = 1060

type dialect struct {
	createTable string
	textType    string
	intType     string
}

var dialects = map[string]dialect{
	DriverSQLite: {
		createTable: `CREATE TABLE IF NOT EXISTS ` + personTable + ` (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL)`,
		textType: "TEXT",
		intType:  "INTEGER",
	},
	DriverMySQL: {
		createTable: `CREATE TABLE IF NOT EXISTS ` + personTable + ` (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			full_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL)`,
		textType: "VARCHAR(255)",
		intType:  "INT",
	},
}

func dialectFor(driver string) (dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	return d, nil
}

// isDuplicateColumnError reports whether err is an "ADD COLUMN" failure for a
// column that already exists.
func isDuplicateColumnError(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateColumn
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate column")
}

// validIdentifier accepts lowercase snake_case names only.
func validIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
