package db

import (
	"errors" // Error values
	"fmt"    // Error wrapping

	"github.com/go-sql-driver/mysql" // DSN parsing for redacted logging
	"github.com/sirupsen/logrus"     // Logging library
	gormmysql "gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"                   // GORM ORM library
)

// fallbackDSN is the fixed, well-known local target tried once when the
// primary connection fails in development mode.
const fallbackDSN = "root:root@tcp(127.0.0.1:3306)/book_market?parseTime=true"

// ErrConnection wraps a failure to establish the database connection
var ErrConnection = errors.New("database connection failed")

// Connect establishes the database connection for the process. It tries the
// primary DSN; on failure in development mode it tries the local fallback
// once, and that single attempt is the entire retry budget. Outside
// development mode a primary failure is final. Runs once at startup; callers
// treat an error as fatal.
func Connect(primaryDSN string, devMode bool) (*gorm.DB, error) {
	gdb, err := gorm.Open(gormmysql.Open(primaryDSN), &gorm.Config{})
	if err == nil {
		logrus.Infof("connected to database at %s", redactDSN(primaryDSN)) // Log resolved target, host only
		return gdb, nil
	}
	// Outside development mode there is no fallback
	if !devMode {
		return nil, fmt.Errorf("%w: primary %s: %v", ErrConnection, redactDSN(primaryDSN), err)
	}
	logrus.Warnf("primary database %s unreachable, trying local fallback", redactDSN(primaryDSN))
	gdb, fbErr := gorm.Open(gormmysql.Open(fallbackDSN), &gorm.Config{})
	if fbErr != nil {
		return nil, fmt.Errorf("%w: primary %s: %v; fallback %s: %v",
			ErrConnection, redactDSN(primaryDSN), err, redactDSN(fallbackDSN), fbErr)
	}
	logrus.Infof("connected to database at %s", redactDSN(fallbackDSN)) // Log resolved fallback target
	return gdb, nil
}

// redactDSN reduces a DSN to its host-level address, dropping credentials
// and parameters so the value is safe to log
func redactDSN(dsn string) string {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "(unparseable dsn)" // Never echo a DSN we could not parse
	}
	return cfg.Addr + "/" + cfg.DBName
}
