package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

// DBContextURL is the gin context key holding the external base URL of the API.
const DBContextURL ContextKey = "traininghub-url"

var ErrStillReferenced = fmt.Errorf("%w: the resource is still referenced by other resources", ErrConflict)

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	// Migration runs with foreign keys disabled since sqlite does not
	// support ALTER COLUMN and copies tables around instead.
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return finish(db)
}

// ConnectPostgres opens a PostgreSQL database described by dsn.
func ConnectPostgres(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return finish(db)
}

// Ping verifies that the database connection is alive.
func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// finish registers the error translating callbacks and sets DB.
func finish(db *gorm.DB) error {
	callbacks := []struct {
		name string
		add  func() error
	}{
		{"after_query", func() error {
			return db.Callback().Query().After("*").Register("traininghub:after_query", queryCallback)
		}},
		{"after_query_general", func() error {
			return db.Callback().Query().After("*").Register("traininghub:after_query_general", generalCallback)
		}},
		{"after_create", func() error {
			return db.Callback().Create().After("*").Register("traininghub:after_create", createUpdateCallback)
		}},
		{"after_create_general", func() error {
			return db.Callback().Create().After("*").Register("traininghub:after_create_general", generalCallback)
		}},
		{"after_update", func() error {
			return db.Callback().Update().After("*").Register("traininghub:after_update", createUpdateCallback)
		}},
		{"after_update_general", func() error {
			return db.Callback().Update().After("*").Register("traininghub:after_update_general", generalCallback)
		}},
		{"after_delete", func() error {
			return db.Callback().Delete().After("*").Register("traininghub:after_delete", deleteCallback)
		}},
		{"after_delete_general", func() error {
			return db.Callback().Delete().After("*").Register("traininghub:after_delete_general", generalCallback)
		}},
	}

	for _, c := range callbacks {
		if err := c.add(); err != nil {
			return fmt.Errorf("registering %s callback: %w", c.name, err)
		}
	}

	DB = db
	return nil
}

var plural = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// The table name is used as the resource type
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = plural.ReplaceAllString(name, "y")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	switch {
	case strings.Contains(msg, "users.username") || strings.Contains(msg, "idx_users_username"):
		db.Error = ErrUsernameNotUnique
	case strings.Contains(msg, "users.email") || strings.Contains(msg, "idx_users_email"):
		db.Error = ErrEmailNotUnique
	case strings.Contains(msg, "trainers.user_id") || strings.Contains(msg, "idx_trainers_user_id"),
		strings.Contains(msg, "students.user_id") || strings.Contains(msg, "idx_students_user_id"):
		db.Error = ErrProfileExists
	case strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "violates foreign key constraint"):
		db.Error = ErrReferenceNotExists
	}
}

// deleteCallback translates foreign key failures on delete.
func deleteCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	if strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "violates foreign key constraint") {
		db.Error = ErrStillReferenced
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var pgErr *pgconn.PgError

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) || errors.As(db.Error, &pgErr) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		User{},
		Trainer{},
		Student{},
		Course{},
		ClassSchedule{},
		TrainerCourse{},
		Enrollment{},
		FeeTransaction{},
		TrainerSalary{},
		Certificate{},
	)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
