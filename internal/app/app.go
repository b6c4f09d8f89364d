package app

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	sqliterepo "custdesk/internal/adapters/repo/sqlite"
	"custdesk/internal/domain"
	"custdesk/internal/usecase"
)

// DefaultDBPath is where the tool keeps its data unless CUSTDESK_DB
// points elsewhere.
const DefaultDBPath = "customer_info.db"

type App struct {
	DB        *gorm.DB
	Customers domain.CustomerRepo
	Entry     *usecase.CustomerUC
}

// Open opens (creating if needed) the SQLite database file at path.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrStorageUnavailable, path, err)
	}
	return db, nil
}

func NewApp(db *gorm.DB) (*App, error) {
	custRepo := sqliterepo.NewCustomerRepo(db)

	app := &App{}
	app.DB = db
	app.Customers = custRepo
	app.Entry = &usecase.CustomerUC{Customers: custRepo}
	return app, nil
}

// InitSchema idempotently ensures the customers table exists.
func (a *App) InitSchema(ctx context.Context) error {
	return a.Customers.Init(ctx)
}
