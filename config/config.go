package config

import (
	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Settings holds the register's tunables. Defaults reproduce the
// values the business actually runs with; a .env file or the process
// environment can override them.
type Settings struct {
	TaxRate  float64 `envconfig:"TAX_RATE" default:"0.10"`
	BagFee   float64 `envconfig:"BAG_FEE" default:"0.50"`
	LogLevel string  `envconfig:"LOG_LEVEL" default:"info"`
	StoreDSN string  `envconfig:"STORE_DSN" default:"file::memory:?cache=shared"`
}

func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// InitDB opens the in-memory ledger store. Orders live only for the
// duration of the process; there is no durable database behind the
// register.
func InitDB(s *Settings) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(s.StoreDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
