package config

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const DEVELOPMENT = "development"

// envPrefix scopes environment overrides, e.g. STOREPULSE_DB_HOST.
const envPrefix = "storepulse"

type DBConf struct {
	Host     string `envconfig:"DB_HOST"`
	Port     int    `envconfig:"DB_PORT"`
	User     string `envconfig:"DB_USER"`
	Name     string `envconfig:"DB_NAME"`
	Password string `envconfig:"DB_PASS"`
}

type Configuration struct {
	AppName string `ignored:"true"`
	Env     string `envconfig:"ENV"`
	Port    int    `envconfig:"PORT"`
	DBInfo  DBConf
}

type Services struct {
	Db *gorm.DB
}

var configuration *Configuration = nil
var services *Services = nil

// Init layers environment overrides on the flag-built configuration, sets up
// logging and establishes the database connection. Must run before any store
// access.
func Init(config *Configuration) error {
	if err := envconfig.Process(envPrefix, config); err != nil {
		return errors.Wrap(err, "failed to process env overrides")
	}
	configuration = config

	initLog(config)

	db, err := gorm.Open("mysql", fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8&parseTime=True&loc=UTC",
		config.DBInfo.User, config.DBInfo.Password, config.DBInfo.Host, config.DBInfo.Port, config.DBInfo.Name))
	if err != nil {
		log.WithError(err).Error("Failed connecting to database.")
		return errors.Wrap(err, "failed to connect to database")
	}
	db.LogMode(IsDevelopment())

	services = &Services{Db: db}
	return nil
}

func initLog(config *Configuration) {
	if IsDevelopmentEnv(config.Env) {
		log.SetFormatter(&log.TextFormatter{})
		log.SetLevel(log.DebugLevel)
		return
	}
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

func GetConfig() *Configuration {
	if configuration == nil {
		log.Fatal("Configuration not initialized.")
	}
	return configuration
}

func GetServices() *Services {
	if services == nil {
		log.Fatal("Services not initialized.")
	}
	return services
}

// SetServices allows tests to inject a database handle without Init.
func SetServices(s *Services) {
	services = s
}

func IsDevelopmentEnv(env string) bool {
	return env == DEVELOPMENT
}

func IsDevelopment() bool {
	return GetConfig().Env == DEVELOPMENT
}
