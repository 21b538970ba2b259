package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"bikeshare/utils"
)

const (
	DefaultConfigFilepath = "config.yaml"
	envPrefix             = "BIKESHARE"
)

// DataSourceConfig says where the trips of each city are read from
// + Type: csv, xlsx or sql
// + DataDir: directory of the csv files and xlsx workbooks
// + Sheet: workbook sheet with the trips. The first sheet is used if empty
// + Driver, DSN: database connection, only for the sql source. Tables are named after the city locations
type DataSourceConfig struct {
	Type    string `yaml:"type" envconfig:"TYPE" validate:"required,oneof=csv xlsx sql"`
	DataDir string `yaml:"data_dir" envconfig:"DATA_DIR"`
	Sheet   string `yaml:"sheet" envconfig:"SHEET"`
	Driver  string `yaml:"driver" envconfig:"DRIVER" validate:"required_if=Type sql"`
	DSN     string `yaml:"dsn" envconfig:"DSN" validate:"required_if=Type sql"`
}

// ColumnsConfig contains the header of each field of a trip. Gender and birth year are optional columns,
// the id column is the row label and may be blank
type ColumnsConfig struct {
	ID           string `yaml:"id" envconfig:"ID"`
	StartTime    string `yaml:"start_time" envconfig:"START_TIME" validate:"required"`
	EndTime      string `yaml:"end_time" envconfig:"END_TIME"`
	Duration     string `yaml:"trip_duration" envconfig:"TRIP_DURATION" validate:"required"`
	StartStation string `yaml:"start_station" envconfig:"START_STATION" validate:"required"`
	EndStation   string `yaml:"end_station" envconfig:"END_STATION" validate:"required"`
	UserType     string `yaml:"user_type" envconfig:"USER_TYPE" validate:"required"`
	Gender       string `yaml:"gender" envconfig:"GENDER"`
	BirthYear    string `yaml:"birth_year" envconfig:"BIRTH_YEAR"`
}

type RawDataConfig struct {
	PageSize int `yaml:"page_size" envconfig:"PAGE_SIZE" validate:"gt=0"`
}

// MetricsConfig if Address is empty metrics are not served
type MetricsConfig struct {
	Address string `yaml:"address" envconfig:"ADDRESS"`
}

type ReportConfig struct {
	Enabled      bool   `yaml:"enabled" envconfig:"ENABLED"`
	RabbitURL    string `yaml:"rabbit_url" envconfig:"RABBIT_URL" validate:"required_if=Enabled true"`
	Exchange     string `yaml:"exchange" envconfig:"EXCHANGE" validate:"required_if=Enabled true"`
	ExchangeType string `yaml:"exchange_type" envconfig:"EXCHANGE_TYPE" validate:"omitempty,oneof=topic direct fanout"`
}

type Config struct {
	LogLevel    string            `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"required"`
	DataSource  DataSourceConfig  `yaml:"data_source" envconfig:"DATA_SOURCE"`
	Cities      map[string]string `yaml:"cities" envconfig:"CITIES" validate:"required,min=1"`
	Columns     ColumnsConfig     `yaml:"columns" envconfig:"COLUMNS"`
	TimeLayouts []string          `yaml:"time_layouts" envconfig:"TIME_LAYOUTS" validate:"required,min=1"`
	RawData     RawDataConfig     `yaml:"raw_data" envconfig:"RAW_DATA"`
	Metrics     MetricsConfig     `yaml:"metrics" envconfig:"METRICS"`
	Report      ReportConfig      `yaml:"report" envconfig:"REPORT"`
}

// LoadConfig reads the yaml file in configFilepath and then overrides its values with the BIKESHARE_ environment
// variables. A .env file in the working directory, if any, is loaded first.
func LoadConfig(configFilepath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("[method: LoadConfig][status: ERROR] .env file could not be loaded: %s", err)
	}

	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(configFile, &config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	err = envconfig.Process(envPrefix, &config)
	if err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	config.normalize()
	if err = config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that every required setting is present and well-formed
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// CityNames returns the configured cities sorted by name
func (c *Config) CityNames() []string {
	names := make([]string, 0, len(c.Cities))
	for name := range c.Cities {
		names = append(names, name)
	}
	return utils.SortedStrings(names)
}

// city keys are matched in lowercase
func (c *Config) normalize() {
	cities := make(map[string]string, len(c.Cities))
	for name, location := range c.Cities {
		cities[strings.ToLower(strings.TrimSpace(name))] = location
	}
	c.Cities = cities
	c.DataSource.Type = strings.ToLower(c.DataSource.Type)
	if c.Report.ExchangeType == "" {
		c.Report.ExchangeType = "topic"
	}
}
