package sqlsource

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/entities/trip"
	"bikeshare/recordstore"
	"bikeshare/recordstore/rowparser"
)

const sourceType = "sql"

var tableNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Opener returns a new connection to the database
type Opener func(ctx context.Context) (*sqlx.DB, error)

// SQLSource reads the rides of each city from a table of a sqlite or postgres database. The table of a city is
// its location without extension, e.g. chicago.csv is read from table chicago.
type SQLSource struct {
	open        Opener
	cities      map[string]string
	columns     config.ColumnsConfig
	timeLayouts []string
}

func NewSQLSource(cfg *config.Config) *SQLSource {
	driver, dsn := cfg.DataSource.Driver, cfg.DataSource.DSN
	return NewSQLSourceWithOpener(cfg, func(ctx context.Context) (*sqlx.DB, error) {
		return sqlx.ConnectContext(ctx, driver, dsn)
	})
}

func NewSQLSourceWithOpener(cfg *config.Config, open Opener) *SQLSource {
	return &SQLSource{
		open:        open,
		cities:      cfg.Cities,
		columns:     cfg.Columns,
		timeLayouts: cfg.TimeLayouts,
	}
}

func (ss *SQLSource) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[source: %s][city: %s][method: %s][status: ERROR] %s: %s", sourceType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[source: %s][city: %s][method: %s][status: OK] %s", sourceType, city, method, message)
}

// Load reads every row of the table of city. The connection is opened and closed on each call.
func (ss *SQLSource) Load(ctx context.Context, city string) (dataset *trip.Dataset, err error) {
	location, err := recordstore.Location(ss.cities, city)
	if err != nil {
		return nil, err
	}

	table, err := tableName(location)
	if err != nil {
		return nil, err
	}

	db, err := ss.open(ctx)
	if err != nil {
		log.Error(ss.getLogMessage(city, "Load", "error connecting to database", err))
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			err = multierror.Append(err, closeErr).ErrorOrNil()
			dataset = nil
		}
	}()

	rows, err := db.QueryxContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, table))
	if err != nil {
		log.Error(ss.getLogMessage(city, "Load", "error querying table "+table, err))
		return nil, fmt.Errorf("error querying table %s: %w", table, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = multierror.Append(err, closeErr).ErrorOrNil()
			dataset = nil
		}
	}()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("error reading columns of %s: %w", table, err)
	}

	parser, err := rowparser.NewRowParser(header, ss.columns, ss.timeLayouts)
	if err != nil {
		log.Error(ss.getLogMessage(city, "Load", "invalid columns", err))
		return nil, err
	}

	var records []trip.TripData
	for ordinal := 0; rows.Next(); ordinal++ {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("error scanning row %v of %s: %w", ordinal, table, err)
		}

		record, err := parser.Parse(ss.toStrings(values), ordinal)
		if err != nil {
			log.Error(ss.getLogMessage(city, "Load", "invalid row", err))
			return nil, err
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading table %s: %w", table, err)
	}

	log.Debug(ss.getLogMessage(city, "Load", fmt.Sprintf("%v rides read from table %s", len(records), table), nil))
	return &trip.Dataset{
		City:    recordstore.NormalizeCity(city),
		Schema:  parser.Schema(),
		Records: records,
	}, nil
}

// toStrings renders the scanned values the way they would be written in a csv export
func (ss *SQLSource) toStrings(values []interface{}) []string {
	row := make([]string, len(values))
	for idx, value := range values {
		switch typed := value.(type) {
		case nil:
			row[idx] = ""
		case string:
			row[idx] = typed
		case []byte:
			row[idx] = string(typed)
		case int64:
			row[idx] = strconv.FormatInt(typed, 10)
		case float64:
			row[idx] = strconv.FormatFloat(typed, 'f', -1, 64)
		case time.Time:
			row[idx] = typed.Format(ss.timeLayouts[0])
		default:
			row[idx] = fmt.Sprint(typed)
		}
	}
	return row
}

func tableName(location string) (string, error) {
	table := strings.TrimSuffix(location, filepath.Ext(location))
	if !tableNameRegex.MatchString(table) {
		return "", fmt.Errorf("%w: %q is not a valid table name", recordstore.ErrInvalidLocation, table)
	}
	return table, nil
}
