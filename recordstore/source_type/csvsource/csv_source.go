package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/entities/trip"
	"bikeshare/recordstore"
	"bikeshare/recordstore/rowparser"
)

const sourceType = "csv"

// CSVSource reads the rides of each city from a csv file with a header row
type CSVSource struct {
	dataDir     string
	cities      map[string]string
	columns     config.ColumnsConfig
	timeLayouts []string
}

func NewCSVSource(cfg *config.Config) *CSVSource {
	return &CSVSource{
		dataDir:     cfg.DataSource.DataDir,
		cities:      cfg.Cities,
		columns:     cfg.Columns,
		timeLayouts: cfg.TimeLayouts,
	}
}

func (cs *CSVSource) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[source: %s][city: %s][method: %s][status: ERROR] %s: %s", sourceType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[source: %s][city: %s][method: %s][status: OK] %s", sourceType, city, method, message)
}

// Load reads the whole csv file of city
func (cs *CSVSource) Load(ctx context.Context, city string) (dataset *trip.Dataset, err error) {
	location, err := recordstore.Location(cs.cities, city)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(cs.dataDir, location)
	file, err := os.Open(path)
	if err != nil {
		log.Error(cs.getLogMessage(city, "Load", "error opening file", err))
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = multierror.Append(err, closeErr).ErrorOrNil()
			dataset = nil
		}
	}()

	reader := csv.NewReader(file)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s has no header", recordstore.ErrMalformedData, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", recordstore.ErrMalformedData, err)
	}

	parser, err := rowparser.NewRowParser(header, cs.columns, cs.timeLayouts)
	if err != nil {
		log.Error(cs.getLogMessage(city, "Load", "invalid header", err))
		return nil, err
	}

	var records []trip.TripData
	for ordinal := 0; ; ordinal++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", recordstore.ErrMalformedData, err)
		}

		record, err := parser.Parse(row, ordinal)
		if err != nil {
			log.Error(cs.getLogMessage(city, "Load", "invalid row", err))
			return nil, err
		}
		records = append(records, record)
	}

	log.Debug(cs.getLogMessage(city, "Load", fmt.Sprintf("%v rides read from %s", len(records), path), nil))
	return &trip.Dataset{
		City:    recordstore.NormalizeCity(city),
		Schema:  parser.Schema(),
		Records: records,
	}, nil
}
