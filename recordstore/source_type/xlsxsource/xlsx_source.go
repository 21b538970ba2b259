package xlsxsource

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"bikeshare/config"
	"bikeshare/domain/entities/trip"
	"bikeshare/recordstore"
	"bikeshare/recordstore/rowparser"
)

const (
	sourceType  = "xlsx"
	workbookExt = ".xlsx"
)

// XLSXSource reads the rides of each city from a workbook. The first row of the sheet is the header.
type XLSXSource struct {
	dataDir     string
	sheet       string
	cities      map[string]string
	columns     config.ColumnsConfig
	timeLayouts []string
}

func NewXLSXSource(cfg *config.Config) *XLSXSource {
	return &XLSXSource{
		dataDir:     cfg.DataSource.DataDir,
		sheet:       cfg.DataSource.Sheet,
		cities:      cfg.Cities,
		columns:     cfg.Columns,
		timeLayouts: cfg.TimeLayouts,
	}
}

func (xs *XLSXSource) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[source: %s][city: %s][method: %s][status: ERROR] %s: %s", sourceType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[source: %s][city: %s][method: %s][status: OK] %s", sourceType, city, method, message)
}

// Load reads the configured sheet of the workbook of city, or its first sheet if none is configured
func (xs *XLSXSource) Load(ctx context.Context, city string) (dataset *trip.Dataset, err error) {
	location, err := recordstore.Location(xs.cities, city)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(xs.dataDir, workbookName(location))
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		log.Error(xs.getLogMessage(city, "Load", "error opening workbook", err))
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer func() {
		if closeErr := workbook.Close(); closeErr != nil {
			err = multierror.Append(err, closeErr).ErrorOrNil()
			dataset = nil
		}
	}()

	sheet := xs.sheet
	if sheet == "" {
		sheets := workbook.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s has no sheets", recordstore.ErrMalformedData, path)
		}
		sheet = sheets[0]
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %s of %s: %s", recordstore.ErrMalformedData, sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %s of %s has no header", recordstore.ErrMalformedData, sheet, path)
	}

	parser, err := rowparser.NewRowParser(rows[0], xs.columns, xs.timeLayouts)
	if err != nil {
		log.Error(xs.getLogMessage(city, "Load", "invalid header", err))
		return nil, err
	}

	records := make([]trip.TripData, 0, len(rows)-1)
	ordinal := 0
	for _, row := range rows[1:] {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if len(row) == 0 {
			continue
		}

		record, err := parser.Parse(row, ordinal)
		if err != nil {
			log.Error(xs.getLogMessage(city, "Load", "invalid row", err))
			return nil, err
		}
		records = append(records, record)
		ordinal++
	}

	log.Debug(xs.getLogMessage(city, "Load", fmt.Sprintf("%v rides read from sheet %s of %s", len(records), sheet, path), nil))
	return &trip.Dataset{
		City:    recordstore.NormalizeCity(city),
		Schema:  parser.Schema(),
		Records: records,
	}, nil
}

// workbookName returns location with the workbook extension, so the same city locations serve every source
func workbookName(location string) string {
	ext := filepath.Ext(location)
	if ext == workbookExt {
		return location
	}
	return strings.TrimSuffix(location, ext) + workbookExt
}
