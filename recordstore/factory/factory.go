package factory

import (
	"fmt"

	"bikeshare/config"
	"bikeshare/recordstore"
	"bikeshare/recordstore/source_type/csvsource"
	"bikeshare/recordstore/source_type/sqlsource"
	"bikeshare/recordstore/source_type/xlsxsource"
)

const (
	csvSourceType  = "csv"
	xlsxSourceType = "xlsx"
	sqlSourceType  = "sql"
)

// NewStore returns the store of the source type set in cfg
func NewStore(cfg *config.Config) (recordstore.Store, error) {
	switch cfg.DataSource.Type {
	case csvSourceType:
		return csvsource.NewCSVSource(cfg), nil
	case xlsxSourceType:
		return xlsxsource.NewXLSXSource(cfg), nil
	case sqlSourceType:
		return sqlsource.NewSQLSource(cfg), nil
	}

	return nil, fmt.Errorf("[method: NewStore][status: error] %w: %s", recordstore.ErrUnsupportedSource, cfg.DataSource.Type)
}
