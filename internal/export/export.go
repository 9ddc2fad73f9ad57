package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Rana718/funnelgen/internal/database"
	"github.com/Rana718/funnelgen/internal/dataset"
)

const (
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatSQLite = "sqlite"

	sqliteFileName = "dataset.db"
)

type Options struct {
	Format   string
	Manifest bool
	Seed     uint64
}

type File struct {
	Table string `yaml:"table"`
	Path  string `yaml:"path"`
	Rows  int    `yaml:"rows"`
}

type Result struct {
	Dir          string
	Files        []File
	ManifestPath string
}

// Write serializes every table of d into dir, creating dir if needed.
// Files written before a failure are left in place.
func Write(ctx context.Context, d *dataset.Dataset, dir string, opts Options) (*Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	tables := d.Tables()
	var (
		files []File
		err   error
	)
	switch opts.Format {
	case FormatCSV, "":
		files, err = writeFiles(tables, dir, ".csv", writeCSV)
	case FormatJSON:
		files, err = writeFiles(tables, dir, ".json", writeJSON)
	case FormatSQLite:
		files, err = exportToSQLite(ctx, tables, dir)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", opts.Format)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Dir: dir, Files: files}
	if opts.Manifest {
		res.ManifestPath, err = writeManifest(dir, opts, files)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// FileName is the output file name for a table in a file-per-table format.
func FileName(table, ext string) string {
	return table + "_full" + ext
}

func writeFiles(tables []dataset.Table, dir, ext string, encode func(io.Writer, dataset.Table) error) ([]File, error) {
	files := make([]File, 0, len(tables))
	for _, t := range tables {
		path := filepath.Join(dir, FileName(t.Name, ext))
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create file for %s: %w", t.Name, err)
		}
		if err := encode(f, t); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("failed to close %s: %w", path, err)
		}
		files = append(files, File{Table: t.Name, Path: path, Rows: len(t.Rows)})
	}
	return files, nil
}

// writeCSV writes a header row and one record per row. The header is
// written even when the table is empty.
func writeCSV(w io.Writer, t dataset.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.ColumnNames()); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			record[i] = formatValue(v)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case dataset.Date:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func exportToSQLite(ctx context.Context, tables []dataset.Table, dir string) ([]File, error) {
	path := filepath.Join(dir, sqliteFileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to replace %s: %w", path, err)
	}

	sink := database.NewSQLiteSink()
	if err := sink.Connect(ctx, path); err != nil {
		return nil, err
	}
	defer sink.Close()

	if err := database.Load(ctx, sink, tables, database.LoadOptions{Batch: 500}); err != nil {
		return nil, fmt.Errorf("failed to write SQLite export: %w", err)
	}

	files := make([]File, len(tables))
	for i, t := range tables {
		files[i] = File{Table: t.Name, Path: path, Rows: len(t.Rows)}
	}
	return files, nil
}
