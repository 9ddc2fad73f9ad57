package database

import (
	"fmt"
	"strings"

	"github.com/Rana718/funnelgen/internal/dataset"
)

// dialect holds what differs between providers when writing DDL and values.
type dialect struct {
	quote   func(string) string
	types   map[dataset.ColumnKind]string
	keyType string // used instead of the text type for primary and foreign keys
	date    func(dataset.Date) any

	// maxParams is the driver's limit on bind variables per statement, 0 if none.
	maxParams int
}

// batchSize caps the rows per INSERT so one statement stays under maxParams.
func (d dialect) batchSize(t dataset.Table, batch int) int {
	if batch <= 0 {
		batch = 100
	}
	if d.maxParams > 0 && len(t.Columns) > 0 {
		batch = max(1, min(batch, d.maxParams/len(t.Columns)))
	}
	return batch
}

func primaryKeys(tables []dataset.Table) map[string]string {
	pks := make(map[string]string, len(tables))
	for _, t := range tables {
		for _, c := range t.Columns {
			if c.PrimaryKey {
				pks[t.Name] = c.Name
			}
		}
	}
	return pks
}

func (d dialect) columnType(c dataset.Column) string {
	if c.Kind == dataset.KindText && (c.PrimaryKey || c.References != "") && d.keyType != "" {
		return d.keyType
	}
	return d.types[c.Kind]
}

func (d dialect) createTableSQL(t dataset.Table, pks map[string]string) string {
	var defs []string
	var fks []string
	for _, c := range t.Columns {
		def := d.quote(c.Name) + " " + d.columnType(c)
		if !c.Nullable {
			def += " NOT NULL"
		}
		if c.PrimaryKey {
			def += " PRIMARY KEY"
		}
		defs = append(defs, def)

		if pk, ok := pks[c.References]; ok && c.References != "" {
			fks = append(fks, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)",
				d.quote(c.Name), d.quote(c.References), d.quote(pk)))
		}
	}
	defs = append(defs, fks...)
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n)", d.quote(t.Name), strings.Join(defs, ",\n  "))
}

func (d dialect) quotedColumns(t dataset.Table) []string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = d.quote(c.Name)
	}
	return cols
}

// rowValues converts a table row to driver values. Empty dates and empty
// nullable text become NULL.
func (d dialect) rowValues(t dataset.Table, row []any) []any {
	out := make([]any, len(row))
	for i, v := range row {
		switch val := v.(type) {
		case dataset.Date:
			if val.IsZero() {
				out[i] = nil
			} else {
				out[i] = d.date(val)
			}
		case string:
			if val == "" && t.Columns[i].Nullable {
				out[i] = nil
			} else {
				out[i] = val
			}
		default:
			out[i] = val
		}
	}
	return out
}

func doubleQuote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func backtickQuote(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func dateString(d dataset.Date) any {
	return d.String()
}
