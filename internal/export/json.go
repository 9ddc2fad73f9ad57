package export

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/Rana718/funnelgen/internal/dataset"
)

// writeJSON writes the table as an array of objects whose keys keep column
// order, one object per line.
func writeJSON(w io.Writer, t dataset.Table) error {
	bw := bufio.NewWriter(w)
	names := t.ColumnNames()
	keys := make([][]byte, len(names))
	for i, name := range names {
		k, err := json.Marshal(name)
		if err != nil {
			return err
		}
		keys[i] = k
	}

	bw.WriteString("[")
	for r, row := range t.Rows {
		if r > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n  {")
		for i, v := range row {
			if i > 0 {
				bw.WriteString(",")
			}
			val, err := json.Marshal(v)
			if err != nil {
				return err
			}
			bw.Write(keys[i])
			bw.WriteString(":")
			bw.Write(val)
		}
		bw.WriteString("}")
	}
	if len(t.Rows) > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("]\n")
	return bw.Flush()
}
