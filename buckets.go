package pretty

import (
	"bytes"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteBuckets writes a table with one row per bucket of c: its index,
// its size and its rendered contents. It shows how evenly a hash
// container spreads its elements.
func WriteBuckets[E any](w io.Writer, c Bucketed[E]) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Bucket", "Size", "Elements"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	for i := range c.BucketCount() {
		size := 0
		for range c.Bucket(i) {
			size++
		}
		table.Append([]string{strconv.Itoa(i), strconv.Itoa(size), Default.String(Bucket(c, i))})
	}
	table.Render()

	_, err := w.Write(buf.Bytes())
	return err
}
