package sweep

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteCSV renders a completed sweep as CSV: a header row, then one row per
// grid point with the power, the aggregate BER and every per-level entry.
//
// Layout: power,ber_total,ber_level_0,...,ber_level_{M-1}.
func WriteCSV(w io.Writer, res *Result) error {
	cw := csv.NewWriter(w)

	header := []string{"power", "ber_total"}
	if len(res.Points) > 0 {
		for k := range res.Points[0].BERPerLevel {
			header = append(header, "ber_level_"+strconv.Itoa(k))
		}
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "sweep: writing CSV header")
	}

	for _, pt := range res.Points {
		row := make([]string, 0, len(pt.BERPerLevel)+2)
		row = append(row,
			strconv.FormatFloat(pt.Power, 'g', -1, 64),
			strconv.FormatFloat(pt.BERTotal, 'g', -1, 64),
		)
		for _, b := range pt.BERPerLevel {
			row = append(row, strconv.FormatFloat(b, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "sweep: writing CSV row for power %g", pt.Power)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "sweep: flushing CSV")
}
