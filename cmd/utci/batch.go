package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/ja7ad/utci/pkg/thermal"
)

type batchOpts struct {
	inPath string

	quiet bool

	// outputs
	csvPath  string
	jsonPath string
	htmlPath string
}

// record is one input line of a batch CSV. vp, when present and non-empty,
// takes precedence over rh.
type record struct {
	TA   float64 `csv:"ta"`
	RH   float64 `csv:"rh"`
	TMRT float64 `csv:"tmrt"`
	VA   float64 `csv:"va"`
	VP   string  `csv:"vp"`
}

func (r *record) conditions() (thermal.Conditions, error) {
	c := thermal.Conditions{AirTemp: r.TA, RelHumidity: r.RH, RadiantTemp: r.TMRT, WindSpeed: r.VA}
	if s := strings.TrimSpace(r.VP); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return c, fmt.Errorf("%w: vp=%q", ErrBadNumber, r.VP)
		}
		c.VaporPressure, c.HasVaporPressure = v, true
	}
	return c, nil
}

func newBatchCmd() *cobra.Command {
	var o batchOpts

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate every row of a CSV file (columns ta,rh,tmrt,va[,vp])",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), o)
		},
	}

	cmd.Flags().StringVar(&o.inPath, "in", "-", "input CSV file (- = stdin)")
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "do not log rows outside the validated domain")
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "write per-row results to CSV file")
	cmd.Flags().StringVar(&o.jsonPath, "json", "", "write per-row results to JSON file")
	cmd.Flags().StringVar(&o.htmlPath, "html", "", "write per-row results and summary to HTML file")
	return cmd
}

func readRecords(r io.Reader) ([]*record, error) {
	var recs []*record
	if err := gocsv.Unmarshal(r, &recs); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrNoRows
	}
	return recs, nil
}

func runBatch(ctx context.Context, stdin io.Reader, out io.Writer, o batchOpts) error {
	in := stdin
	if o.inPath != "" && o.inPath != "-" {
		f, err := os.Open(o.inPath)
		if err != nil {
			return fmt.Errorf("batch: %w", err)
		}
		defer f.Close()
		in = f
	}

	recs, err := readRecords(in)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	acc := thermal.New(&thermal.Config{Logger: slog.Default(), QuietDomain: o.quiet})
	tw := newTable(out)
	printTableHeader(tw)

	rows := make([]row, 0, len(recs))
	for i, rec := range recs {
		if ctx.Err() != nil {
			slog.Info("interrupted", "rows", len(rows))
			break
		}
		c, err := rec.conditions()
		if err != nil {
			slog.Warn("skip row", "line", i+2, "err", err)
			continue
		}
		r := newRow(c, acc.Apply(c))
		rows = append(rows, r)
		printTableRow(tw, r)
	}
	tw.Flush()

	sum := acc.Summary()
	if err := writeOutputs(o, rows, sum); err != nil {
		return err
	}
	printSummary(out, sum)
	return nil
}

func writeOutputs(o batchOpts, rows []row, sum thermal.Summary) error {
	if o.csvPath != "" {
		if err := writeFile(o.csvPath, func(w io.Writer) error { return gocsv.Marshal(rows, w) }); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}
	if o.jsonPath != "" {
		err := writeFile(o.jsonPath, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		})
		if err != nil {
			return fmt.Errorf("json: %w", err)
		}
	}
	if o.htmlPath != "" {
		if err := writeFile(o.htmlPath, func(w io.Writer) error { return writeHTML(w, rows, sum) }); err != nil {
			return fmt.Errorf("html: %w", err)
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
