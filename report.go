package monte

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger for text output or a JSON logger otherwise, writing to w
// at level
func NewLogger(format string, level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("unknown log level %s", level)
	}
	if w == nil {
		w = os.Stderr
	}
	switch format {
	case "json":
		return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
	default:
		cw := zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = w
			cw.TimeFormat = "15:04:05.000"
		})
		return zerolog.New(cw).Level(lvl).With().Timestamp().Logger(), nil
	}
}

// WriteResults writes one line per result.  The json format writes one JSON object per line.
func WriteResults(w io.Writer, format string, results []Result) error {
	switch format {
	case "json":
		return writeJSON(w, results)
	default:
		return writeText(w, results)
	}
}

func writeText(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RESULT\tCHECK\tVALUE\tLIMIT\tDETAIL")
	for _, r := range results {
		status := "PASS"
		if !r.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.6g\t%.6g\t%s\n", status, r.Name, r.Value, r.Limit, r.Detail)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, results []Result) error {
	out := zerolog.New(w)
	for _, r := range results {
		out.Log().
			Str("name", r.Name.String()).
			Str("check", r.Name.Base()).
			Float64("value", r.Value).
			Float64("limit", r.Limit).
			Bool("pass", r.Pass).
			Str("detail", r.Detail).
			Send()
	}
	return nil
}

// Summary counts passing and failing results
type Summary struct {
	Passed  int
	Failed  int
	Elapsed time.Duration
}

// Summarize counts the results of a battery that took elapsed to run
func Summarize(results []Result, elapsed time.Duration) Summary {
	s := Summary{Elapsed: elapsed}
	for _, r := range results {
		if r.Pass {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// OK is true when every check passed
func (s Summary) OK() bool {
	return s.Failed == 0
}
