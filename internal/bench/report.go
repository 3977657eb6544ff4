package bench

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/hotloop/tickprof/clock"
)

// reportColors groups the color roles used by the report.
type reportColors struct {
	heading *color.Color
	label   *color.Color
	value   *color.Color
}

func newReportColors(enabled bool) *reportColors {
	c := &reportColors{
		heading: color.New(color.FgCyan, color.Bold),
		label:   color.New(color.FgYellow),
		value:   color.New(color.FgGreen),
	}

	if !enabled {
		c.heading.DisableColor()
		c.label.DisableColor()
		c.value.DisableColor()
	}

	return c
}

// WriteReport writes the formatted statistics of a completed run.
// Color is applied only when the writer is a terminal and NoColor is
// unset.
func WriteReport(w io.Writer, cfg *Config, res *Result) {
	c := newReportColors(!cfg.NoColor && writerIsTerminal(w))

	p := res.Profiler
	hz := res.FrequencyHz
	events := p.TotalEvents()

	if hz > 0 {
		c.heading.Fprintf(w, "--------------- %s @%dHz\n", res.SourceName, hz)
	} else {
		c.heading.Fprintf(w, "--------------- %s\n", res.SourceName)
	}

	fmt.Fprintf(w, "%s   %s\n",
		c.label.Sprintf("%-9s", "Events"),
		c.value.Sprintf("%12d", events),
	)

	if events == 0 {
		return
	}

	total := p.TotalTime()
	fmt.Fprintf(w, "%s   %s %s\n",
		c.label.Sprintf("%-9s", "Total"),
		c.value.Sprintf("%12dt", total),
		c.value.Sprintf("%14.2fns", clock.Nanoseconds(float64(total), hz)),
	)
	fmt.Fprintf(w, "%s   %s %s\n",
		c.label.Sprintf("%-9s", "Average"),
		c.value.Sprintf("%12.2ft", p.AverageTime()),
		c.value.Sprintf("%14.2fns", clock.Nanoseconds(p.AverageTime(), hz)),
	)
	fmt.Fprintf(w, "%s   %s %s\n",
		c.label.Sprintf("%-9s", "Min"),
		c.value.Sprintf("%12dt", p.PercentileByEvents(0)),
		c.value.Sprintf("%14.2fns",
			clock.Nanoseconds(float64(p.PercentileByEvents(0)), hz)),
	)
	fmt.Fprintf(w, "%s   %s %s\n",
		c.label.Sprintf("%-9s", "Max"),
		c.value.Sprintf("%12dt", p.PercentileByEvents(1)),
		c.value.Sprintf("%14.2fns",
			clock.Nanoseconds(float64(p.PercentileByEvents(1)), hz)),
	)

	for _, pct := range cfg.Percentiles {
		v := p.PercentileByEvents(pct)
		fmt.Fprintf(w, "%s   %s %s\n",
			c.label.Sprintf("%7.3f%%", pct*100),
			c.value.Sprintf("%12dt", v),
			c.value.Sprintf("%14.2fns", clock.Nanoseconds(float64(v), hz)),
		)
	}

	fmt.Fprintf(w, "%s\n", c.heading.Sprint("By time span:"))

	for _, pct := range cfg.Percentiles {
		d, n := p.PercentileByTime(pct)
		fmt.Fprintf(w, "%s   %s %s %s\n",
			c.label.Sprintf("%7.3f%%", pct*100),
			c.value.Sprintf("%12dt", d),
			c.value.Sprintf("%14.2fns", clock.Nanoseconds(float64(d), hz)),
			c.value.Sprintf("x%d", n),
		)
	}

	fmt.Fprintf(w, "%s   %s\n",
		c.label.Sprintf("%-9s", "Elapsed"),
		c.value.Sprint(res.Elapsed),
	)
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
