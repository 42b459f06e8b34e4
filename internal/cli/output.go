package cli

import (
	"fmt"
	"io"

	"github.com/agbru/algobench/internal/bench"
	"github.com/agbru/algobench/internal/sysinfo"
	"github.com/agbru/algobench/internal/ui"
)

// DisplayHostInfo prints the machine description header that precedes every
// report, so results can be attributed to the hardware they ran on.
func DisplayHostInfo(info sysinfo.Info, out io.Writer) {
	fmt.Fprintf(out, "%sHost:%s %s\n", ui.ColorBold(), ui.ColorReset(), info.String())
}

// DisplayRecord prints a single benchmark record in a human-readable form.
//
// Parameters:
//   - record: The benchmark outcome to display.
//   - out: The io.Writer for the output.
func DisplayRecord(record bench.Record, out io.Writer) {
	fmt.Fprintf(out, "%s%s%s: %s total, %s/iteration over %s iterations\n",
		ui.ColorBlue(), record.Name, ui.ColorReset(),
		FormatExecutionDuration(record.Total),
		FormatExecutionDuration(record.PerIteration),
		formatNumberString(fmt.Sprintf("%d", record.Iterations)))
	if record.Cycles > 0 {
		fmt.Fprintf(out, "  %d instructions, %d cycles, %.2f IPC\n",
			record.Instructions, record.Cycles, record.InstructionsPerCycle())
	}
}
