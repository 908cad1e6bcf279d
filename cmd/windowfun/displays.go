package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/1broseidon/windowfun/internal/platform"
)

func runDisplays(args []string) int {
	fs := flag.NewFlagSet("displays", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	workArea := fs.Bool("work-area", false, "Measure the span height to the bottom of the work area")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	backend, err := platform.NewBackend()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	displays, err := backend.Displays()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBOUNDS\tUSABLE\tPRIMARY")
	for _, d := range displays {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%v\n", d.ID, d.Name, formatRect(d.Bounds), formatRect(d.Usable), d.Primary)
	}
	tw.Flush()

	span, err := platform.ComputeSpan(displays, *workArea)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println()
	fmt.Println("screen:")
	fmt.Printf("  width: %d\n", span.Width)
	fmt.Printf("  height: %d\n", span.Height)
	fmt.Printf("  monitors_right: %d\n", span.MonitorsRight)
	fmt.Printf("  monitors_left: %d\n", span.MonitorsLeft)
	return 0
}

func formatRect(r platform.Rect) string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
