package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/heyosj/dispatch/internal/core/doctor"
	"github.com/heyosj/dispatch/internal/core/styles"
	"github.com/heyosj/dispatch/pkg/iojson"
)

type DoctorCmd struct {
	flags  *Flags
	format string
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "doctor",
		Usage:     "Check content health across all catalogs",
		UsageText: "dispatch doctor [options]",
		Description: `Reports the problems listings deliberately absorb: duplicate slugs,
unparseable dates (which silently sort as oldest), and missing titles.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	results := doctor.RunAll(ctx, doctor.Checks(cmd.flags.Config.ContentDir))

	if cmd.format == "json" {
		return cmd.outputJSON(c, results)
	}
	return cmd.outputText(c, results)
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, results []doctor.Result) error {
	passed, warned, failed := doctor.Summary(results)

	out := struct {
		Healthy bool            `json:"healthy"`
		Summary summaryJSON     `json:"summary"`
		Checks  []doctor.Result `json:"checks"`
	}{
		Healthy: failed == 0,
		Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:  results,
	}

	return iojson.Write(c.Root().Writer, out)
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) outputText(c *cli.Command, results []doctor.Result) error {
	w := os.Stderr
	divider := styles.MutedStyle.Render(strings.Repeat("─", 40))

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, styles.TitleStyle.Render("Content Doctor"))
	_, _ = fmt.Fprintln(w, divider)

	for _, r := range results {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, styles.TitleStyle.Render(r.Name))
		for _, item := range r.Items {
			var mark string
			switch item.Status {
			case doctor.StatusPass:
				mark = styles.SuccessStyle.Render("✓")
			case doctor.StatusWarn:
				mark = styles.WarningStyle.Render("!")
			case doctor.StatusFail:
				mark = styles.ErrorStyle.Render("✗")
			}
			line := fmt.Sprintf("  %s %s", mark, item.Label)
			if item.Detail != "" {
				line += styles.MutedStyle.Render(" — " + item.Detail)
			}
			_, _ = fmt.Fprintln(w, line)
		}
	}

	passed, warned, failed := doctor.Summary(results)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, divider)
	_, _ = fmt.Fprintf(w, "%d passed, %d warnings, %d failures\n", passed, warned, failed)

	if failed > 0 {
		return fmt.Errorf("doctor found %d failure(s)", failed)
	}
	return nil
}
