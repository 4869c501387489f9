package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/heyosj/dispatch/internal/core/catalog"
	"github.com/heyosj/dispatch/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	kind       string
	tag        string
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List catalog items",
		UsageText: "dispatch ls [--kind post|lab|playbook] [--tag tag] [--json]",
		Description: `Displays a table of items in one catalog, in catalog order
(manual order first, then freshness).

Use --json for machine-readable output as JSON lines.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Aliases:     []string{"k"},
				Usage:       "catalog kind (post, lab, playbook)",
				Value:       catalog.Posts.Name,
				Destination: &cmd.kind,
			},
			&cli.StringFlag{
				Name:        "tag",
				Aliases:     []string{"t"},
				Usage:       "only items carrying this tag (case-insensitive)",
				Destination: &cmd.tag,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	kind, ok := catalog.KindByName(cmd.kind)
	if !ok {
		return fmt.Errorf("unknown kind %q (want post, lab, or playbook)", cmd.kind)
	}

	cat := catalog.New(kind, cmd.flags.Config.ContentDir)

	var (
		items []catalog.Item
		err   error
	)
	if cmd.tag != "" {
		items, err = cat.ByTag(cmd.tag)
	} else {
		items, err = cat.All()
	}
	if err != nil {
		return fmt.Errorf("list %ss: %w", kind.Name, err)
	}

	if len(items) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No %ss found\n", kind.Name)
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, it := range items {
			if err := iojson.WriteLine(out, it); err != nil {
				return fmt.Errorf("encode item: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SLUG\tTITLE\tDATE\tCATEGORY\tTAGS\tREAD")

	for _, it := range items {
		pin := ""
		if it.Pinned {
			pin = " *"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s%s\t%s\t%s\t%s\t%dm\n",
			it.Slug, it.Title, pin, it.Date, it.Category, strings.Join(it.Tags, ","), it.ReadingTime)
	}

	return w.Flush()
}
