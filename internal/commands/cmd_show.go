package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/heyosj/dispatch/internal/core/catalog"
	"github.com/heyosj/dispatch/internal/core/render"
	"github.com/heyosj/dispatch/internal/core/styles"
)

type ShowCmd struct {
	flags *Flags

	// flags
	kind string
	raw  bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Render one item in the terminal",
		UsageText: "dispatch show [--kind post|lab|playbook] [--raw] <slug>",
		Description: `Looks an item up by slug and renders its body with styled markdown.

Use --raw to print the body text exactly as authored.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Aliases:     []string{"k"},
				Usage:       "catalog kind (post, lab, playbook)",
				Value:       catalog.Posts.Name,
				Destination: &cmd.kind,
			},
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print the raw body without rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	slug := c.Args().First()
	if slug == "" {
		return fmt.Errorf("missing slug argument")
	}

	kind, ok := catalog.KindByName(cmd.kind)
	if !ok {
		return fmt.Errorf("unknown kind %q (want post, lab, or playbook)", cmd.kind)
	}

	cat := catalog.New(kind, cmd.flags.Config.ContentDir)

	item, err := cat.BySlug(slug)
	if err != nil {
		return fmt.Errorf("load %s: %w", kind.Name, err)
	}
	if item == nil {
		return fmt.Errorf("no %s with slug %q", kind.Name, slug)
	}

	out := c.Root().Writer

	if cmd.raw {
		_, err := fmt.Fprintln(out, item.Body)
		return err
	}

	cmd.printHeader(out, item)

	wrapWidth := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		wrapWidth = max(min(w, 100), 20)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(cmd.flags.Config.Render.TerminalStyle),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := r.Render(item.Body)
	if err != nil {
		return fmt.Errorf("render body: %w", err)
	}

	_, err = fmt.Fprintln(out, rendered)
	return err
}

func (cmd *ShowCmd) printHeader(out interface{ Write([]byte) (int, error) }, item *catalog.Item) {
	_, _ = fmt.Fprintln(out, styles.TitleStyle.Render(item.Title))

	meta := fmt.Sprintf("%s • %d min read", item.Date, item.ReadingTime)
	if item.Updated != "" && item.Updated != item.Date {
		meta += " • updated " + item.Updated
	}
	_, _ = fmt.Fprintln(out, styles.MutedStyle.Render(meta))

	if len(item.Tags) > 0 {
		_, _ = fmt.Fprintln(out, styles.TagStyle.Render("#"+strings.Join(item.Tags, " #")))
	}

	// Quick-jump sections, same heuristic the site uses for pills.
	article, err := render.New("").Article(item.Body)
	if err == nil && len(article.KeySections) >= 2 {
		names := make([]string, 0, len(article.KeySections))
		for _, s := range article.KeySections {
			names = append(names, s.Text)
		}
		_, _ = fmt.Fprintln(out, styles.MutedStyle.Render("sections: "+strings.Join(names, " · ")))
	}

	_, _ = fmt.Fprintln(out)
}
