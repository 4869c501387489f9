package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/heyosj/dispatch/internal/core/catalog"
	"github.com/heyosj/dispatch/internal/core/styles"
	"github.com/heyosj/dispatch/pkg/tmpl"
)

const postTemplate = `---
title: "{{ .Title }}"
description: ""
date: "{{ .Date }}"
slug: "{{ .Slug }}"
tags: []
order: 999
favorite: false
---

## intro

`

const playbookTemplate = `---
title: "{{ .Title }}"
description: ""
date: "{{ .Date }}"
updated: "{{ .Date }}"
slug: "{{ .Slug }}"
tags: []
order: 9999
pinned: false
repo: ""
---

> scenario

## prerequisites

## steps

## verification

## references

`

const labTemplate = `---
title: "{{ .Title }}"
description: ""
date: "{{ .Date }}"
slug: "{{ .Slug }}"
tags: []
order: 9999
published: true
---

## overview

## approach

## notes

## outcome

`

var kindTemplates = map[string]string{
	catalog.Posts.Name:     postTemplate,
	catalog.Labs.Name:      labTemplate,
	catalog.Playbooks.Name: playbookTemplate,
}

type NewCmd struct {
	flags *Flags

	// flags
	kind     string
	category string
}

// NewNewCmd creates a new new command
func NewNewCmd(flags *Flags) *NewCmd {
	return &NewCmd{flags: flags}
}

// Register adds the new command to the application
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Scaffold a new content file",
		UsageText: "dispatch new [--kind post|lab|playbook] [--category name] [title...]",
		Description: `Creates a content file with a frontmatter template under the content root.

Posts are filed under a category subdirectory (content/dispatch/<category>/);
labs and playbooks are flat. The slug is derived from the title.

When the title is omitted, an interactive form prompts for input.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Aliases:     []string{"k"},
				Usage:       "catalog kind (post, lab, playbook)",
				Value:       catalog.Posts.Name,
				Destination: &cmd.kind,
			},
			&cli.StringFlag{
				Name:        "category",
				Aliases:     []string{"c"},
				Usage:       "category subdirectory (posts only)",
				Value:       "general",
				Destination: &cmd.category,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(ctx context.Context, c *cli.Command) error {
	title := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))

	if title == "" {
		if err := cmd.runForm(&title); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	kind, ok := catalog.KindByName(cmd.kind)
	if !ok {
		return fmt.Errorf("unknown kind %q (want post, lab, or playbook)", cmd.kind)
	}

	slug := catalog.ResolveSlug("", title+".mdx")
	if slug == "" {
		return fmt.Errorf("title %q produces an empty slug", title)
	}

	dir := filepath.Join(cmd.flags.Config.ContentDir, kind.Dir)
	if kind.Name == catalog.Posts.Name {
		category := catalog.ResolveSlug("", cmd.category+".mdx")
		if category == "" {
			return fmt.Errorf("category required for posts")
		}
		dir = filepath.Join(dir, category)
	}

	content, err := tmpl.Render(kindTemplates[kind.Name], map[string]string{
		"Title": title,
		"Slug":  slug,
		"Date":  time.Now().Format("2006-01-02"),
	})
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	path := filepath.Join(dir, slug+".mdx")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, styles.SuccessStyle.Render("Created"), path)
	return nil
}

func (cmd *NewCmd) runForm(title *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("post", catalog.Posts.Name),
					huh.NewOption("lab", catalog.Labs.Name),
					huh.NewOption("playbook", catalog.Playbooks.Name),
				).
				Value(&cmd.kind),
			huh.NewInput().
				Title("Title").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}).
				Value(title),
			huh.NewInput().
				Title("Category (posts only)").
				Value(&cmd.category),
		),
	).Run()
}
