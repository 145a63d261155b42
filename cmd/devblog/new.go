package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/navidjalilian/devblog"
	"github.com/navidjalilian/devblog/content"
	"github.com/navidjalilian/devblog/i18n"
	"github.com/navidjalilian/devblog/scaffold"
)

var (
	newLang  string
	newDraft bool
	newTags  []string
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new post skeleton in the content directory",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		title := strings.Join(args, " ")
		lang, err := i18n.ParseLocale(newLang)
		if err != nil {
			return err
		}
		slug := content.Slugify(title)
		if slug == "" {
			return fmt.Errorf("title %q has no characters usable in a slug", title)
		}

		dir := app.Config.ContentDir
		if lang != app.Config.Routing.DefaultLocale {
			dir = filepath.Join(dir, string(lang))
		}
		p := filepath.Join(dir, slug+".md")
		if _, err := os.Stat(p); err == nil {
			return fmt.Errorf("%s already exists", p)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		f, err := os.Create(p)
		if err != nil {
			return fmt.Errorf("create %s: %w", p, err)
		}
		defer f.Close()

		if err := scaffold.Post(f, scaffold.PostData{
			Title:   title,
			PubDate: time.Now().Format("2006-01-02"),
			Lang:    string(lang),
			Tags:    devblog.FilterEmpty(newTags),
			Draft:   newDraft,
		}); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", p)
		fmt.Fprintf(cmd.OutOrStdout(), "it will be published at %s\n", app.Config.Routing.Path(lang, "blog", slug))
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newLang, "lang", "en", "post language (en, fa)")
	newCmd.Flags().BoolVar(&newDraft, "draft", false, "mark the post as a draft")
	newCmd.Flags().StringSliceVar(&newTags, "tags", nil, "comma-separated tags")
}
