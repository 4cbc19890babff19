package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lifei6671/guizhanlib/cmd/guizhanlint/checker"
	"github.com/lifei6671/guizhanlib/internal/config"
	"github.com/lifei6671/guizhanlib/internal/logger"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	langStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	issueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func newCheckCmd(cfg *config.Config) *cobra.Command {
	var base string
	var fail bool

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "检查语言目录中的缺失键、多余键与占位符语法",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.Dir
			if len(args) == 1 {
				dir = args[0]
			}
			if !cmd.Flags().Changed("base") {
				base = cfg.Base
			}
			if !cmd.Flags().Changed("fail") {
				fail = cfg.Fail
			}

			logger.Named("lint").WithField("dir", dir).Debug("checking language folder")
			res, err := checker.CheckLocales(dir, base)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)

			if fail && res.HasIssues() {
				return errIssuesFound
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&base, "base", "b", "", "base language that defines the expected keys")
	cmd.Flags().BoolVar(&fail, "fail", false, "exit with code 1 if any issue found")
	return cmd
}

func printResult(w io.Writer, res *checker.Result) {
	fmt.Fprintln(w, titleStyle.Render("=== LANGUAGE CHECK RESULT ==="))
	fmt.Fprintln(w, "Languages:", res.Languages)
	if res.Base != "" {
		fmt.Fprintln(w, "Base:", res.Base)
	}
	fmt.Fprintln(w, "Total keys:", len(res.AllKeys))

	for _, lang := range res.Languages {
		fmt.Fprintf(w, "\n%s\n", langStyle.Render(fmt.Sprintf("--- [%s] ---", lang)))

		if err, ok := res.BadTags[lang]; ok {
			fmt.Fprintln(w, issueStyle.Render(fmt.Sprintf("Invalid language tag: %v", err)))
		}
		printList(w, "Missing keys", res.MissingKeys[lang])
		printList(w, "Redundant keys", res.RedundantKeys[lang])

		errs := res.SyntaxErrors[lang]
		if len(errs) == 0 {
			fmt.Fprintln(w, "Syntax errors:", okStyle.Render("None"))
			continue
		}
		keys := make([]string, 0, len(errs))
		for k := range errs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(w, "Syntax errors:")
		for _, k := range keys {
			fmt.Fprintln(w, issueStyle.Render(fmt.Sprintf("  - %s: %v", k, errs[k])))
		}
	}
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(w, "%s: %s\n", title, okStyle.Render("None"))
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, k := range items {
		fmt.Fprintln(w, issueStyle.Render("  - "+k))
	}
}
