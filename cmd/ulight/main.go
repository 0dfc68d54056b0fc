// Command ulight highlights a JavaScript/JSX source file and writes it
// to stdout in ANSI, HTML, or JSON form.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ulight/cliconfig"
	"github.com/example/ulight/highlight"
	"github.com/example/ulight/render/ansi"
	"github.com/example/ulight/render/html"
	"github.com/example/ulight/render/jsonout"
	"github.com/example/ulight/sink"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		format     string
		lang       string
		noCoalesce bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "ulight [file]",
		Short: "Highlight JavaScript/JSX source for terminal, HTML, or JSON output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				format = cfg.Format
			}
			if !cmd.Flags().Changed("lang") && cfg.Lang != "" {
				lang = cfg.Lang
			}
			coalesce := true
			if cfg.Coalescing != nil {
				coalesce = *cfg.Coalescing
			}
			if noCoalesce {
				coalesce = false
			}

			var path string
			if len(args) > 0 {
				path = args[0]
			}
			source, err := readSource(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			tokens, err := highlightSource(source, coalesce, lang == "js")
			if err != nil {
				return err
			}

			return renderOutput(cmd.OutOrStdout(), format, source, tokens)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "ansi", "ansi|html|json")
	cmd.Flags().StringVarP(&lang, "lang", "l", "jsx", "js|jsx")
	cmd.Flags().BoolVar(&noCoalesce, "no-coalesce", false, "disable token coalescing")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	return cmd
}

func loadConfig(path string) (cliconfig.Config, error) {
	if path != "" {
		return cliconfig.Load(path)
	}
	return cliconfig.Load(cliconfig.DefaultPath)
}

func readSource(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func highlightSource(source []byte, coalesce, disableJSX bool) ([]highlight.Token, error) {
	buf := sink.NewBuffer(make([]highlight.Token, 0, len(source)), coalesce)
	opts := highlight.Options{Coalescing: coalesce, DisableJSX: disableJSX}
	if !highlight.Highlight(context.Background(), buf, source, opts) {
		return nil, fmt.Errorf("highlighting canceled")
	}
	return buf.Tokens(), nil
}

func renderOutput(w io.Writer, format string, source []byte, tokens []highlight.Token) error {
	switch format {
	case "ansi", "":
		return ansi.Render(w, source, tokens)
	case "html":
		return html.Render(w, source, tokens)
	case "json":
		return jsonout.Render(w, source, tokens)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
