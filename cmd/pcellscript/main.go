// Command pcellscript validates and prints the header of a PCell
// script property (the "[@LANG ...] [@READ ...] [@MD5 ...] <body>"
// text xic stores in a cell's XIC_PC_SCRIPT property), using cobra
// for its command tree.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vtsim/paramsub/internal/pcell"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pcellscript",
		Short: "Inspect PCell script property headers",
	}
	root.AddCommand(newCheckCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "check <script-file>",
		Short: "Parse a script's @LANG/@READ/@MD5 header and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			h, err := pcell.ParseHeader(string(data))
			if err != nil {
				return err
			}
			printHeader(cmd.OutOrStdout(), h)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log parsing details at debug level")
	return cmd
}

func printHeader(w io.Writer, h *pcell.Header) {
	lang := "native"
	switch h.Lang {
	case pcell.LangPython:
		lang = "python"
	case pcell.LangTcl:
		lang = "tcl"
	}
	fmt.Fprintf(w, "language: %s\n", lang)
	if h.Read != "" {
		fmt.Fprintf(w, "read: %s\n", h.Read)
	}
	if h.MD5 != "" {
		fmt.Fprintf(w, "md5: %s\n", h.MD5)
	}
	fmt.Fprintf(w, "body bytes: %d\n", len(h.Body))
}
