package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"peek/internal/version"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "peek [flags] [file]...",
		Short:        "Print the leading portion of files or standard input",
		Long:         `peek prints the first lines or bytes of each input, separating multiple inputs with "==> name <==" headers`,
		Args:         cobra.ArbitraryArgs,
		RunE:         runRoot,
		SilenceUsage: true,
	}
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().StringP("lines", "n", "10", "number of lines to print")
	rootCmd.Flags().StringP("bytes", "c", "", "number of bytes to print (overrides --lines)")
	rootCmd.Flags().BoolP("quiet", "q", false, "never print headers")
	rootCmd.Flags().BoolP("verbose", "v", false, "always print headers")
	rootCmd.Flags().String("color", "", "colorize headers (auto|on|off)")
	rootCmd.Flags().String("config", "", "path to a peek.toml defaults file")
	rootCmd.MarkFlagsMutuallyExclusive("lines", "bytes")
	rootCmd.MarkFlagsMutuallyExclusive("quiet", "verbose")

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
