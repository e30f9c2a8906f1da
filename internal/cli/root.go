package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mkcatalog/pkg/mkcatalog"
)

var rootCmd = &cobra.Command{
	Use:   "mkcatalog [library_root...]",
	Short: "Regenerate XML Catalog files for a schema library",
	Long: `mkcatalog walks a schema library and rewrites its OASIS XML Catalog files.

The library has three tiers:

  <root>/catalog.xml                 nextCatalog reference per originator
  <root>/<originator>/catalog.xml    one <group> per version directory
  <root>/<originator>/<version>/...  *.xsd, *.xml and *.dtd files to index

Schemas are indexed by targetNamespace, classification schemes by the uri
of their ClassificationScheme element, and DTDs get empty public/system
placeholders to fill in by hand. Hidden files and directories are skipped.

With no arguments the current directory is the library root.

Configuration (optional, per root): mkcatalog.yaml
  duplicates: warn | allow | skip     (env: MKCATALOG_DUPLICATES)
  catalog_name: catalog.xml

Exit Codes:
  0  - Success (warnings and FIXME reminders do not change the exit code)
  1  - General error
  2  - CLI usage error
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - A directory could not be listed
  21 - A catalog file could not be written`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	err := rootCmd.Execute()
	if err != nil && !isReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "List every catalog file written")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	f := cmd.Flag("verbose")
	if f == nil {
		return false
	}
	verbose, err := strconv.ParseBool(f.Value.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// isReported reports whether runGenerate already printed err through the reporter.
func isReported(err error) bool {
	return errors.Is(err, mkcatalog.ErrDirectoryUnreadable) ||
		errors.Is(err, mkcatalog.ErrCatalogUnwritable) ||
		errors.Is(err, mkcatalog.ErrInvalidConfig)
}
