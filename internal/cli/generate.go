package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mkcatalog/internal/catalog"
	"github.com/vvka-141/mkcatalog/internal/config"
	"github.com/vvka-141/mkcatalog/internal/diagnostics"
	"github.com/vvka-141/mkcatalog/internal/files/filesystem"
	"github.com/vvka-141/mkcatalog/pkg/mkcatalog"
)

// resolveOptions loads per-root options. Replaced in tests.
var resolveOptions = config.Resolve

func runGenerate(cmd *cobra.Command, args []string) error {
	reporter := diagnostics.NewConsoleReporter(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	summary, err := generateCatalogs(rootsFromArgs(args), filesystem.NewOSFileSystem(), reporter)
	if err != nil {
		reporter.Error("%v", err)
		return err
	}

	reporter.Success("%d %s written: %d %s, %d %s, %d %s",
		summary.Catalogs, plural(summary.Catalogs, "catalog", "catalogs"),
		summary.Entries, plural(summary.Entries, "entry", "entries"),
		summary.Warnings, plural(summary.Warnings, "warning", "warnings"),
		summary.FixMes, plural(summary.FixMes, "FIXME", "FIXMEs"))
	return nil
}

// rootsFromArgs defaults to the current directory.
func rootsFromArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

// generateCatalogs processes each library root in turn and stops at the
// first fatal error.
func generateCatalogs(roots []string, fsProvider filesystem.FileSystemProvider, reporter mkcatalog.Reporter) (mkcatalog.Summary, error) {
	var total mkcatalog.Summary
	for _, root := range roots {
		opts, err := resolveOptions(root)
		if err != nil {
			return total, fmt.Errorf("configuration for %s: %w", root, err)
		}
		reporter.Verbose("Library root: %s (duplicates=%s, catalog=%s)", root, opts.Duplicates, opts.CatalogName)
		reporter.Info("Generating catalogs under %s", root)

		summary, err := catalog.NewGenerator(fsProvider, reporter, opts).Generate(root)
		total.Add(summary)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
