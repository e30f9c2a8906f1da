package mkcatalog

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
//
// Warnings and fix-me reminders never change the exit code.
const (
	ExitSuccess             = 0  // All catalogs regenerated
	ExitGeneralError        = 1  // Unknown or unclassified error
	ExitUsageError          = 2  // CLI usage error (unknown flag)
	ExitPanic               = 3  // Internal panic (unexpected crash)
	ExitConfigError         = 10 // Invalid mkcatalog.yaml or environment override
	ExitDirectoryUnreadable = 20 // A directory could not be listed
	ExitCatalogUnwritable   = 21 // A catalog file could not be written
)

const (
	// DefaultCatalogName is the file written into every tier-1 and tier-2 directory.
	DefaultCatalogName = "catalog.xml"

	// ConfigFileName is the optional per-root configuration file.
	ConfigFileName = "mkcatalog.yaml"

	// CatalogNamespace is the default namespace of OASIS XML Catalog documents.
	CatalogNamespace = "urn:oasis:names:tc:entity:xmlns:xml:catalog"

	// CatalogPublicID and CatalogSystemID identify the OASIS XML Catalogs V1.1 DTD.
	CatalogPublicID = "-//OASIS//DTD XML Catalogs V1.1//EN"
	CatalogSystemID = "http://www.oasis-open.org/committees/entity/release/1.1/catalog.dtd"
)
