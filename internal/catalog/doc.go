// Package catalog regenerates OASIS XML Catalog files for a three-tier
// library of schemas, classification schemes and DTDs.
//
// # Layout
//
//	lib/                      tier 1: catalog.xml with nextCatalog references
//	lib/W3C/                  tier 2: catalog.xml with one group per subdirectory
//	lib/W3C/2015/             tier 3: group xml:base="2015/"
//	lib/W3C/2015/profiles/    tier 4+: nested group xml:base="2015/profiles/"
//
// Every xml:base and uri is relative to the directory of the catalog that
// contains it. Hidden entries are skipped at every tier.
//
// # Errors
//
// Only I/O failures on directories and catalog files are returned as errors;
// they abort the run. Files whose namespace cannot be extracted are reported
// through the mkcatalog.Reporter and left out of the catalog. DTDs always get
// empty public/system placeholders plus a FIXME reminder.
package catalog
