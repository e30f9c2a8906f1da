package catalog

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PublicEntry is a DTD public-identifier mapping.
type PublicEntry struct {
	PublicID string `xml:"publicId,attr"`
	URI      string `xml:"uri,attr"`
}

// SystemEntry is a DTD system-identifier mapping.
type SystemEntry struct {
	SystemID string `xml:"systemId,attr"`
	URI      string `xml:"uri,attr"`
}

// NextCatalog forwards resolution to a subordinate catalog.
type NextCatalog struct {
	Catalog string `xml:"catalog,attr"`
}

// Group scopes entries to files under Base, which always ends in "/".
type Group struct {
	Base    string        `xml:"http://www.w3.org/XML/1998/namespace base,attr"`
	URIs    []Entry       `xml:"uri"`
	Publics []PublicEntry `xml:"public"`
	Systems []SystemEntry `xml:"system"`
	Groups  []Group       `xml:"group"`
}

// Catalog is a catalog file read back for inspection: either a forwarding catalog (root tier)
// or a content catalog (originator tier).
type Catalog struct {
	XMLName      xml.Name      `xml:"urn:oasis:names:tc:entity:xmlns:xml:catalog catalog"`
	NextCatalogs []NextCatalog `xml:"nextCatalog"`
	Groups       []Group       `xml:"group"`
}

// Parse reads a catalog document.
func Parse(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &c, nil
}

// Walk visits every group depth-first, parents before children.
func (c *Catalog) Walk(fn func(g *Group)) {
	for i := range c.Groups {
		c.Groups[i].walk(fn)
	}
}

func (g *Group) walk(fn func(g *Group)) {
	fn(g)
	for i := range g.Groups {
		g.Groups[i].walk(fn)
	}
}

// FindGroup returns the group with the given base, or nil.
func (c *Catalog) FindGroup(base string) *Group {
	var found *Group
	c.Walk(func(g *Group) {
		if found == nil && g.Base == base {
			found = g
		}
	})
	return found
}

const sampleCatalog = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE catalog PUBLIC "-//OASIS//DTD XML Catalogs V1.1//EN" "http://www.oasis-open.org/committees/entity/release/1.1/catalog.dtd">
<catalog xmlns="urn:oasis:names:tc:entity:xmlns:xml:catalog">
  <group xml:base="2015/">
    <uri name="urn:w3c:2015" uri="foo.xsd"/>
    <public publicId="" uri="x.dtd"/>
    <system systemId="" uri="x.dtd"/>
    <group xml:base="2015/profiles/">
      <uri name="urn:w3c:2015:profiles" uri="bar.xsd"/>
    </group>
  </group>
  <group xml:base="2019/"/>
</catalog>`

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	require.Len(t, c.Groups, 2)
	g := c.Groups[0]
	assert.Equal(t, "2015/", g.Base)
	assert.Equal(t, []Entry{{Name: "urn:w3c:2015", URI: "foo.xsd"}}, g.URIs)
	assert.Equal(t, []PublicEntry{{PublicID: "", URI: "x.dtd"}}, g.Publics)
	assert.Equal(t, []SystemEntry{{SystemID: "", URI: "x.dtd"}}, g.Systems)
	require.Len(t, g.Groups, 1)
	assert.Equal(t, "2015/profiles/", g.Groups[0].Base)
	assert.Equal(t, "2019/", c.Groups[1].Base)
}

func TestParse_RejectsOtherRoot(t *testing.T) {
	_, err := Parse(strings.NewReader(`<notacatalog/>`))
	require.Error(t, err)
}

func TestCatalog_WalkAndFindGroup(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	var bases []string
	c.Walk(func(g *Group) { bases = append(bases, g.Base) })
	assert.Equal(t, []string{"2015/", "2015/profiles/", "2019/"}, bases)

	g := c.FindGroup("2015/profiles/")
	require.NotNil(t, g)
	assert.Equal(t, "bar.xsd", g.URIs[0].URI)
	assert.Nil(t, c.FindGroup("nope/"))
}
