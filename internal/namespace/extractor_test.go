package namespace

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

// TestExtract_Schema covers the schema rule chain
func TestExtract_Schema(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		outcome   Outcome
		namespace string
		reason    string
	}{
		{
			name:      "prefixed schema",
			content:   `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:example:foo"/>`,
			outcome:   Extracted,
			namespace: "urn:example:foo",
		},
		{
			name:      "default namespace schema",
			content:   `<schema xmlns="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:tva:metadata:2019"></schema>`,
			outcome:   Extracted,
			namespace: "urn:tva:metadata:2019",
		},
		{
			name:      "whitespace is trimmed",
			content:   "<schema targetNamespace=\"\n  urn:example:padded \t\"/>",
			outcome:   Extracted,
			namespace: "urn:example:padded",
		},
		{
			name:      "schema nested in another element",
			content:   `<wsdl:types xmlns:wsdl="urn:wsdl"><xsd:schema xmlns:xsd="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:nested"/></wsdl:types>`,
			outcome:   Extracted,
			namespace: "urn:nested",
		},
		{
			name:    "no targetNamespace",
			content: `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"/>`,
			outcome: NoNamespace,
			reason:  "no targetNamespace",
		},
		{
			name:    "blank targetNamespace",
			content: `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="   "/>`,
			outcome: NoNamespace,
		},
		{
			name:    "not a schema",
			content: `<html><body/></html>`,
			outcome: Unrecognized,
			reason:  "not a recognized W3C XML Schema",
		},
		{
			name:    "garbage",
			content: `%%% not xml at all <<<`,
			outcome: Unrecognized,
		},
		{
			name:      "truncated after schema start tag",
			content:   `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:truncated"><xs:element name=`,
			outcome:   Extracted,
			namespace: "urn:truncated",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Extract(strings.NewReader(tc.content), KindSchema)
			assert.Equal(t, tc.outcome, res.Outcome, "reason: %s", res.Reason)
			assert.Equal(t, tc.namespace, res.Namespace)
			if tc.reason != "" {
				assert.Contains(t, res.Reason, tc.reason)
			}
			if res.Outcome != Extracted {
				assert.NotEmpty(t, res.Reason)
			}
		})
	}
}

// TestExtract_Classification covers the classification scheme rule chain
func TestExtract_Classification(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		outcome   Outcome
		namespace string
	}{
		{
			name:      "root ClassificationScheme",
			content:   `<ClassificationScheme xmlns="urn:tva:metadata:2019" uri="urn:tva:metadata:cs:GenreCS:2011"><Term termID="1"/></ClassificationScheme>`,
			outcome:   Extracted,
			namespace: "urn:tva:metadata:cs:GenreCS:2011",
		},
		{
			name:      "nested ClassificationScheme in any namespace",
			content:   `<Mpeg7 xmlns="urn:mpeg:mpeg7:schema:2001"><Description><ClassificationScheme uri=" urn:mpeg:mpeg7:cs:FileFormatCS:2001 "/></Description></Mpeg7>`,
			outcome:   Extracted,
			namespace: "urn:mpeg:mpeg7:cs:FileFormatCS:2001",
		},
		{
			name:    "ClassificationScheme without uri wins over root targetNamespace",
			content: `<root targetNamespace="urn:ignored"><ClassificationScheme/></root>`,
			outcome: NoNamespace,
		},
		{
			name:      "falls back to root targetNamespace",
			content:   `<TVAMain targetNamespace="urn:fallback"/>`,
			outcome:   Extracted,
			namespace: "urn:fallback",
		},
		{
			name:    "neither uri nor targetNamespace",
			content: `<TVAMain xmlns="urn:tva:metadata:2019"/>`,
			outcome: NoNamespace,
		},
		{
			name:    "no element at all",
			content: `just text`,
			outcome: Unrecognized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Extract(strings.NewReader(tc.content), KindClassification)
			assert.Equal(t, tc.outcome, res.Outcome, "reason: %s", res.Reason)
			assert.Equal(t, tc.namespace, res.Namespace)
		})
	}
}

func TestExtract_SchemaRulesIgnoreClassificationShape(t *testing.T) {
	res := Extract(strings.NewReader(`<ClassificationScheme uri="urn:cs"/>`), KindSchema)
	assert.Equal(t, Unrecognized, res.Outcome)
}

func TestExtract_UTF16Schema(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-16"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:u16"/>`
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(src)
	require.NoError(t, err)

	res := Extract(strings.NewReader(encoded), KindSchema)
	assert.Equal(t, Extracted, res.Outcome, "reason: %s", res.Reason)
	assert.Equal(t, "urn:u16", res.Namespace)
}

func TestExtract_UTF16Classification(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-16"?><ClassificationScheme uri="urn:cs:u16"/>`
	encoded, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().String(src)
	require.NoError(t, err)

	res := Extract(strings.NewReader(encoded), KindClassification)
	assert.Equal(t, Extracted, res.Outcome, "reason: %s", res.Reason)
	assert.Equal(t, "urn:cs:u16", res.Namespace)
}

func TestExtract_UnknownKind(t *testing.T) {
	res := Extract(strings.NewReader(`<schema targetNamespace="urn:x"/>`), Kind(42))
	assert.Equal(t, Unrecognized, res.Outcome)
	assert.Contains(t, res.Reason, "Kind(42)")
}

func TestUnreadable(t *testing.T) {
	res := Unreadable(errors.New("permission denied"))
	assert.Equal(t, Unrecognized, res.Outcome)
	assert.Contains(t, res.Reason, "permission denied")
	assert.False(t, res.OK())
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "schema", KindSchema.String())
	assert.Equal(t, "classification scheme", KindClassification.String())
	assert.Equal(t, "extracted", Extracted.String())
	assert.Equal(t, "no namespace", NoNamespace.String())
	assert.Equal(t, "unrecognized", Unrecognized.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
}
