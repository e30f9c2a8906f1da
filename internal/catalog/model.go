package catalog

// Entry maps a namespace (or classification scheme URI) to a file
// relative to the enclosing group's base.
type Entry struct {
	Name string `xml:"name,attr"`
	URI  string `xml:"uri,attr"`
}
