package doctree

// Bibliographic maps the field names a docinfo block recognizes to the
// labels translators print for them.
var Bibliographic = map[string]string{
	"author":       "Author",
	"authors":      "Authors",
	"organization": "Organization",
	"address":      "Address",
	"contact":      "Contact",
	"version":      "Version",
	"revision":     "Revision",
	"status":       "Status",
	"date":         "Date",
	"copyright":    "Copyright",
}
