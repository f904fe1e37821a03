package reader

import (
	"github.com/sirupsen/logrus"

	"github.com/russross/cleanhtml/doctree"
)

// promoteTitle lifts the title of a document consisting of exactly one
// top-level section into the document itself.
func promoteTitle(doc *doctree.Node) bool {
	section := doc.FirstChild
	if section == nil || section.Next != nil || section.Type != doctree.Section {
		return false
	}
	doc.IDs = append(doc.IDs, section.IDs...)
	doc.Names = append(doc.Names, section.Names...)
	doc.Classes = append(doc.Classes, section.Classes...)
	section.Unlink()
	for _, child := range section.Children() {
		doc.AppendChild(child)
	}
	logrus.Debugf("reader: promoted %q to document title", doc.FirstChild.AsText())
	return true
}

// buildDocinfo turns a field list that opens the document (after the title,
// if any) into a docinfo block. Bibliographic fields whose body is a single
// paragraph become labelled items; every other field is kept as is.
func buildDocinfo(doc *doctree.Node) bool {
	candidate := doc.FirstChild
	if candidate != nil && candidate.Type == doctree.Title {
		candidate = candidate.Next
	}
	if candidate == nil || candidate.Type != doctree.FieldList {
		return false
	}

	docinfo := doctree.NewNode(doctree.DocInfo)
	for _, field := range candidate.Children() {
		name := field.FirstChild
		body := field.LastChild
		label := normalizeName(name.AsText())
		_, known := doctree.Bibliographic[label]
		if !known || body.Len() != 1 || body.FirstChild.Type != doctree.Paragraph {
			field.AddClass(label)
			docinfo.AppendChild(field)
			continue
		}
		item := doctree.NewNode(doctree.DocInfoItem)
		item.Label = label
		for _, child := range body.FirstChild.Children() {
			item.AppendChild(child)
		}
		docinfo.AppendChild(item)
	}
	candidate.InsertBefore(docinfo)
	candidate.Unlink()
	if docinfo.FirstChild == nil {
		docinfo.Unlink()
		return false
	}
	return true
}
