package doctree

import "fmt"

// Visitor receives one Visit/Depart call pair per node kind. Visit may
// return SkipChildren to skip both the children and the matching Depart.
type Visitor interface {
	VisitDocument(node *Node) WalkStatus
	DepartDocument(node *Node)
	VisitSection(node *Node) WalkStatus
	DepartSection(node *Node)
	VisitTitle(node *Node) WalkStatus
	DepartTitle(node *Node)
	VisitParagraph(node *Node) WalkStatus
	DepartParagraph(node *Node)
	VisitText(node *Node) WalkStatus
	DepartText(node *Node)
	VisitEmphasis(node *Node) WalkStatus
	DepartEmphasis(node *Node)
	VisitStrong(node *Node) WalkStatus
	DepartStrong(node *Node)
	VisitStrikethrough(node *Node) WalkStatus
	DepartStrikethrough(node *Node)
	VisitLiteral(node *Node) WalkStatus
	DepartLiteral(node *Node)
	VisitReference(node *Node) WalkStatus
	DepartReference(node *Node)
	VisitImage(node *Node) WalkStatus
	DepartImage(node *Node)
	VisitRaw(node *Node) WalkStatus
	DepartRaw(node *Node)
	VisitLineBreak(node *Node) WalkStatus
	DepartLineBreak(node *Node)
	VisitBulletList(node *Node) WalkStatus
	DepartBulletList(node *Node)
	VisitEnumeratedList(node *Node) WalkStatus
	DepartEnumeratedList(node *Node)
	VisitListItem(node *Node) WalkStatus
	DepartListItem(node *Node)
	VisitDefinitionList(node *Node) WalkStatus
	DepartDefinitionList(node *Node)
	VisitDefinitionListItem(node *Node) WalkStatus
	DepartDefinitionListItem(node *Node)
	VisitTerm(node *Node) WalkStatus
	DepartTerm(node *Node)
	VisitDefinition(node *Node) WalkStatus
	DepartDefinition(node *Node)
	VisitBlockQuote(node *Node) WalkStatus
	DepartBlockQuote(node *Node)
	VisitLiteralBlock(node *Node) WalkStatus
	DepartLiteralBlock(node *Node)
	VisitTransition(node *Node) WalkStatus
	DepartTransition(node *Node)
	VisitTable(node *Node) WalkStatus
	DepartTable(node *Node)
	VisitTGroup(node *Node) WalkStatus
	DepartTGroup(node *Node)
	VisitColSpec(node *Node) WalkStatus
	DepartColSpec(node *Node)
	VisitTHead(node *Node) WalkStatus
	DepartTHead(node *Node)
	VisitTBody(node *Node) WalkStatus
	DepartTBody(node *Node)
	VisitRow(node *Node) WalkStatus
	DepartRow(node *Node)
	VisitEntry(node *Node) WalkStatus
	DepartEntry(node *Node)
	VisitFieldList(node *Node) WalkStatus
	DepartFieldList(node *Node)
	VisitField(node *Node) WalkStatus
	DepartField(node *Node)
	VisitFieldName(node *Node) WalkStatus
	DepartFieldName(node *Node)
	VisitFieldBody(node *Node) WalkStatus
	DepartFieldBody(node *Node)
	VisitDocInfo(node *Node) WalkStatus
	DepartDocInfo(node *Node)
	VisitDocInfoItem(node *Node) WalkStatus
	DepartDocInfoItem(node *Node)
}

// Dispatch routes a single walk event to the Visit or Depart method that
// matches the node kind.
func Dispatch(v Visitor, node *Node, entering bool) WalkStatus {
	if !entering {
		depart(v, node)
		return GoToNext
	}
	switch node.Type {
	case Document:
		return v.VisitDocument(node)
	case Section:
		return v.VisitSection(node)
	case Title:
		return v.VisitTitle(node)
	case Paragraph:
		return v.VisitParagraph(node)
	case Text:
		return v.VisitText(node)
	case Emphasis:
		return v.VisitEmphasis(node)
	case Strong:
		return v.VisitStrong(node)
	case Strikethrough:
		return v.VisitStrikethrough(node)
	case Literal:
		return v.VisitLiteral(node)
	case Reference:
		return v.VisitReference(node)
	case Image:
		return v.VisitImage(node)
	case Raw:
		return v.VisitRaw(node)
	case LineBreak:
		return v.VisitLineBreak(node)
	case BulletList:
		return v.VisitBulletList(node)
	case EnumeratedList:
		return v.VisitEnumeratedList(node)
	case ListItem:
		return v.VisitListItem(node)
	case DefinitionList:
		return v.VisitDefinitionList(node)
	case DefinitionListItem:
		return v.VisitDefinitionListItem(node)
	case Term:
		return v.VisitTerm(node)
	case Definition:
		return v.VisitDefinition(node)
	case BlockQuote:
		return v.VisitBlockQuote(node)
	case LiteralBlock:
		return v.VisitLiteralBlock(node)
	case Transition:
		return v.VisitTransition(node)
	case Table:
		return v.VisitTable(node)
	case TGroup:
		return v.VisitTGroup(node)
	case ColSpec:
		return v.VisitColSpec(node)
	case THead:
		return v.VisitTHead(node)
	case TBody:
		return v.VisitTBody(node)
	case Row:
		return v.VisitRow(node)
	case Entry:
		return v.VisitEntry(node)
	case FieldList:
		return v.VisitFieldList(node)
	case Field:
		return v.VisitField(node)
	case FieldName:
		return v.VisitFieldName(node)
	case FieldBody:
		return v.VisitFieldBody(node)
	case DocInfo:
		return v.VisitDocInfo(node)
	case DocInfoItem:
		return v.VisitDocInfoItem(node)
	}
	panic(fmt.Sprintf("doctree: unknown node type %d", int(node.Type)))
}

func depart(v Visitor, node *Node) {
	switch node.Type {
	case Document:
		v.DepartDocument(node)
	case Section:
		v.DepartSection(node)
	case Title:
		v.DepartTitle(node)
	case Paragraph:
		v.DepartParagraph(node)
	case Text:
		v.DepartText(node)
	case Emphasis:
		v.DepartEmphasis(node)
	case Strong:
		v.DepartStrong(node)
	case Strikethrough:
		v.DepartStrikethrough(node)
	case Literal:
		v.DepartLiteral(node)
	case Reference:
		v.DepartReference(node)
	case Image:
		v.DepartImage(node)
	case Raw:
		v.DepartRaw(node)
	case LineBreak:
		v.DepartLineBreak(node)
	case BulletList:
		v.DepartBulletList(node)
	case EnumeratedList:
		v.DepartEnumeratedList(node)
	case ListItem:
		v.DepartListItem(node)
	case DefinitionList:
		v.DepartDefinitionList(node)
	case DefinitionListItem:
		v.DepartDefinitionListItem(node)
	case Term:
		v.DepartTerm(node)
	case Definition:
		v.DepartDefinition(node)
	case BlockQuote:
		v.DepartBlockQuote(node)
	case LiteralBlock:
		v.DepartLiteralBlock(node)
	case Transition:
		v.DepartTransition(node)
	case Table:
		v.DepartTable(node)
	case TGroup:
		v.DepartTGroup(node)
	case ColSpec:
		v.DepartColSpec(node)
	case THead:
		v.DepartTHead(node)
	case TBody:
		v.DepartTBody(node)
	case Row:
		v.DepartRow(node)
	case Entry:
		v.DepartEntry(node)
	case FieldList:
		v.DepartFieldList(node)
	case Field:
		v.DepartField(node)
	case FieldName:
		v.DepartFieldName(node)
	case FieldBody:
		v.DepartFieldBody(node)
	case DocInfo:
		v.DepartDocInfo(node)
	case DocInfoItem:
		v.DepartDocInfoItem(node)
	default:
		panic(fmt.Sprintf("doctree: unknown node type %d", int(node.Type)))
	}
}

// WalkAbout traverses the tree rooted at root, calling v for every node.
func WalkAbout(root *Node, v Visitor) {
	root.Walk(func(node *Node, entering bool) WalkStatus {
		return Dispatch(v, node, entering)
	})
}
