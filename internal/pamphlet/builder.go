// Package pamphlet builds the release notes HTML document.
//
// A Builder owns the output tree. Sections are created once and are only ever
// appended to; nothing already written is moved or removed.
package pamphlet

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// HTML tags and attributes used by the pamphlet.
const (
	tagHTML       = "html"
	tagTitle      = "title"
	tagBody       = "body"
	tagAnchor     = "a"
	tagBold       = "b"
	tagIndent     = "blockquote"
	tagList       = "ul"
	tagListItem   = "li"
	tagParagraph  = "p"
	tagTable      = "table"
	tagRow        = "tr"
	tagColumn     = "td"
	tagHorizontal = "hr"

	attrName   = "name"
	attrHref   = "href"
	attrBorder = "border"
)

// Builder assembles a pamphlet.
type Builder struct {
	doc      *etree.Document
	body     *etree.Element
	toc      *etree.Element
	sections map[string]*etree.Element
}

// New creates an empty pamphlet.
func New() *Builder {
	return &Builder{
		doc:      etree.NewDocument(),
		sections: make(map[string]*etree.Element),
	}
}

// Begin creates the html, title and body elements and the banner heading.
// It returns the indented block that follows the banner.
func (b *Builder) Begin(title string, bannerLevel int) *etree.Element {
	html := b.doc.CreateElement(tagHTML)
	html.CreateElement(tagTitle).SetText(title)
	b.body = html.CreateElement(tagBody)
	return b.header(b.body, bannerLevel, title)
}

// AddTOC appends the master table of contents to the body.
func (b *Builder) AddTOC() *etree.Element {
	b.toc = AddList(b.body)
	return b.toc
}

// Body returns the body element, or nil before Begin.
func (b *Builder) Body() *etree.Element {
	return b.body
}

// TOC returns the master table of contents, or nil before AddTOC.
func (b *Builder) TOC() *etree.Element {
	return b.toc
}

// Document returns the tree being built.
func (b *Builder) Document() *etree.Document {
	return b.doc
}

// AddSection appends a header named name to parent and links to it from each
// of the given tables of contents. caption is the link text; an empty caption
// uses the section name. It returns the block that holds the section content.
func (b *Builder) AddSection(parent *etree.Element, level int, name, caption string, tocs ...*etree.Element) *etree.Element {
	for _, toc := range tocs {
		if toc == nil {
			continue
		}
		AddListItem(toc, NewLocalLink(name, caption))
	}
	block := b.header(parent, level, name)
	b.sections[name] = block
	return block
}

// Section returns the content block of a section created by AddSection.
func (b *Builder) Section(name string) (*etree.Element, error) {
	block, ok := b.sections[name]
	if !ok {
		return nil, fmt.Errorf("pamphlet has no section %q", name)
	}
	return block, nil
}

// header appends <hN><a name="text"/>text</hN><blockquote/> to parent and
// returns the blockquote.
func (b *Builder) header(parent *etree.Element, level int, text string) *etree.Element {
	h := parent.CreateElement(HeaderTag(level))
	h.CreateElement(tagAnchor).CreateAttr(attrName, text)
	h.CreateText(text)
	return parent.CreateElement(tagIndent)
}

// HeaderTag returns the tag of a header at the given level.
func HeaderTag(level int) string {
	return "h" + strconv.Itoa(level)
}

// NewLink creates a detached hyperlink.
func NewLink(href, text string) *etree.Element {
	link := etree.NewElement(tagAnchor)
	link.CreateAttr(attrHref, href)
	link.SetText(text)
	return link
}

// NewLocalLink creates a detached link to a named anchor in the pamphlet.
func NewLocalLink(anchor, text string) *etree.Element {
	if text == "" {
		text = anchor
	}
	return NewLink("#"+anchor, text)
}

// AddParagraph appends a paragraph of text.
func AddParagraph(parent *etree.Element, text string) *etree.Element {
	p := parent.CreateElement(tagParagraph)
	p.SetText(text)
	return p
}

// AddList appends an empty bulleted list.
func AddList(parent *etree.Element) *etree.Element {
	return parent.CreateElement(tagList)
}

// AddListItem appends an item holding tok to list.
func AddListItem(list *etree.Element, tok etree.Token) *etree.Element {
	li := list.CreateElement(tagListItem)
	li.AddChild(tok)
	return li
}

// AddHeadlinedItem appends an item made of a bold headline and " - text".
func AddHeadlinedItem(list *etree.Element, headline, text string) *etree.Element {
	li := list.CreateElement(tagListItem)
	li.CreateElement(tagBold).SetText(headline)
	li.CreateText(" - " + text)
	return li
}

// AddTable appends a table whose first row holds the bold headings.
func AddTable(parent *etree.Element, border int, headings ...string) *etree.Element {
	table := parent.CreateElement(tagTable)
	table.CreateAttr(attrBorder, strconv.Itoa(border))
	row := AddRow(table)
	for _, heading := range headings {
		AddColumn(row).CreateElement(tagBold).SetText(heading)
	}
	return table
}

// AddRow appends a row to a table.
func AddRow(table *etree.Element) *etree.Element {
	return table.CreateElement(tagRow)
}

// AddColumn appends a cell to a row.
func AddColumn(row *etree.Element) *etree.Element {
	return row.CreateElement(tagColumn)
}

// AddLine appends a horizontal rule.
func AddLine(parent *etree.Element) *etree.Element {
	return parent.CreateElement(tagHorizontal)
}

// CloneChildren deep-copies every child node of source and appends the copies
// to target.
func CloneChildren(source, target *etree.Element) {
	for _, tok := range source.Child {
		if cp := copyToken(tok); cp != nil {
			target.AddChild(cp)
		}
	}
}

func copyToken(tok etree.Token) etree.Token {
	switch t := tok.(type) {
	case *etree.Element:
		return t.Copy()
	case *etree.CharData:
		if t.IsCData() {
			return etree.NewCData(t.Data)
		}
		return etree.NewText(t.Data)
	case *etree.Comment:
		return etree.NewComment(t.Data)
	case *etree.ProcInst:
		return etree.NewProcInst(t.Target, t.Inst)
	case *etree.Directive:
		return etree.NewDirective(t.Data)
	default:
		return nil
	}
}
