package pamphlet

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, e *etree.Element) string {
	t.Helper()
	doc := etree.NewDocument()
	doc.SetRoot(e.Copy())
	s, err := doc.WriteToString()
	require.NoError(t, err)
	return s
}

func TestBuilder_Begin(t *testing.T) {
	b := New()
	banner := b.Begin("Release Notes for Derby 10.3.1.4", 1)
	AddParagraph(banner, "delta")

	root := b.Document().Root()
	require.NotNil(t, root)
	assert.Equal(t, "html", root.Tag)
	assert.Equal(t, "Release Notes for Derby 10.3.1.4", root.SelectElement("title").Text())

	body := b.Body()
	require.NotNil(t, body)
	children := body.ChildElements()
	require.Len(t, children, 2)
	assert.Equal(t, "h1", children[0].Tag)
	assert.Equal(t, "Release Notes for Derby 10.3.1.4", children[0].SelectElement("a").SelectAttrValue("name", ""))
	assert.Equal(t, "blockquote", children[1].Tag)
	assert.Equal(t, "delta", children[1].SelectElement("p").Text())
}

func TestBuilder_AddSection(t *testing.T) {
	b := New()
	b.Begin("T", 1)
	toc := b.AddTOC()

	block := b.AddSection(b.Body(), 2, "Overview", "", toc)
	AddParagraph(block, "hello")

	got, err := b.Section("Overview")
	require.NoError(t, err)
	assert.Same(t, block, got)

	items := toc.SelectElements("li")
	require.Len(t, items, 1)
	link := items[0].SelectElement("a")
	assert.Equal(t, "#Overview", link.SelectAttrValue("href", ""))
	assert.Equal(t, "Overview", link.Text())

	_, err = b.Section("Nope")
	assert.Error(t, err)
}

func TestBuilder_AddSection_MultipleTOCs(t *testing.T) {
	b := New()
	b.Begin("T", 1)
	master := b.AddTOC()
	sub := AddList(b.Body())

	b.AddSection(b.Body(), 3, "Note for A-1", "Note for A-1: summary", sub, master, nil)

	for _, toc := range []*etree.Element{master, sub} {
		items := toc.SelectElements("li")
		require.Len(t, items, 1)
		link := items[0].SelectElement("a")
		assert.Equal(t, "#Note for A-1", link.SelectAttrValue("href", ""))
		assert.Equal(t, "Note for A-1: summary", link.Text())
	}
	assert.NotNil(t, b.Body().SelectElement("h3"))
}

func TestAddTable(t *testing.T) {
	doc := etree.NewDocument()
	parent := doc.CreateElement("blockquote")

	table := AddTable(parent, 2, "Issue Id", "Description")
	row := AddRow(table)
	AddColumn(row).AddChild(NewLink("http://x/A-1", "A-1"))
	AddColumn(row).SetText("fix crash")

	assert.Equal(t,
		`<blockquote><table border="2"><tr><td><b>Issue Id</b></td><td><b>Description</b></td></tr>`+
			`<tr><td><a href="http://x/A-1">A-1</a></td><td>fix crash</td></tr></table></blockquote>`,
		render(t, parent))
}

func TestAddHeadlinedItem(t *testing.T) {
	doc := etree.NewDocument()
	list := AddList(doc.CreateElement("blockquote"))

	AddHeadlinedItem(list, "Machine", "Mac OS X")

	assert.Equal(t, `<ul><li><b>Machine</b> - Mac OS X</li></ul>`, render(t, list))
}

func TestAddLineAndLocalLink(t *testing.T) {
	doc := etree.NewDocument()
	parent := doc.CreateElement("div")
	AddLine(parent)
	AddListItem(AddList(parent), NewLocalLink("Issues", ""))

	assert.Equal(t, `<div><hr/><ul><li><a href="#Issues">Issues</a></li></ul></div>`, render(t, parent))
}

func TestHeaderTag(t *testing.T) {
	assert.Equal(t, "h1", HeaderTag(1))
	assert.Equal(t, "h3", HeaderTag(3))
}

func TestCloneChildren_DeepCopy(t *testing.T) {
	src := etree.NewDocument()
	require.NoError(t, src.ReadFromString(`<overview>Intro <b>bold</b><!-- c --><![CDATA[raw]]></overview>`))
	dst := etree.NewDocument()
	target := dst.CreateElement("blockquote")

	CloneChildren(src.Root(), target)

	require.Len(t, target.Child, len(src.Root().Child))
	for i, tok := range target.Child {
		assert.IsType(t, src.Root().Child[i], tok)
	}
	b := target.SelectElement("b")
	require.NotNil(t, b)
	assert.Equal(t, "bold", b.Text())

	// mutating the copy leaves the source untouched
	b.SetText("changed")
	assert.Equal(t, "bold", src.Root().SelectElement("b").Text())
}
