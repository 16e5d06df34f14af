package ubl

import (
	"unicode/utf8"

	"github.com/beevik/etree"

	"github.com/rezonia/xrechnung/internal/model"
)

// indentSpaces is the indentation width of the rendered document.
const indentSpaces = 4

// Serialize renders the assembled element tree as a UTF-8 XML byte stream:
// the XML declaration followed by the root element with its namespace
// declarations and all children in the exact order they were assembled.
// Reserved characters in text and attribute values are escaped by etree.
func Serialize(doc *etree.Document) ([]byte, error) {
	root := doc.Root()
	if root == nil {
		return nil, model.NewEncodingError("document", "document has no root element")
	}
	if err := checkUTF8(root); err != nil {
		return nil, err
	}

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	out.AddChild(root.Copy())
	out.Indent(indentSpaces)

	return out.WriteToBytes()
}

// checkUTF8 walks the tree and rejects content that cannot be represented in
// the target encoding. Practically unreachable with validated input, but a
// torn byte sequence must fail the whole document rather than emit a partial
// or mangled one.
func checkUTF8(e *etree.Element) error {
	if !utf8.ValidString(e.Text()) {
		return model.NewEncodingError(e.FullTag(), "text is not valid UTF-8")
	}
	for _, attr := range e.Attr {
		if !utf8.ValidString(attr.Value) {
			return model.NewEncodingError(e.FullTag(), "attribute "+attr.Key+" is not valid UTF-8")
		}
	}
	for _, child := range e.ChildElements() {
		if err := checkUTF8(child); err != nil {
			return err
		}
	}
	return nil
}
