// Package nuspec implements reading and rewriting nuspec manifests with etree.
package nuspec

import (
	"bytes"
	"errors"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"go.trai.ch/nupin/internal/core/domain"
	"go.trai.ch/nupin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/net/html/charset"
)

var _ ports.ManifestEditor = (*Editor)(nil)

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}

	encodingDecl = regexp.MustCompile(`encoding\s*=\s*("[^"]*"|'[^']*')`)
)

// Editor implements ports.ManifestEditor.
//
// Serialization keeps comments, processing instructions, attribute order and whitespace.
// Self-closing tags and character escapes may be normalized by the writer.
type Editor struct{}

// NewEditor creates a new Editor.
func NewEditor() *Editor {
	return &Editor{}
}

// Pin rewrites every nuspec dependency whose id is in ids to an exact version.
func (e *Editor) Pin(manifest []byte, ids []string) ([]byte, []domain.PinnedDependency, error) {
	doc, bom, err := parse(manifest)
	if err != nil {
		return nil, nil, err
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var pinned []domain.PinnedDependency
	for _, el := range dependencyElements(doc) {
		id := attrValue(el, "id")
		if !wanted[id] {
			continue
		}

		version, ok := attr(el, "version")
		if !ok {
			detail := zerr.With(zerr.New("dependency has no version attribute"), "dependency", id)
			return nil, nil, errors.Join(domain.ErrInvalidConstraint, detail)
		}

		exact, ok := domain.PinVersion(version.Value)
		if !ok {
			detail := zerr.With(zerr.New("version is not a single version"), "dependency", id)
			detail = zerr.With(detail, "version", version.Value)
			return nil, nil, errors.Join(domain.ErrInvalidConstraint, detail)
		}

		pinned = append(pinned, domain.PinnedDependency{
			ID:              id,
			TargetFramework: targetFramework(el),
			Previous:        version.Value,
			Pinned:          exact,
		})
		version.Value = exact
	}

	if len(pinned) == 0 {
		return manifest, nil, nil
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, nil, errors.Join(domain.ErrManifestWriteFailed, err)
	}
	if bom {
		out = append(bytes.Clone(utf8BOM), out...)
	}
	return out, pinned, nil
}

// Dependencies lists every nuspec dependency element in document order.
func (e *Editor) Dependencies(manifest []byte) ([]domain.Dependency, error) {
	doc, _, err := parse(manifest)
	if err != nil {
		return nil, err
	}

	elements := dependencyElements(doc)
	deps := make([]domain.Dependency, 0, len(elements))
	for _, el := range elements {
		deps = append(deps, domain.Dependency{
			ID:              attrValue(el, "id"),
			Version:         attrValue(el, "version"),
			TargetFramework: targetFramework(el),
		})
	}
	return deps, nil
}

func parse(manifest []byte) (*etree.Document, bool, error) {
	data, bom := bytes.CutPrefix(manifest, utf8BOM)

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, false, errors.Join(domain.ErrManifestParseFailed, err)
	}
	if doc.Root() == nil {
		return nil, false, errors.Join(domain.ErrManifestParseFailed, zerr.New("manifest has no root element"))
	}

	normalizeDeclaration(doc)
	return doc, bom, nil
}

// normalizeDeclaration rewrites a non-UTF-8 encoding declaration, since the tree is
// always written back as UTF-8.
func normalizeDeclaration(doc *etree.Document) {
	for _, tok := range doc.Child {
		pi, ok := tok.(*etree.ProcInst)
		if !ok || pi.Target != "xml" {
			continue
		}
		m := encodingDecl.FindStringSubmatch(pi.Inst)
		if m == nil {
			return
		}
		if label := strings.Trim(m[1], `"'`); !strings.EqualFold(label, "utf-8") {
			pi.Inst = encodingDecl.ReplaceAllString(pi.Inst, `encoding="utf-8"`)
		}
		return
	}
}

// dependencyElements returns every <dependency> element bound to a nuspec namespace.
// Elements with the same local name in any other namespace, or in none, are skipped.
func dependencyElements(doc *etree.Document) []*etree.Element {
	var out []*etree.Element
	for _, el := range doc.FindElements("//dependency") {
		if domain.IsNuspecNamespace(el.NamespaceURI()) {
			out = append(out, el)
		}
	}
	return out
}

// attr returns the unqualified attribute named key.
func attr(el *etree.Element, key string) (*etree.Attr, bool) {
	for i := range el.Attr {
		if el.Attr[i].Space == "" && el.Attr[i].Key == key {
			return &el.Attr[i], true
		}
	}
	return nil, false
}

func attrValue(el *etree.Element, key string) string {
	if a, ok := attr(el, key); ok {
		return a.Value
	}
	return ""
}

func targetFramework(el *etree.Element) string {
	parent := el.Parent()
	if parent == nil || parent.Tag != "group" {
		return ""
	}
	return attrValue(parent, "targetFramework")
}
