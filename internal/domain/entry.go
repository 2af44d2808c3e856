package domain

import (
	"fmt"
	"path"
	"strings"
)

// Kind classifies an indexed symbol. The set is closed: it mirrors the
// page kinds rustdoc encodes in its filenames, serialized to the Dash
// entry-type vocabulary at the index boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindPackage
	KindModule
	KindConstant
	KindEnum
	KindFunction
	KindMacro
	KindTrait
	KindStruct
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindPackage:
		return "Package"
	case KindModule:
		return "Module"
	case KindConstant:
		return "Constant"
	case KindEnum:
		return "Enum"
	case KindFunction:
		return "Function"
	case KindMacro:
		return "Macro"
	case KindTrait:
		return "Trait"
	case KindStruct:
		return "Struct"
	case KindType:
		return "Type"
	default:
		return "Unknown"
	}
}

// kindTokens maps the first filename segment of a three-segment rustdoc
// page name to its kind. Tokens outside this table are skipped, never
// reported as errors.
var kindTokens = map[string]Kind{
	"const":  KindConstant,
	"enum":   KindEnum,
	"fn":     KindFunction,
	"macro":  KindMacro,
	"trait":  KindTrait,
	"struct": KindStruct,
	"type":   KindType,
}

// Entry is one indexed symbol: a qualified name, its kind, and the HTML
// page that documents it, relative to the doc root.
type Entry struct {
	Name string
	Kind Kind
	Path string
}

// ParseEntry recovers an Entry from a rustdoc filename. modPath is the
// module path of the directory holding the file; relPath is the file's
// path relative to the doc root. The second return is false for files
// that carry no indexable symbol (non-HTML files, unknown kind tokens,
// the root index page).
//
// The grammar is fixed by rustdoc's naming convention:
//
//	index.html            -> Module page (or the Package page at depth one)
//	<kind>.<ident>.html   -> item page, e.g. struct.Foo.html
func ParseEntry(modPath ModulePath, relPath string) (Entry, bool) {
	name := path.Base(relPath)
	if !strings.HasSuffix(name, ".html") {
		return Entry{}, false
	}

	parts := strings.Split(name, ".")
	switch len(parts) {
	case 2:
		if parts[0] != "index" {
			return Entry{}, false
		}
		switch {
		case modPath.IsEmpty():
			// The root index page has no module path to name it by.
			return Entry{}, false
		case modPath.IsPackageRoot():
			return Entry{Name: modPath.String(), Kind: KindPackage, Path: relPath}, true
		default:
			return Entry{Name: modPath.Qualify("index"), Kind: KindModule, Path: relPath}, true
		}
	case 3:
		kind, ok := kindTokens[parts[0]]
		if !ok {
			return Entry{}, false
		}
		if modPath.IsEmpty() {
			// rustdoc only emits item pages inside a package directory.
			panic(fmt.Sprintf("item page %q outside any module path", relPath))
		}
		return Entry{Name: modPath.Qualify(parts[1]), Kind: kind, Path: relPath}, true
	default:
		return Entry{}, false
	}
}
