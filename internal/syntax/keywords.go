package syntax

// keywords is case-sensitive: each accepted spelling is listed explicitly.
var keywords = map[string]Kind{
	"Project":       ProjectKeyword,
	"project":       ProjectKeyword,
	"Table":         TableKeyword,
	"table":         TableKeyword,
	"enum":          EnumKeyword,
	"Enum":          EnumKeyword,
	"Ref":           RefKeyword,
	"ref":           RefKeyword,
	"indexes":       IndexesKeyword,
	"Indexes":       IndexesKeyword,
	"Note":          NoteKeyword,
	"note":          NoteKeyword,
	"as":            AsKeyword,
	"pk":            PkKeyword,
	"primary":       PrimaryKeyword,
	"key":           KeyKeyword,
	"null":          NullKeyword,
	"not":           NotKeyword,
	"unique":        UniqueKeyword,
	"increment":     IncrementKeyword,
	"default":       DefaultKeyword,
	"true":          TrueKeyword,
	"false":         FalseKeyword,
	"name":          NameKeyword,
	"type":          TypeKeyword,
	"database_type": DatabaseTypeKeyword,
	"delete":        DeleteKeyword,
	"update":        UpdateKeyword,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Регистр важен: "Note" и "note" перечислены явно, "NOTE": идентификатор.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// KeywordSpellings returns every accepted spelling of a keyword kind.
func KeywordSpellings(k Kind) []string {
	var out []string
	for text, kind := range keywords {
		if kind == k {
			out = append(out, text)
		}
	}
	return out
}
