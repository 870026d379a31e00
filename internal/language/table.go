package language

// 语言枚举值。名称同时用于输出展示。
const (
	Batch         Language = "Batch"
	C             Language = "C"
	CHeader       Language = "C Header"
	CSS           Language = "CSS"
	CSharp        Language = "C#"
	Clojure       Language = "Clojure"
	Cpp           Language = "C++"
	CppHeader     Language = "C++ Header"
	D             Language = "D"
	Dockerfile    Language = "Dockerfile"
	Elixir        Language = "Elixir"
	Erlang        Language = "Erlang"
	FortranLegacy Language = "FORTRAN Legacy"
	FortranModern Language = "FORTRAN Modern"
	Go            Language = "Go"
	HTML          Language = "HTML"
	Haskell       Language = "Haskell"
	JSON          Language = "JSON"
	Java          Language = "Java"
	JavaScript    Language = "JavaScript"
	Jsx           Language = "JSX"
	Julia         Language = "Julia"
	Kotlin        Language = "Kotlin"
	Lisp          Language = "Lisp"
	Lua           Language = "Lua"
	Makefile      Language = "Makefile"
	Markdown      Language = "Markdown"
	Nim           Language = "Nim"
	OCaml         Language = "OCaml"
	PHP           Language = "PHP"
	Pascal        Language = "Pascal"
	Perl          Language = "Perl"
	PowerShell    Language = "PowerShell"
	Protobuf      Language = "Protocol Buffers"
	Python        Language = "Python"
	R             Language = "R"
	Ruby          Language = "Ruby"
	Rust          Language = "Rust"
	SQL           Language = "SQL"
	Scala         Language = "Scala"
	Scss          Language = "SCSS"
	Shell         Language = "Shell"
	Swift         Language = "Swift"
	TOML          Language = "TOML"
	Text          Language = "Text"
	Tsx           Language = "TSX"
	TypeScript    Language = "TypeScript"
	VimScript     Language = "Vim Script"
	XML           Language = "XML"
	YAML          Language = "YAML"
	Zig           Language = "Zig"
)

// 常用标记对，减少表内重复书写。
var (
	cComment    = [][2]string{{"/*", "*/"}}
	doubleQuote = [][2]string{{`"`, `"`}}
	bothQuotes  = [][2]string{{`"`, `"`}, {`'`, `'`}}
	hashLine    = []string{"#"}
	slashLine   = []string{"//"}
)

// syntaxTable 是语言标识到语法规则的不可变映射。
// 规则内容手工整理自各语言的词法规范，init 阶段统一预计算重要子串。
var syntaxTable = map[Language]*Syntax{
	Batch: {
		LineComments: []string{"REM", "rem", "::"},
	},
	C: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       doubleQuote,
	},
	CHeader: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       doubleQuote,
	},
	CSS: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       bothQuotes,
	},
	CSharp: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       doubleQuote,
	},
	Clojure: {
		LineComments: []string{";"},
		Quotes:       doubleQuote,
	},
	Cpp: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       doubleQuote,
	},
	CppHeader: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       doubleQuote,
	},
	D: {
		LineComments: slashLine,
		MultiLine:    [][2]string{{"/*", "*/"}, {"/+", "+/"}},
		Nested:       true,
		Quotes:       doubleQuote,
	},
	Dockerfile: {
		LineComments: hashLine,
		Quotes:       bothQuotes,
	},
	Elixir: {
		LineComments: hashLine,
		Quotes:       bothQuotes,
		DocQuotes:    [][2]string{{`"""`, `"""`}},
	},
	Erlang: {
		LineComments: []string{"%"},
		Quotes:       doubleQuote,
	},
	// FORTRAN 固定格式：注释标记必须出现在第 1 列。
	FortranLegacy: {
		LineComments:   []string{"c", "C", "!", "*"},
		Quotes:         bothQuotes,
		ColumnComments: true,
	},
	FortranModern: {
		LineComments: []string{"!"},
		Quotes:       bothQuotes,
	},
	Go: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       [][2]string{{`"`, `"`}, {"`", "`"}},
	},
	HTML: {
		MultiLine: [][2]string{{"<!--", "-->"}},
		Quotes:    bothQuotes,
	},
	Haskell: {
		LineComments: []string{"--"},
		MultiLine:    [][2]string{{"{-", "-}"}},
		Nested:       true,
		Quotes:       doubleQuote,
	},
	JSON: {
		Blank: true,
	},
	Java: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       doubleQuote,
	},
	JavaScript: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       [][2]string{{`"`, `"`}, {`'`, `'`}, {"`", "`"}},
	},
	Jsx: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       [][2]string{{`"`, `"`}, {`'`, `'`}, {"`", "`"}},
	},
	Julia: {
		LineComments: hashLine,
		MultiLine:    [][2]string{{"#=", "=#"}},
		Nested:       true,
		Quotes:       doubleQuote,
		DocQuotes:    [][2]string{{`"""`, `"""`}},
	},
	Kotlin: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Nested:       true,
		Quotes:       doubleQuote,
	},
	Lisp: {
		LineComments: []string{";"},
		MultiLine:    [][2]string{{"#|", "|#"}},
		Nested:       true,
		Quotes:       doubleQuote,
	},
	Lua: {
		LineComments: []string{"--"},
		MultiLine:    [][2]string{{"--[[", "]]"}},
		Quotes:       bothQuotes,
	},
	Makefile: {
		LineComments: hashLine,
		Quotes:       bothQuotes,
	},
	Markdown: {
		Blank: true,
	},
	Nim: {
		LineComments: hashLine,
		Quotes:       doubleQuote,
	},
	OCaml: {
		MultiLine: [][2]string{{"(*", "*)"}},
		Nested:    true,
		Quotes:    doubleQuote,
	},
	PHP: {
		LineComments: []string{"#", "//"},
		MultiLine:    cComment,
		Quotes:       bothQuotes,
	},
	Pascal: {
		LineComments: slashLine,
		MultiLine:    [][2]string{{"{", "}"}, {"(*", "*)"}},
		Quotes:       [][2]string{{`'`, `'`}},
	},
	Perl: {
		LineComments: hashLine,
		MultiLine:    [][2]string{{"=pod", "=cut"}},
		Quotes:       bothQuotes,
	},
	PowerShell: {
		LineComments: hashLine,
		MultiLine:    [][2]string{{"<#", "#>"}},
		Quotes:       bothQuotes,
	},
	Protobuf: {
		LineComments: slashLine,
		Quotes:       doubleQuote,
	},
	Python: {
		LineComments: hashLine,
		Quotes:       bothQuotes,
		DocQuotes:    [][2]string{{`"""`, `"""`}, {"'''", "'''"}},
	},
	R: {
		LineComments: hashLine,
		Quotes:       bothQuotes,
	},
	Ruby: {
		LineComments: hashLine,
		MultiLine:    [][2]string{{"=begin", "=end"}},
		Quotes:       bothQuotes,
	},
	Rust: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Nested:       true,
		Quotes:       doubleQuote,
	},
	SQL: {
		LineComments: []string{"--"},
		MultiLine:    cComment,
		Quotes:       [][2]string{{`'`, `'`}},
	},
	Scala: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       doubleQuote,
	},
	Scss: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       bothQuotes,
	},
	Shell: {
		LineComments: hashLine,
		Quotes:       bothQuotes,
	},
	Swift: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Nested:       true,
		Quotes:       doubleQuote,
	},
	TOML: {
		LineComments: hashLine,
		Quotes:       bothQuotes,
	},
	Text: {
		Blank: true,
	},
	Tsx: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       [][2]string{{`"`, `"`}, {`'`, `'`}, {"`", "`"}},
	},
	TypeScript: {
		LineComments: slashLine,
		MultiLine:    cComment,
		Quotes:       [][2]string{{`"`, `"`}, {`'`, `'`}, {"`", "`"}},
	},
	VimScript: {
		LineComments: []string{`"`},
		Quotes:       [][2]string{{`'`, `'`}},
	},
	XML: {
		MultiLine: [][2]string{{"<!--", "-->"}},
		Quotes:    bothQuotes,
	},
	YAML: {
		LineComments: hashLine,
		Quotes:       bothQuotes,
	},
	Zig: {
		LineComments: slashLine,
		Quotes:       doubleQuote,
	},
}

func init() {
	for _, syntax := range syntaxTable {
		syntax.compileImportant()
	}
}
