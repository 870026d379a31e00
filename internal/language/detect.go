package language

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// extensionTable 是文件后缀到语言的映射表。
// 后缀统一使用小写并带点号。
var extensionTable = map[string]Language{
	".bat":   Batch,
	".cmd":   Batch,
	".c":     C,
	".ec":    C,
	".h":     CHeader,
	".css":   CSS,
	".cs":    CSharp,
	".clj":   Clojure,
	".cljs":  Clojure,
	".cc":    Cpp,
	".cpp":   Cpp,
	".cxx":   Cpp,
	".c++":   Cpp,
	".hh":    CppHeader,
	".hpp":   CppHeader,
	".hxx":   CppHeader,
	".d":     D,
	".ex":    Elixir,
	".exs":   Elixir,
	".erl":   Erlang,
	".hrl":   Erlang,
	".f":     FortranLegacy,
	".for":   FortranLegacy,
	".f77":   FortranLegacy,
	".f90":   FortranModern,
	".f95":   FortranModern,
	".f03":   FortranModern,
	".f08":   FortranModern,
	".go":    Go,
	".html":  HTML,
	".htm":   HTML,
	".hs":    Haskell,
	".json":  JSON,
	".java":  Java,
	".js":    JavaScript,
	".mjs":   JavaScript,
	".cjs":   JavaScript,
	".jsx":   Jsx,
	".jl":    Julia,
	".kt":    Kotlin,
	".kts":   Kotlin,
	".lisp":  Lisp,
	".lsp":   Lisp,
	".el":    Lisp,
	".lua":   Lua,
	".mk":    Makefile,
	".md":    Markdown,
	".nim":   Nim,
	".ml":    OCaml,
	".mli":   OCaml,
	".php":   PHP,
	".pas":   Pascal,
	".pl":    Perl,
	".pm":    Perl,
	".ps1":   PowerShell,
	".psm1":  PowerShell,
	".proto": Protobuf,
	".py":    Python,
	".pyi":   Python,
	".r":     R,
	".rb":    Ruby,
	".rs":    Rust,
	".sql":   SQL,
	".scala": Scala,
	".scss":  Scss,
	".sh":    Shell,
	".bash":  Shell,
	".zsh":   Shell,
	".swift": Swift,
	".toml":  TOML,
	".txt":   Text,
	".tsx":   Tsx,
	".ts":    TypeScript,
	".vim":   VimScript,
	".xml":   XML,
	".yml":   YAML,
	".yaml":  YAML,
	".zig":   Zig,
}

// filenameTable 处理没有后缀但文件名本身有含义的情况。
var filenameTable = map[string]Language{
	"makefile":    Makefile,
	"gnumakefile": Makefile,
	"dockerfile":  Dockerfile,
}

// shebangTable 是解释器名到语言的映射，用于无后缀脚本的嗅探。
var shebangTable = map[string]Language{
	"bash":    Shell,
	"sh":      Shell,
	"zsh":     Shell,
	"python":  Python,
	"python3": Python,
	"perl":    Perl,
	"ruby":    Ruby,
	"node":    JavaScript,
	"lua":     Lua,
	"Rscript": R,
	"pwsh":    PowerShell,
}

// DetectPath 只依据路径（后缀或文件名）判断语言。
func DetectPath(path string) (Language, bool) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != "" {
		lang, ok := extensionTable[ext]
		return lang, ok
	}

	lang, ok := filenameTable[strings.ToLower(filepath.Base(path))]
	return lang, ok
}

// DetectFile 判断文件语言。
// 路径判断失败且文件无后缀时，回退到读取首行做 shebang 嗅探，
// 保证常见情况不产生额外 I/O。
func DetectFile(path string) (Language, bool) {
	if lang, ok := DetectPath(path); ok {
		return lang, true
	}
	if filepath.Ext(path) != "" {
		return "", false
	}
	return detectShebang(path)
}

// detectShebang 读取文件首行并解析 #! 解释器名。
// 兼容 #!/usr/bin/env python 形式。
func detectShebang(path string) (Language, bool) {
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	reader := bufio.NewReaderSize(file, 128)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}

	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "#!") {
		return "", false
	}

	fields := strings.Fields(line[2:])
	if len(fields) == 0 {
		return "", false
	}

	interpreter := filepath.Base(fields[0])
	if interpreter == "env" && len(fields) > 1 {
		interpreter = fields[1]
	}

	lang, ok := shebangTable[interpreter]
	return lang, ok
}
