// Package language 维护受支持语言的枚举标识与语法规则表。
// 扫描核心对表内容完全泛化：规则只作为只读数据被查询，
// 逐行扫描循环中不存在任何按语言分支的代码。
package language

import "sort"

// Language 是受支持语法的枚举标识。
// 每个值通过语法规则表携带自己的注释/引号规则，查表一次后在整个文件扫描期间不变。
type Language string

// Syntax 描述一种语言的全部词法规则常量。
// 所有字段在进程生命周期内只读。
type Syntax struct {
	// LineComments 是行注释起始标记集合，注释延伸到物理行末尾。
	LineComments []string
	// MultiLine 是块注释 (起始, 结束) 标记对集合，可为空。
	MultiLine [][2]string
	// Nested 表示块注释内部再次出现起始标记时是否增加嵌套深度。
	Nested bool
	// Quotes 是字符串/字符字面量 (开启, 闭合) 标记对集合。
	// 同为引号前缀的标记必须按“更长者在前”排列，保证最长匹配优先。
	Quotes [][2]string
	// DocQuotes 是文档字符串 (开启, 闭合) 标记对集合。
	// 匹配优先级高于 Quotes，以便三引号胜过单个引号。
	DocQuotes [][2]string
	// ColumnComments 表示注释识别依赖列位置（固定格式语言），
	// 匹配前不允许去除行首空白。
	ColumnComments bool
	// Blank 表示该语言没有注释语法，所有非处理行按代码计数。
	Blank bool

	// important 是预计算的“重要子串”集合，供快速路径粗筛。
	// 一行不含任何重要子串时可以跳过完整的字节窗口扫描。
	important []string
}

// ImportantSyntax 返回预计算的重要子串集合。
func (s *Syntax) ImportantSyntax() []string {
	return s.important
}

// compileImportant 预计算快速路径使用的重要子串。
// 覆盖：引号开启、文档引号开启、块注释起始与结束标记。
// 行注释标记不在其中：行注释不携带跨行状态，
// 快速路径自身的“行首行注释”检查已经足够。
func (s *Syntax) compileImportant() {
	seen := make(map[string]bool)
	add := func(marker string) {
		if marker == "" || seen[marker] {
			return
		}
		seen[marker] = true
		s.important = append(s.important, marker)
	}

	for _, pair := range s.Quotes {
		add(pair[0])
	}
	for _, pair := range s.DocQuotes {
		add(pair[0])
	}
	for _, pair := range s.MultiLine {
		add(pair[0])
		add(pair[1])
	}
}

// Syntax 返回该语言的语法规则；未知语言返回 nil。
func (l Language) Syntax() *Syntax {
	return syntaxTable[l]
}

// Descriptor 用于对外展示语言及后缀信息。
type Descriptor struct {
	Name       string
	Extensions []string
}

// Languages 返回已注册语言清单，按名称排序。
func Languages() []Descriptor {
	result := make([]Descriptor, 0, len(syntaxTable))
	for lang := range syntaxTable {
		result = append(result, Descriptor{
			Name:       string(lang),
			Extensions: ExtensionsFor(lang),
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ExtensionsFor 返回指定语言对应的全部后缀，按字典序排序。
func ExtensionsFor(lang Language) []string {
	var extensions []string
	for ext, candidate := range extensionTable {
		if candidate == lang {
			extensions = append(extensions, ext)
		}
	}
	sort.Strings(extensions)
	return extensions
}
