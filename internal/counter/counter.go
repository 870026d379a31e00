package counter

import (
	"bytes"
	"fmt"
	"os"

	"locmeter/internal/language"
	"locmeter/internal/model"
)

// Counter 将一种语言的语法规则与配置绑定成可复用的统计器。
// Counter 本身无状态，可安全地被多个文件复用；
// 跨行扫描状态在每次 Parse 调用内部独立创建。
type Counter struct {
	lang                 language.Language
	syntax               *language.Syntax
	docStringsAsComments bool
}

// New 创建统计器。
// docStringsAsComments 为三态配置：只有显式 true 才把文档字符串按注释分类。
func New(lang language.Language, docStringsAsComments *bool) (*Counter, error) {
	syntax := lang.Syntax()
	if syntax == nil {
		return nil, fmt.Errorf("unknown language: %s", lang)
	}

	return &Counter{
		lang:                 lang,
		syntax:               syntax,
		docStringsAsComments: docStringsAsComments != nil && *docStringsAsComments,
	}, nil
}

// Language 返回该统计器绑定的语言标识。
func (c *Counter) Language() language.Language {
	return c.lang
}

// CountFile 读取整个文件并返回按路径标识构造的统计结果。
// 读取失败时返回携带路径的 *SourceError，不产生部分结果。
func (c *Counter) CountFile(path string) (*model.Stats, error) {
	stats := model.NewStats(path, string(c.lang))
	if err := c.ParseFile(path, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ParseFile 读取文件字节并驱动汇总接收器。
func (c *Counter) ParseFile(path string, summary Summary) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return &SourceError{Path: path, Err: err}
	}

	c.ParseBytes(text, summary)
	return nil
}

// ParseString 统计内存中的文本。
func (c *Counter) ParseString(text string, summary Summary) {
	c.ParseBytes([]byte(text), summary)
}

// ParseBytes 统计内存中的字节序列。
// 对任意字节输入都是全函数：未闭合的引号或块注释不会报错，
// 剩余行按“仍在未闭合结构内”分类。
func (c *Counter) ParseBytes(text []byte, summary Summary) {
	// 无注释语法的语言整体走一条直通路径，所有内容行按代码计数。
	if c.syntax.Blank {
		summary.UnprocessedLines(countLines(text))
		summary.Postprocess()
		return
	}

	state := newSyntaxState(c.syntax)
	forEachLine(text, func(line []byte) {
		c.parseLine(state, line, summary)
	})

	summary.Postprocess()
}

// parseLine 对单行执行分类并推进跨行状态。
func (c *Counter) parseLine(state *syntaxState, rawLine []byte, summary Summary) {
	trimmed := bytes.TrimSpace(rawLine)

	// 空白行永远是 blank，且不触碰任何跨行状态。
	if len(trimmed) == 0 {
		summary.BlankLine(rawLine)
		return
	}

	// 固定格式语言的注释识别依赖列位置，必须用未裁剪的原始行匹配。
	line := trimmed
	if c.syntax.ColumnComments {
		line = rawLine
	}

	hadMultiLine := len(state.stack) > 0

	if c.parseBasic(state, rawLine, line, summary) {
		return
	}

	endedWithComments := false
	skip := 0

	for i := 0; i < len(line); i++ {
		if skip > 0 {
			skip--
			continue
		}

		endedWithComments = false
		window := line[i:]

		// 同一位置上闭合优先于开启：先尝试关引号/关注释，
		// 否则字面量闭合符后面紧跟的行注释标记会被吞进字面量。
		if consumed := state.parseEndOfQuote(window); consumed > 0 {
			endedWithComments = true
			skip = consumed - 1
			continue
		}
		if consumed := state.parseEndOfMultiLine(window); consumed > 0 {
			endedWithComments = true
			skip = consumed - 1
			continue
		}

		// 引号仍未闭合时，剩余字节都属于字面量内容。
		if state.quote != "" {
			continue
		}

		if consumed := state.parseQuote(window); consumed > 0 {
			skip = consumed - 1
			continue
		}
		if consumed := state.parseMultiLine(window); consumed > 0 {
			skip = consumed - 1
			continue
		}

		// 行注释最后尝试：命中即本行剩余全部是注释。
		if state.parseLineComment(window) {
			endedWithComments = true
			break
		}
	}

	isComment :=
		// 行首已处于块注释内，且行尾仍在注释内或本行以闭合结束。
		((len(state.stack) > 0 || endedWithComments) && hadMultiLine) ||
			// 行以注释标记开头，且不在字面量内。
			(state.quote == "" && state.startsWithComment(line)) ||
			// 文档字符串按注释分类的配置开启，且当前处于或本行开启了文档引号。
			((state.quote != "" || state.startsWithDocQuote(line)) &&
				c.docStringsAsComments && state.quoteIsDoc)

	if isComment {
		summary.CommentLine(rawLine)
	} else {
		summary.CodeLine(rawLine)
	}
}

// parseBasic 是快速路径：没有任何跨行状态、且本行不含重要子串时，
// 直接按“行首是否为行注释标记”分类，跳过完整的窗口扫描。
// 这是纯优化，结果必须与完整扫描一致。
func (c *Counter) parseBasic(state *syntaxState, rawLine []byte, line []byte, summary Summary) bool {
	if state.quote != "" || len(state.stack) > 0 {
		return false
	}

	for _, marker := range c.syntax.ImportantSyntax() {
		if bytes.Contains(line, []byte(marker)) {
			return false
		}
	}

	for _, marker := range c.syntax.LineComments {
		if hasPrefix(line, marker) {
			summary.CommentLine(rawLine)
			return true
		}
	}

	summary.CodeLine(rawLine)
	return true
}

// forEachLine 按单一分隔符 \n 切分字节序列并逐行回调。
// 行内容不含换行符本身；行尾的 \r 保留在行内，由裁剪逻辑吸收。
// 末尾无换行的残余内容也算一行。
func forEachLine(text []byte, fn func(line []byte)) {
	for len(text) > 0 {
		idx := bytes.IndexByte(text, '\n')
		if idx < 0 {
			fn(text)
			return
		}
		fn(text[:idx])
		text = text[idx+1:]
	}
}

// countLines 返回 forEachLine 会产出的行数。
func countLines(text []byte) int64 {
	var count int64
	forEachLine(text, func([]byte) {
		count++
	})
	return count
}
