// Package counter 实现通用的逐行词法统计核心。
// 它对语言完全泛化：同一个前向扫描状态机消费语法规则表，
// 跨行维护未闭合的引号与（可嵌套的）块注释状态，
// 把每一行裁定为 code/comment/blank 之一。
package counter

import (
	"bytes"

	"locmeter/internal/language"
)

// escapeByte 是引号内的转义引导字节。
// 引号内遇到它时连同下一个字节一起消费，避免把 \" 误判成闭合。
const escapeByte = '\\'

// syntaxState 记录单文件扫描过程中的跨行词法状态。
// 一个实例只服务一次扫描，所有字段仅由当前扫描独占修改。
type syntaxState struct {
	syntax *language.Syntax

	// quote 是当前未闭合引号的闭合标记，空串表示不在字面量内。
	quote string
	// quoteIsDoc 表示最近一次开启的引号是否为文档字符串。
	// 闭合时不复位，行末分类仍需要该信息。
	quoteIsDoc bool
	// stack 保存当前打开的块注释的结束标记，最内层在末尾。
	// 深度只在 Nested 语言里超过 1。
	stack []string
}

// newSyntaxState 为一次文件扫描构造初始状态。
func newSyntaxState(syntax *language.Syntax) *syntaxState {
	return &syntaxState{syntax: syntax}
}

// parseEndOfQuote 尝试在窗口起点闭合当前引号。
// 返回消费的字节数，0 表示未匹配。
// 引号内的转义序列在这里按“消费两个字节”处理，
// 等价于“前导反斜杠数量为奇数则不闭合”的奇偶规则。
func (s *syntaxState) parseEndOfQuote(window []byte) int {
	if s.quote == "" {
		return 0
	}

	if hasPrefix(window, s.quote) {
		consumed := len(s.quote)
		s.quote = ""
		return consumed
	}

	if window[0] == escapeByte && len(window) > 1 {
		return 2
	}

	return 0
}

// parseEndOfMultiLine 尝试在窗口起点闭合最内层块注释。
// 只认最内层对应的结束标记，匹配即弹出一层。
func (s *syntaxState) parseEndOfMultiLine(window []byte) int {
	if len(s.stack) == 0 {
		return 0
	}

	end := s.stack[len(s.stack)-1]
	if !hasPrefix(window, end) {
		return 0
	}

	s.stack = s.stack[:len(s.stack)-1]
	return len(end)
}

// parseQuote 尝试在窗口起点开启字符串/文档字符串。
// 块注释内部的引号被屏蔽；文档引号优先于普通引号，
// 并依赖规则表“更长标记在前”的约定保证最长匹配。
func (s *syntaxState) parseQuote(window []byte) int {
	if s.quote != "" || len(s.stack) > 0 {
		return 0
	}

	for _, pair := range s.syntax.DocQuotes {
		if hasPrefix(window, pair[0]) {
			s.quote = pair[1]
			s.quoteIsDoc = true
			return len(pair[0])
		}
	}

	for _, pair := range s.syntax.Quotes {
		if hasPrefix(window, pair[0]) {
			s.quote = pair[1]
			s.quoteIsDoc = false
			return len(pair[0])
		}
	}

	return 0
}

// parseMultiLine 尝试在窗口起点开启块注释。
// 已处于注释内且语言不允许嵌套时仍消费起始标记，但不增加深度。
func (s *syntaxState) parseMultiLine(window []byte) int {
	if s.quote != "" {
		return 0
	}

	for _, pair := range s.syntax.MultiLine {
		if !hasPrefix(window, pair[0]) {
			continue
		}

		if len(s.stack) == 0 || s.syntax.Nested {
			s.stack = append(s.stack, pair[1])
		}
		return len(pair[0])
	}

	return 0
}

// parseLineComment 判断窗口起点是否开启行注释。
// 命中后整行剩余部分都是注释，调用方应停止扫描本行。
func (s *syntaxState) parseLineComment(window []byte) bool {
	if s.quote != "" || len(s.stack) > 0 {
		return false
	}

	for _, marker := range s.syntax.LineComments {
		if hasPrefix(window, marker) {
			return true
		}
	}

	return false
}

// startsWithComment 判断一行是否以注释标记（行注释或块注释起始）开头。
func (s *syntaxState) startsWithComment(line []byte) bool {
	for _, marker := range s.syntax.LineComments {
		if hasPrefix(line, marker) {
			return true
		}
	}
	for _, pair := range s.syntax.MultiLine {
		if hasPrefix(line, pair[0]) {
			return true
		}
	}
	return false
}

// startsWithDocQuote 判断一行是否以文档字符串起始标记开头。
func (s *syntaxState) startsWithDocQuote(line []byte) bool {
	for _, pair := range s.syntax.DocQuotes {
		if hasPrefix(line, pair[0]) {
			return true
		}
	}
	return false
}

// hasPrefix 是 bytes.HasPrefix 的字符串标记版本。
func hasPrefix(window []byte, marker string) bool {
	return bytes.HasPrefix(window, []byte(marker))
}
