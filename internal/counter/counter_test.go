package counter

import (
	"errors"
	"path/filepath"
	"testing"

	"locmeter/internal/language"
	"locmeter/internal/model"
)

// boolPtr 返回布尔值指针，便于表达三态配置。
func boolPtr(v bool) *bool {
	return &v
}

// countString 是测试辅助函数，对一段文本执行一次完整统计。
func countString(t *testing.T, lang language.Language, docStrings *bool, content string) model.LineStats {
	t.Helper()

	c, err := New(lang, docStrings)
	if err != nil {
		t.Fatalf("new counter failed: %v", err)
	}

	stats := model.NewStats("test", string(lang))
	c.ParseString(content, stats)
	return stats.LineStats
}

// assertStats 校验四项计数完全一致。
func assertStats(t *testing.T, got model.LineStats, lines, code, comments, blanks int64) {
	t.Helper()

	if got.Lines != lines || got.Code != code || got.Comments != comments || got.Blanks != blanks {
		t.Fatalf("unexpected stats: got %+v, want lines=%d code=%d comments=%d blanks=%d",
			got, lines, code, comments, blanks)
	}
}

// TestGoInlineCommentIsCode 验证行尾注释不改变整行“代码”的归类。
func TestGoInlineCommentIsCode(t *testing.T) {
	content := "package main\n" +
		"func main() {\n" +
		"    x := 1 // note\n" +
		"}\n"

	stats := countString(t, language.Go, nil, content)
	assertStats(t, stats, 4, 4, 0, 0)
}

// TestQuoteHidesLineCommentMarker 验证字符串内的 // 不会触发注释分类。
func TestQuoteHidesLineCommentMarker(t *testing.T) {
	stats := countString(t, language.Go, nil, "x = \"a // b\"\n")
	assertStats(t, stats, 1, 1, 0, 0)
}

// TestGoBlockCommentLines 验证跨行块注释的逐行归类。
func TestGoBlockCommentLines(t *testing.T) {
	content := "package main\n" +
		"/*\n" +
		"comment body\n" +
		"*/\n" +
		"func main() {}\n"

	stats := countString(t, language.Go, nil, content)
	assertStats(t, stats, 5, 2, 3, 0)
}

// TestNestedBlockComment 验证允许嵌套的语言在单行内开合两层注释。
func TestNestedBlockComment(t *testing.T) {
	content := "/* outer /* inner */ still comment */\n" +
		"fn main() {}\n"

	stats := countString(t, language.Rust, nil, content)
	assertStats(t, stats, 2, 1, 1, 0)
}

// TestNonNestedCommentIgnoresInnerStart 验证不嵌套语言里第二个起始标记不增加深度。
func TestNonNestedCommentIgnoresInnerStart(t *testing.T) {
	content := "/* a /* b */\n" +
		"x = 1;\n"

	stats := countString(t, language.C, nil, content)
	assertStats(t, stats, 2, 1, 1, 0)
}

// TestNestedCommentStaysOpen 验证嵌套语言同样输入时第二行仍在注释内。
func TestNestedCommentStaysOpen(t *testing.T) {
	content := "/* a /* b */\n" +
		"x = 1;\n"

	stats := countString(t, language.Rust, nil, content)
	assertStats(t, stats, 2, 0, 2, 0)
}

// TestUnterminatedBlockComment 验证文件末尾未闭合的注释把剩余行都算作注释，且不报错。
func TestUnterminatedBlockComment(t *testing.T) {
	content := "/* open\n" +
		"never closed\n" +
		"still inside\n"

	stats := countString(t, language.Go, nil, content)
	assertStats(t, stats, 3, 0, 3, 0)
}

// TestBlankLineInsideComment 验证纯空白行永远计为 blank，不受注释状态影响。
func TestBlankLineInsideComment(t *testing.T) {
	content := "/*\n" +
		"\n" +
		"*/\n"

	stats := countString(t, language.Go, nil, content)
	assertStats(t, stats, 3, 0, 2, 1)
}

// TestBlankLineKeepsQuoteState 验证空白行也不触碰引号状态。
func TestBlankLineKeepsQuoteState(t *testing.T) {
	content := "s = \"abc\n" +
		"\n" +
		"def\"\n"

	stats := countString(t, language.Python, nil, content)
	assertStats(t, stats, 3, 2, 0, 1)
}

// TestEscapedQuoteDoesNotClose 验证 \" 不会提前闭合字符串。
func TestEscapedQuoteDoesNotClose(t *testing.T) {
	content := "s := \"a\\\"b\" // tail\n" +
		"// c\n"

	stats := countString(t, language.Go, nil, content)
	assertStats(t, stats, 2, 1, 1, 0)
}

// TestDocStringToggle 验证文档字符串按注释分类的三态开关。
func TestDocStringToggle(t *testing.T) {
	content := "\"\"\"doc\"\"\"\n" +
		"x = 1\n"

	enabled := countString(t, language.Python, boolPtr(true), content)
	assertStats(t, enabled, 2, 1, 1, 0)

	unset := countString(t, language.Python, nil, content)
	assertStats(t, unset, 2, 2, 0, 0)

	disabled := countString(t, language.Python, boolPtr(false), content)
	assertStats(t, disabled, 2, 2, 0, 0)
}

// TestMultiLineDocString 验证跨行文档字符串的整段归类。
func TestMultiLineDocString(t *testing.T) {
	content := "\"\"\"\n" +
		"doc body\n" +
		"\"\"\"\n" +
		"x = 1\n"

	enabled := countString(t, language.Python, boolPtr(true), content)
	assertStats(t, enabled, 4, 1, 3, 0)

	unset := countString(t, language.Python, nil, content)
	assertStats(t, unset, 4, 4, 0, 0)
}

// TestPythonStringWithHash 验证字符串中的 # 与真实注释的区分。
func TestPythonStringWithHash(t *testing.T) {
	content := "value = \"hello # world\"\n" +
		"# real comment\n"

	stats := countString(t, language.Python, nil, content)
	assertStats(t, stats, 2, 1, 1, 0)
}

// TestColumnSensitiveComment 验证固定格式语言的注释只认第 1 列。
func TestColumnSensitiveComment(t *testing.T) {
	content := "c full line comment\n" +
		"      x = 1\n" +
		"      ! not a column comment\n" +
		"! column comment\n"

	stats := countString(t, language.FortranLegacy, nil, content)
	assertStats(t, stats, 4, 2, 2, 0)
}

// TestBlankLanguageAllCode 验证无注释语法语言的所有行都按代码计数。
func TestBlankLanguageAllCode(t *testing.T) {
	content := "{\n" +
		"\n" +
		"}\n"

	stats := countString(t, language.JSON, nil, content)
	assertStats(t, stats, 3, 3, 0, 0)
}

// TestRubyBeginEndComment 验证 Ruby 的 =begin/=end 块注释。
func TestRubyBeginEndComment(t *testing.T) {
	content := "=begin\n" +
		"comment body\n" +
		"=end\n" +
		"puts \"ok\"\n"

	stats := countString(t, language.Ruby, nil, content)
	assertStats(t, stats, 4, 1, 3, 0)
}

// TestSQLQuoteHidesDash 验证 SQL 单引号字符串中的 -- 不算注释。
func TestSQLQuoteHidesDash(t *testing.T) {
	content := "SELECT '--' FROM t;\n" +
		"-- note\n"

	stats := countString(t, language.SQL, nil, content)
	assertStats(t, stats, 2, 1, 1, 0)
}

// TestHaskellNestedBraceComment 验证 {- -} 嵌套注释在单行内完全闭合。
func TestHaskellNestedBraceComment(t *testing.T) {
	content := "{- a {- b -} c -}\n" +
		"main = return ()\n"

	stats := countString(t, language.Haskell, nil, content)
	assertStats(t, stats, 2, 1, 1, 0)
}

// TestCRLFTolerated 验证 \r\n 行尾被裁剪逻辑吸收。
func TestCRLFTolerated(t *testing.T) {
	content := "x := 1\r\n// c\r\n\r\n"

	stats := countString(t, language.Go, nil, content)
	assertStats(t, stats, 3, 1, 1, 1)
}

// TestTrailingLineWithoutNewline 验证末尾无换行的残余内容算一行。
func TestTrailingLineWithoutNewline(t *testing.T) {
	stats := countString(t, language.Go, nil, "x := 1")
	assertStats(t, stats, 1, 1, 0, 0)
}

// TestEmptyInput 验证空输入产生全零统计。
func TestEmptyInput(t *testing.T) {
	stats := countString(t, language.Go, nil, "")
	assertStats(t, stats, 0, 0, 0, 0)
}

// TestIdempotentCounting 验证同一内容两次独立统计结果一致。
func TestIdempotentCounting(t *testing.T) {
	content := "package main\n" +
		"/* block\n" +
		"still */\n" +
		"\n" +
		"func main() { s := \"// not a comment\" }\n"

	first := countString(t, language.Go, nil, content)
	second := countString(t, language.Go, nil, content)

	if first != second {
		t.Fatalf("counting is not idempotent: first %+v, second %+v", first, second)
	}
}

// TestLinesEqualSum 验证后处理之后总行数恒等于三类行数之和。
func TestLinesEqualSum(t *testing.T) {
	content := "package main\n" +
		"\n" +
		"// comment\n" +
		"/* open\n" +
		"close */\n" +
		"func main() { x := \"/*\" }\n"

	stats := countString(t, language.Go, nil, content)
	if stats.Lines != stats.Code+stats.Comments+stats.Blanks {
		t.Fatalf("invariant violated: %+v", stats)
	}
}

// TestDiscardSummary 验证空实现可以替换真实汇总器。
func TestDiscardSummary(t *testing.T) {
	c, err := New(language.Go, nil)
	if err != nil {
		t.Fatalf("new counter failed: %v", err)
	}

	c.ParseString("package main\n// c\n", DiscardSummary{})
}

// TestUnknownLanguage 验证规则表外的语言返回错误。
func TestUnknownLanguage(t *testing.T) {
	if _, err := New(language.Language("Klingon"), nil); err == nil {
		t.Fatalf("expected unknown language error, got nil")
	}
}

// TestCountFileMissing 验证文件不可读时返回携带路径的 SourceError，且无部分结果。
func TestCountFileMissing(t *testing.T) {
	c, err := New(language.Go, nil)
	if err != nil {
		t.Fatalf("new counter failed: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.go")
	stats, countErr := c.CountFile(missing)
	if countErr == nil {
		t.Fatalf("expected error for missing file, got nil")
	}
	if stats != nil {
		t.Fatalf("expected no partial stats, got %+v", stats)
	}

	var sourceErr *SourceError
	if !errors.As(countErr, &sourceErr) {
		t.Fatalf("expected *SourceError, got %T", countErr)
	}
	if sourceErr.Path != missing {
		t.Fatalf("expected path %s in error, got %s", missing, sourceErr.Path)
	}
}
