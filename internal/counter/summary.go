package counter

// Summary 是分类结果的汇总接收器。
// 统计核心对具体实现泛化，便于替换为试运行用的空实现。
type Summary interface {
	// UnprocessedLines 一次性记录 n 行“未处理行”，全部按代码计数。
	// 仅用于没有注释语法的语言。
	UnprocessedLines(count int64)
	// CodeLine 记录一行代码，入参是未裁剪的原始行。
	CodeLine(line []byte)
	// CommentLine 记录一行注释。
	CommentLine(line []byte)
	// BlankLine 记录一行空白。
	BlankLine(line []byte)
	// Postprocess 在最后一行之后恰好调用一次，
	// 由实现负责让总行数等于三类行数之和。
	Postprocess()
}

// DiscardSummary 是丢弃全部结果的空实现，供只验证扫描可行性的场景使用。
type DiscardSummary struct{}

// UnprocessedLines 丢弃输入。
func (DiscardSummary) UnprocessedLines(int64) {}

// CodeLine 丢弃输入。
func (DiscardSummary) CodeLine([]byte) {}

// CommentLine 丢弃输入。
func (DiscardSummary) CommentLine([]byte) {}

// BlankLine 丢弃输入。
func (DiscardSummary) BlankLine([]byte) {}

// Postprocess 无事可做。
func (DiscardSummary) Postprocess() {}
