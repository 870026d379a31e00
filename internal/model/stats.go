// Package model 定义 locmeter 的核心数据模型。
// 这些结构会被计数器、扫描器、输出层和命令层共同使用。
package model

// LineStats 表示一组行级统计值。
//
// 注意：
// - 每一行只会归入 Code/Comments/Blanks 之一
// - Lines 不做增量维护，由 Postprocess 统一推导
type LineStats struct {
	Lines    int64 `json:"lines"`
	Code     int64 `json:"code"`
	Comments int64 `json:"comments"`
	Blanks   int64 `json:"blanks"`
}

// Add 将另一个统计结果叠加到当前对象。
func (m *LineStats) Add(other LineStats) {
	m.Lines += other.Lines
	m.Code += other.Code
	m.Comments += other.Comments
	m.Blanks += other.Blanks
}

// Stats 表示单文件扫描结果，同时充当计数器的汇总接收器。
type Stats struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	LineStats
}

// NewStats 以文件路径标识构造一个空的统计对象。
func NewStats(path string, language string) *Stats {
	return &Stats{
		Path:     path,
		Language: language,
	}
}

// UnprocessedLines 一次性记录 n 行“未处理行”。
// 用于没有注释语法的语言，所有内容行直接按代码计数。
func (s *Stats) UnprocessedLines(count int64) {
	s.Code += count
	s.Lines += count
}

// CodeLine 记录一行代码。
func (s *Stats) CodeLine(_ []byte) {
	s.Code++
}

// CommentLine 记录一行注释。
func (s *Stats) CommentLine(_ []byte) {
	s.Comments++
}

// BlankLine 记录一行空白。
func (s *Stats) BlankLine(_ []byte) {
	s.Blanks++
}

// Postprocess 在全部行处理结束后推导总行数。
// 约束：Lines == Code + Comments + Blanks 只在本步骤之后成立。
func (s *Stats) Postprocess() {
	s.Lines = s.Code + s.Comments + s.Blanks
}

// LanguageStats 表示某个语言的聚合结果。
type LanguageStats struct {
	Language   string   `json:"language"`
	Extensions []string `json:"extensions"`
	Files      int64    `json:"files"`
	LineStats
}

// ScanError 记录单文件扫描失败信息。
// 设计为“错误不阻断全量扫描”，便于大仓库分析时容错。
type ScanError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// TotalStats 表示项目级总计信息。
// 在 LineStats 基础上额外增加 Files 字段，
// 用于表达“本次扫描统计到了多少个有效源码文件”。
type TotalStats struct {
	Files int64 `json:"files"`
	LineStats
}

// AddFileStats 累加一个文件的统计值到项目总计中。
func (m *TotalStats) AddFileStats(other LineStats) {
	m.Files++
	m.LineStats.Add(other)
}

// Result 是 scan 命令的完整输出模型。
// 包含文件级明细、语言级汇总、全局总计和错误列表。
type Result struct {
	ScannedPath string          `json:"scanned_path"`
	Files       []Stats         `json:"files"`
	Languages   []LanguageStats `json:"languages"`
	Total       TotalStats      `json:"total"`
	Errors      []ScanError     `json:"errors"`
}
