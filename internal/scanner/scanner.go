// Package scanner 提供并发扫描调度能力。
// 该层负责目录遍历、任务分发、并发执行和结果聚合，不负责词法解析细节。
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"locmeter/internal/config"
	"locmeter/internal/counter"
	"locmeter/internal/language"
	"locmeter/internal/model"
)

// Service 是扫描服务对象。
type Service struct {
	cfg     config.Config
	workers int
}

// scanTask 表示一个待统计文件任务。
type scanTask struct {
	absolutePath string
	displayPath  string
	lang         language.Language
}

// workerResult 表示 worker 的执行产物。
type workerResult struct {
	fileStats *model.Stats
	scanError *model.ScanError
}

// NewService 创建扫描服务。
func NewService(cfg config.Config) *Service {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Service{
		cfg:     cfg,
		workers: workers,
	}
}

// ScanPath 扫描目录或单文件。
// 扫描过程默认并发执行，文件之间的词法状态完全独立。
func (s *Service) ScanPath(targetPath string) (model.Result, error) {
	var result model.Result

	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return result, errors.New("scan path is empty")
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return result, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return result, fmt.Errorf("stat path: %w", err)
	}

	result.ScannedPath = absoluteTarget

	tasks := make(chan scanTask, s.workers*4)
	results := make(chan workerResult, s.workers*4)
	walkErrChan := make(chan error, 1)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, results)
		}()
	}

	go func() {
		defer close(tasks)
		if info.IsDir() {
			walkErrChan <- s.enqueueDirectoryTasks(absoluteTarget, tasks)
			return
		}
		walkErrChan <- s.enqueueSingleFileTask(absoluteTarget, tasks)
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	result.Files = make([]model.Stats, 0)
	result.Errors = make([]model.ScanError, 0)

	for item := range results {
		if item.fileStats != nil {
			result.Files = append(result.Files, *item.fileStats)
		}
		if item.scanError != nil {
			result.Errors = append(result.Errors, *item.scanError)
		}
	}

	if walkErr := <-walkErrChan; walkErr != nil {
		return result, walkErr
	}

	s.buildSummaries(&result)
	return result, nil
}

// enqueueDirectoryTasks 遍历目录并把可识别语言文件推入任务队列。
func (s *Service) enqueueDirectoryTasks(root string, tasks chan<- scanTask) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}
		relativePath = filepath.ToSlash(relativePath)

		if s.excluded(relativePath) {
			return nil
		}

		lang, ok := language.DetectFile(path)
		if !ok {
			return nil
		}

		tasks <- scanTask{
			absolutePath: path,
			displayPath:  relativePath,
			lang:         lang,
		}
		return nil
	})
}

// enqueueSingleFileTask 在用户给定单文件路径时创建任务。
func (s *Service) enqueueSingleFileTask(filePath string, tasks chan<- scanTask) error {
	lang, ok := language.DetectFile(filePath)
	if !ok {
		return fmt.Errorf("unsupported file type: %s", filepath.Base(filePath))
	}

	tasks <- scanTask{
		absolutePath: filePath,
		displayPath:  filepath.Base(filePath),
		lang:         lang,
	}
	return nil
}

// excluded 判断相对路径是否命中排除 glob。
// 同时用完整相对路径和文件名匹配，便于写 *.min.js 这类模式。
func (s *Service) excluded(relativePath string) bool {
	base := filepath.Base(relativePath)
	for _, pattern := range s.cfg.Exclude {
		if matched, _ := filepath.Match(pattern, relativePath); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

// runWorker 执行真实的文件读取和通用状态机统计。
func (s *Service) runWorker(tasks <-chan scanTask, results chan<- workerResult) {
	for task := range tasks {
		c, err := counter.New(task.lang, s.cfg.TreatDocStringsAsComments())
		if err != nil {
			results <- workerResult{
				scanError: &model.ScanError{
					Path:  task.displayPath,
					Error: err.Error(),
				},
			}
			continue
		}

		stats, countErr := c.CountFile(task.absolutePath)
		if countErr != nil {
			results <- workerResult{
				scanError: &model.ScanError{
					Path:  task.displayPath,
					Error: countErr.Error(),
				},
			}
			continue
		}

		stats.Path = task.displayPath
		results <- workerResult{fileStats: stats}
	}
}

// buildSummaries 计算语言级汇总和总计信息。
func (s *Service) buildSummaries(result *model.Result) {
	sort.Slice(result.Files, func(i int, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	sort.Slice(result.Errors, func(i int, j int) bool {
		return result.Errors[i].Path < result.Errors[j].Path
	})

	byLanguage := make(map[string]*model.LanguageStats)
	result.Total = model.TotalStats{}

	for _, item := range result.Files {
		result.Total.AddFileStats(item.LineStats)

		summary, ok := byLanguage[item.Language]
		if !ok {
			summary = &model.LanguageStats{
				Language:   item.Language,
				Extensions: language.ExtensionsFor(language.Language(item.Language)),
			}
			byLanguage[item.Language] = summary
		}

		summary.Files++
		summary.LineStats.Add(item.LineStats)
	}

	result.Languages = make([]model.LanguageStats, 0, len(byLanguage))
	for _, item := range byLanguage {
		result.Languages = append(result.Languages, *item)
	}

	sort.Slice(result.Languages, func(i int, j int) bool {
		return result.Languages[i].Language < result.Languages[j].Language
	})
}
