// Package effort estimates expected completion minutes for a task via
// a cascading-confidence strategy chain.
package effort

import (
	"context"
	"math"
	"strings"

	"task-intelligence/internal/model"
	"task-intelligence/internal/template"
	"task-intelligence/pkg/log"
)

// Service is the effort-estimation interface.
type Service interface {
	// Estimate resolves the expected minutes for a task. Historical
	// tasks are previously completed tasks with recorded actual time.
	Estimate(ctx context.Context, task model.Task, historical []model.Task) Estimate
}

type service struct {
	l          log.Logger
	templates  template.Library
	memory     Predictor
	strategies []strategy
}

// strategy is one named estimation source. Strategies run in slice
// order; the first non-nil estimate wins. The order is the documented
// cascade and is covered by tests.
type strategy struct {
	name string
	run  func(s *service, task model.Task, historical []model.Task) *Estimate
}

// New creates an effort estimation service. templates and memory may
// be nil; their strategies then never match.
func New(l log.Logger, templates template.Library, memory Predictor) Service {
	s := &service{l: l, templates: templates, memory: memory}
	s.strategies = []strategy{
		{name: SourceUserDefined, run: (*service).fromUserEstimate},
		{name: SourceTemplate, run: (*service).fromTemplate},
		{name: SourceHistorical, run: (*service).fromHistory},
		{name: SourceAIMemory, run: (*service).fromMemory},
		{name: SourceKeywordAnalysis, run: (*service).fromKeywords},
		{name: SourceDefault, run: (*service).fromDefault},
	}
	return s
}

// Estimate runs the strategy cascade, then adds subtask overhead on
// top of whichever source won.
func (s *service) Estimate(ctx context.Context, task model.Task, historical []model.Task) Estimate {
	var est Estimate
	for _, strat := range s.strategies {
		if e := strat.run(s, task, historical); e != nil {
			est = *e
			s.l.Debugf(ctx, "effort estimate for %q: %dm from %s", task.Name, est.Minutes, est.Source)
			break
		}
	}

	if incomplete := task.IncompleteSubtasks(); incomplete > 0 {
		base := est.Minutes
		overhead := incomplete * minutesPerSubtask
		est.Minutes = base + overhead
		est.Breakdown = &Breakdown{
			BaseTime:      base,
			SubtasksTime:  overhead,
			SubtasksCount: incomplete,
		}
	}

	return est
}

func (s *service) fromUserEstimate(task model.Task, _ []model.Task) *Estimate {
	if task.EstimatedTime <= 0 {
		return nil
	}
	return &Estimate{
		Minutes:    task.EstimatedTime,
		Confidence: confidenceUserDefined,
		Source:     SourceUserDefined,
	}
}

func (s *service) fromTemplate(task model.Task, _ []model.Task) *Estimate {
	if s.templates == nil {
		return nil
	}
	matches := s.templates.SuggestFromName(task.Name)
	if len(matches) == 0 || matches[0].EstimatedTime <= 0 {
		return nil
	}
	return &Estimate{
		Minutes:    matches[0].EstimatedTime,
		Confidence: confidenceTemplate,
		Source:     SourceTemplate,
	}
}

// fromHistory averages actual time over completed same-category tasks,
// requiring at least historicalMinimum samples.
func (s *service) fromHistory(task model.Task, historical []model.Task) *Estimate {
	if task.Category == "" {
		return nil
	}

	total := 0
	count := 0
	for _, h := range historical {
		if h.Category == task.Category && h.ActualTime > 0 {
			total += h.ActualTime
			count++
		}
	}
	if count < historicalMinimum {
		return nil
	}

	return &Estimate{
		Minutes:    int(math.Round(float64(total) / float64(count))),
		Confidence: math.Min(historicalCap, historicalBase+historicalPerItem*float64(count)),
		Source:     SourceHistorical,
	}
}

func (s *service) fromMemory(task model.Task, _ []model.Task) *Estimate {
	if s.memory == nil {
		return nil
	}
	minutes, ok := s.memory.PredictMinutes(task.Name)
	if !ok || minutes <= 0 {
		return nil
	}
	return &Estimate{
		Minutes:    minutes,
		Confidence: confidenceAIMemory,
		Source:     SourceAIMemory,
	}
}

func (s *service) fromKeywords(task model.Task, _ []model.Task) *Estimate {
	name := strings.ToLower(task.Name)
	for _, band := range keywordBands {
		for _, kw := range band.keywords {
			if strings.Contains(name, kw) {
				return &Estimate{
					Minutes:    band.minutes,
					Confidence: confidenceKeyword,
					Source:     SourceKeywordAnalysis,
				}
			}
		}
	}
	return nil
}

func (s *service) fromDefault(_ model.Task, _ []model.Task) *Estimate {
	return &Estimate{
		Minutes:    defaultMinutes,
		Confidence: confidenceDefault,
		Source:     SourceDefault,
	}
}
