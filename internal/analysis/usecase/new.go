package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-intelligence/internal/analysis"
	"task-intelligence/internal/checklist"
	"task-intelligence/internal/decompose"
	"task-intelligence/internal/dependency"
	"task-intelligence/internal/effort"
	"task-intelligence/internal/priority"
	"task-intelligence/internal/recurrence"
	"task-intelligence/internal/template"
	"task-intelligence/pkg/datemath"
	pkgLog "task-intelligence/pkg/log"
)

// CacheConfig tunes the analysis-result cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type implUseCase struct {
	l          pkgLog.Logger
	priority   priority.Service
	dependency dependency.Service
	effort     effort.Service
	recurrence recurrence.Service
	decompose  decompose.Service
	checklist  checklist.Service
	templates  template.Library
	dateMath   *datemath.Parser
	cache      *expirable.LRU[string, analysis.AnalyzeOutput]
	clock      func() time.Time
}

// New creates a new analysis UseCase instance.
func New(
	l pkgLog.Logger,
	prioritySvc priority.Service,
	dependencySvc dependency.Service,
	effortSvc effort.Service,
	recurrenceSvc recurrence.Service,
	decomposeSvc decompose.Service,
	checklistSvc checklist.Service,
	templates template.Library,
	dateMath *datemath.Parser,
	cacheCfg CacheConfig,
) *implUseCase {
	if cacheCfg.Size <= 0 {
		cacheCfg.Size = 1000
	}
	if cacheCfg.TTL <= 0 {
		cacheCfg.TTL = time.Minute * 5
	}

	return &implUseCase{
		l:          l,
		priority:   prioritySvc,
		dependency: dependencySvc,
		effort:     effortSvc,
		recurrence: recurrenceSvc,
		decompose:  decomposeSvc,
		checklist:  checklistSvc,
		templates:  templates,
		dateMath:   dateMath,
		cache: expirable.NewLRU[string, analysis.AnalyzeOutput](
			cacheCfg.Size,
			nil,
			cacheCfg.TTL,
		),
		clock: time.Now,
	}
}
