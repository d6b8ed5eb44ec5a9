package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/util"
)

// Reports memoizes audit reports by source content. Safe for concurrent use.
// A nil *Reports is valid and caches nothing.
type Reports struct {
	lru *lru.Cache[string, model.Report]
}

// New returns nil when size <= 0.
func New(size int) (*Reports, error) {
	if size <= 0 {
		return nil, nil
	}
	c, err := lru.New[string, model.Report](size)
	if err != nil {
		return nil, err
	}
	return &Reports{lru: c}, nil
}

// Key computes the memo key for a contract source.
func Key(source string) string { return util.ContentKey("report-v1", source) }

func (r *Reports) Load(key string) (model.Report, bool) {
	if r == nil {
		return model.Report{}, false
	}
	return r.lru.Get(key)
}

func (r *Reports) Store(key string, rep model.Report) {
	if r == nil {
		return
	}
	r.lru.Add(key, rep)
}

func (r *Reports) Len() int {
	if r == nil {
		return 0
	}
	return r.lru.Len()
}
