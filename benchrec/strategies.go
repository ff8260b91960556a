// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"fmt"
	"strings"
)

// A StrategyLabeler labels records with the strategy selections that
// actually vary across a batch. A strategy that takes a single value
// everywhere carries no information, so it is omitted from group
// names and chart legends.
type StrategyLabeler struct {
	relevant []StrategyName
}

// NewStrategyLabeler scans the batch and records which strategies
// take more than one distinct value.
func NewStrategyLabeler(records []*Record) *StrategyLabeler {
	seen := make(map[StrategyName]map[string]struct{})
	for _, r := range records {
		for _, name := range StrategyNames {
			vals, ok := seen[name]
			if !ok {
				vals = make(map[string]struct{})
				seen[name] = vals
			}
			vals[r.Identity.Strategies.Get(name)] = struct{}{}
		}
	}
	l := new(StrategyLabeler)
	for _, name := range StrategyNames {
		if len(seen[name]) > 1 {
			l.relevant = append(l.relevant, name)
		}
	}
	return l
}

// Label returns a "; name value" fragment per varying strategy,
// suitable for appending to a group name. It is empty when no
// strategy varies.
func (l *StrategyLabeler) Label(r *Record) string {
	var sb strings.Builder
	for _, name := range l.relevant {
		fmt.Fprintf(&sb, "; %s %s", name, r.Identity.Strategies.Get(name))
	}
	return sb.String()
}
