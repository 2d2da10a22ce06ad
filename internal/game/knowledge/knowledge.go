// Package knowledge tracks what a player has deduced about each card in their own hand.
package knowledge

import (
	"slices"

	"github.com/palemoky/hanabi/internal/game/card"
)

// Slot 记录某一维度（颜色或点数）的已知值和已排除值
type Slot[V comparable] struct {
	domain   []V
	known    V
	isKnown  bool
	excluded []V
}

// NewSlot 创建一个定义域为 domain 的空信息槽
func NewSlot[V comparable](domain []V) Slot[V] {
	return Slot[V]{domain: domain}
}

// Known 返回已知值
func (s *Slot[V]) Known() (V, bool) {
	return s.known, s.isKnown
}

// Excluded 返回已排除值的副本
func (s *Slot[V]) Excluded() []V {
	return slices.Clone(s.excluded)
}

// IsExcluded 报告 v 是否已被排除
func (s *Slot[V]) IsExcluded(v V) bool {
	return slices.Contains(s.excluded, v)
}

// Candidates 返回仍可能的取值；已知时只有已知值
func (s *Slot[V]) Candidates() []V {
	if s.isKnown {
		return []V{s.known}
	}
	var out []V
	for _, v := range s.domain {
		if !s.IsExcluded(v) {
			out = append(out, v)
		}
	}
	return out
}

// Observe 直接提示总是覆盖之前的判断
func (s *Slot[V]) Observe(v V) {
	s.known = v
	s.isKnown = true
	s.excluded = nil
}

// Exclude 排除一个值；只剩一个候选值时通过排除法得出已知值
func (s *Slot[V]) Exclude(v V) {
	if s.isKnown || s.IsExcluded(v) {
		return
	}
	s.excluded = append(s.excluded, v)

	if len(s.excluded) != len(s.domain)-1 {
		return
	}
	for _, candidate := range s.domain {
		if !s.IsExcluded(candidate) {
			s.Observe(candidate)
			return
		}
	}
}

// CardKnowledge 玩家对自己某张手牌的认知
type CardKnowledge struct {
	Rank     Slot[card.Rank]
	Color    Slot[card.Color]
	Position int // 在手牌中的下标
}

// New 创建位于 position 的空认知
func New(position int) *CardKnowledge {
	return &CardKnowledge{
		Rank:     NewSlot(card.Ranks[:]),
		Color:    NewSlot(card.Colors[:]),
		Position: position,
	}
}

// Apply 把提示作用到对应维度：命中则 Observe，未命中则 Exclude
func (k *CardKnowledge) Apply(h Hint, matched bool) {
	switch h.Kind {
	case HintRank:
		if matched {
			k.Rank.Observe(h.Rank)
		} else {
			k.Rank.Exclude(h.Rank)
		}
	case HintColor:
		if matched {
			k.Color.Observe(h.Color)
		} else {
			k.Color.Exclude(h.Color)
		}
	}
}
