package hand

import (
	"fmt"
	"slices"
	"strings"

	"github.com/palemoky/hanabi/internal/apperrors"
	"github.com/palemoky/hanabi/internal/game/card"
	"github.com/palemoky/hanabi/internal/game/knowledge"
)

// HeldCard 手中的一张牌及持有者对它的认知
type HeldCard struct {
	Card      card.Card
	Knowledge *knowledge.CardKnowledge
}

// Hand 玩家手牌，按下标有序
type Hand struct {
	cards []HeldCard
}

// New 创建空手牌
func New() *Hand {
	return &Hand{}
}

// Len 返回手牌数量
func (h *Hand) Len() int {
	return len(h.cards)
}

// Add 把牌放到最后，认知从空开始
func (h *Hand) Add(c card.Card) {
	h.cards = append(h.cards, HeldCard{
		Card:      c,
		Knowledge: knowledge.New(len(h.cards)),
	})
}

func (h *Hand) checkIndex(index int) error {
	if index < 0 || index >= len(h.cards) {
		return fmt.Errorf("%w: %d (手牌数 %d)", apperrors.ErrInvalidCardIndex, index, len(h.cards))
	}
	return nil
}

// Peek 查看下标 index 的牌，不修改手牌
func (h *Hand) Peek(index int) (HeldCard, error) {
	if err := h.checkIndex(index); err != nil {
		return HeldCard{}, err
	}
	return h.cards[index], nil
}

// Remove 取出下标 index 的牌，并把后面的牌的位置各减一
func (h *Hand) Remove(index int) (HeldCard, error) {
	if err := h.checkIndex(index); err != nil {
		return HeldCard{}, err
	}
	removed := h.cards[index]
	h.cards = slices.Delete(h.cards, index, index+1)
	for _, held := range h.cards {
		if held.Knowledge.Position > index {
			held.Knowledge.Position--
		}
	}
	return removed, nil
}

// ReceiveHint 一次遍历同时传播正向和反向信息
func (h *Hand) ReceiveHint(positions []int, hint knowledge.Hint) {
	for _, held := range h.cards {
		held.Knowledge.Apply(hint, slices.Contains(positions, held.Knowledge.Position))
	}
}

// Positions 返回提示命中的下标（升序）
func (h *Hand) Positions(hint knowledge.Hint) []int {
	var out []int
	for i, held := range h.cards {
		if hint.Matches(held.Card) {
			out = append(out, i)
		}
	}
	return out
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, held := range h.cards {
		parts[i] = held.Card.String()
	}
	return strings.Join(parts, " ")
}
