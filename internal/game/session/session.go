package session

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/palemoky/hanabi/internal/apperrors"
	"github.com/palemoky/hanabi/internal/game/card"
	"github.com/palemoky/hanabi/internal/game/hand"
	"github.com/palemoky/hanabi/internal/game/knowledge"
	"github.com/palemoky/hanabi/internal/game/rule"
	"github.com/palemoky/hanabi/internal/game/table"
)

// Session 一局游戏的回合状态
type Session struct {
	ID      uuid.UUID
	Players [NumPlayers]*Player
	Table   *table.Table
	Deck    card.Deck

	current int
	stats   Stats
	fatal   bool
	over    bool
}

// New 用给定牌堆开一局并发牌；牌堆至少要够发两手牌
func New(deck card.Deck) (*Session, error) {
	need := NumPlayers * CardsPerPlayer
	if deck.Len() < need {
		return nil, fmt.Errorf("%w: 至少需要 %d 张牌，只有 %d 张", apperrors.ErrInvalidDeck, need, deck.Len())
	}

	s := &Session{
		ID:    uuid.New(),
		Table: table.New(),
		Deck:  slices.Clone(deck),
	}
	for seat := range s.Players {
		s.Players[seat] = &Player{Seat: seat, Hand: hand.New()}
	}
	s.deal()
	s.checkOver()
	return s, nil
}

// deal 先给 0 号玩家发满，再给 1 号玩家
func (s *Session) deal() {
	for _, p := range s.Players {
		for range CardsPerPlayer {
			c, _ := s.Deck.Draw()
			p.Hand.Add(c)
		}
	}
	for seat, p := range s.Players {
		p.Teammate = s.Players[(seat+1)%NumPlayers]
	}
}

// Current 返回当前行动的玩家
func (s *Session) Current() *Player {
	return s.Players[s.current]
}

// Stats 返回当前计数
func (s *Session) Stats() Stats {
	return s.stats
}

// Fatal 报告本局是否出现过致命操作
func (s *Session) Fatal() bool {
	return s.fatal
}

// Over 报告本局是否已结束
func (s *Session) Over() bool {
	return s.over
}

// Play 打出当前玩家下标 index 的牌；不能接上时弃掉并标记致命操作
func (s *Session) Play(index int) (PlayResult, error) {
	p := s.Current()
	held, err := p.Hand.Peek(index)
	if err != nil {
		return PlayResult{}, err
	}

	res := PlayResult{Card: held.Card, Accepted: s.Table.Accepts(held.Card)}
	if res.Accepted {
		res.Risk = rule.Classify(held.Knowledge, s.Table)
		s.Table.Place(held.Card)
		s.stats.Correct++
		if res.Risk == rule.Risky {
			s.stats.Risky++
		}
	} else {
		res.Risk = rule.Risky
		s.fatal = true
	}

	s.replace(p, index)
	s.endTurn()
	return res, nil
}

// Drop 弃掉当前玩家下标 index 的牌
func (s *Session) Drop(index int) (card.Card, error) {
	p := s.Current()
	held, err := p.Hand.Peek(index)
	if err != nil {
		return card.Card{}, err
	}
	s.replace(p, index)
	s.endTurn()
	return held.Card, nil
}

// Tell 提示队友；positions 必须与真实命中的下标完全一致，否则标记致命操作
func (s *Session) Tell(hint knowledge.Hint, positions []int) (HintResult, error) {
	mate := s.Current().Teammate
	for _, pos := range positions {
		if pos < 0 || pos >= mate.Hand.Len() {
			return HintResult{}, fmt.Errorf("%w: %d (队友手牌数 %d)", apperrors.ErrInvalidCardIndex, pos, mate.Hand.Len())
		}
	}

	res := HintResult{Actual: mate.Hand.Positions(hint)}
	res.Truthful = sameSet(positions, res.Actual)
	if res.Truthful {
		mate.Hand.ReceiveHint(positions, hint)
	} else {
		s.fatal = true
	}

	s.endTurn()
	return res, nil
}

// replace 移除下标 index 的牌，牌堆还有牌时补一张
func (s *Session) replace(p *Player, index int) {
	_, _ = p.Hand.Remove(index)
	if c, ok := s.Deck.Draw(); ok {
		p.Hand.Add(c)
	}
}

func (s *Session) endTurn() {
	s.stats.Turns++
	s.current = (s.current + 1) % NumPlayers
	s.checkOver()
}

func (s *Session) checkOver() {
	if s.Deck.IsEmpty() || s.stats.Correct >= MaxCorrect || s.fatal {
		s.over = true
	}
}

// sameSet 按集合比较，忽略顺序和重复
func sameSet(a, b []int) bool {
	as := slices.Compact(slices.Sorted(slices.Values(a)))
	bs := slices.Compact(slices.Sorted(slices.Values(b)))
	return slices.Equal(as, bs)
}
