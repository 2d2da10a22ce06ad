package session

import (
	"fmt"

	"github.com/palemoky/hanabi/internal/game/card"
	"github.com/palemoky/hanabi/internal/game/hand"
	"github.com/palemoky/hanabi/internal/game/rule"
)

const (
	NumPlayers     = 2
	CardsPerPlayer = 5
	// MaxCorrect 五种颜色各五张全部打出
	MaxCorrect = card.NumColors * int(card.MaxRank)
)

// Player 会话中的玩家
type Player struct {
	Seat     int
	Hand     *hand.Hand
	Teammate *Player
}

// Stats 会话计数
type Stats struct {
	Turns   int // 开局后处理的回合数
	Correct int // 正确出牌数
	Risky   int // 其中带风险的正确出牌数
}

// String 会话结束时输出的汇总行
func (s Stats) String() string {
	return fmt.Sprintf("Turn: %d, cards: %d, with risk: %d", s.Turns, s.Correct, s.Risky)
}

// PlayResult 一次出牌的结果
type PlayResult struct {
	Card     card.Card
	Accepted bool
	Risk     rule.Risk
}

// HintResult 一次提示的结果
type HintResult struct {
	Truthful bool
	Actual   []int // 队友手牌中真实命中的下标
}
