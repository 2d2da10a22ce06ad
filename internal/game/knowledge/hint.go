package knowledge

import (
	"fmt"

	"github.com/palemoky/hanabi/internal/game/card"
)

// HintKind 提示类型
type HintKind int

const (
	HintRank HintKind = iota
	HintColor
)

func (k HintKind) String() string {
	switch k {
	case HintRank:
		return "rank"
	case HintColor:
		return "color"
	}
	return fmt.Sprintf("HintKind(%d)", int(k))
}

// Hint 点数提示或颜色提示，Kind 决定哪个字段有效
type Hint struct {
	Kind  HintKind
	Rank  card.Rank
	Color card.Color
}

// RankHint 创建点数提示
func RankHint(r card.Rank) Hint {
	return Hint{Kind: HintRank, Rank: r}
}

// ColorHint 创建颜色提示
func ColorHint(c card.Color) Hint {
	return Hint{Kind: HintColor, Color: c}
}

// Matches 报告提示是否描述了这张牌
func (h Hint) Matches(c card.Card) bool {
	switch h.Kind {
	case HintRank:
		return c.Rank == h.Rank
	case HintColor:
		return c.Color == h.Color
	}
	return false
}

func (h Hint) String() string {
	switch h.Kind {
	case HintRank:
		return "rank " + h.Rank.String()
	case HintColor:
		return "color " + h.Color.String()
	}
	return h.Kind.String()
}
