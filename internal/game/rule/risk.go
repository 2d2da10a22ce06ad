package rule

import (
	"github.com/palemoky/hanabi/internal/game/card"
	"github.com/palemoky/hanabi/internal/game/knowledge"
	"github.com/palemoky/hanabi/internal/game/table"
)

// Risk 出牌风险类型
type Risk int

const (
	Safe  Risk = iota // 玩家确定这张牌能打出
	Risky             // 玩家靠猜
)

func (r Risk) String() string {
	if r == Safe {
		return "safe"
	}
	return "risky"
}

// Classify 只根据玩家自己出牌前的认知判断风险，不看真实牌面
func Classify(k *knowledge.CardKnowledge, t *table.Table) Risk {
	_, colorKnown := k.Color.Known()
	rank, rankKnown := k.Rank.Known()

	switch {
	case !colorKnown && !rankKnown:
		return Risky
	case colorKnown && rankKnown:
		return Safe
	case rankKnown && rank == card.MinRank && t.AllEmpty():
		return Safe
	case rankKnown:
		return classifyByCandidates(k.Color.Candidates(), rank, t)
	default:
		return Risky
	}
}

// classifyByCandidates 对每个仍可能的颜色，该色一列都必须正好等着这个点数
func classifyByCandidates(colors []card.Color, rank card.Rank, t *table.Table) Risk {
	for _, c := range colors {
		if t.Top(c) != rank-1 {
			return Risky
		}
	}
	return Safe
}
