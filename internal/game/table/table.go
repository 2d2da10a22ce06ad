package table

import (
	"strings"

	"github.com/palemoky/hanabi/internal/game/card"
)

// Table 桌面，每种颜色一列，记录该列最大的点数（0 表示还没有牌）
type Table struct {
	piles [card.NumColors]card.Rank
}

// New 创建空桌面
func New() *Table {
	return &Table{}
}

// Top 返回某颜色当前的最大点数
func (t *Table) Top(c card.Color) card.Rank {
	return t.piles[c]
}

// Accepts 牌必须正好接在同色那一列之后
func (t *Table) Accepts(c card.Card) bool {
	return t.piles[c.Color] == c.Rank-1
}

// Place 放牌，调用方须先用 Accepts 检查
func (t *Table) Place(c card.Card) {
	t.piles[c.Color] = c.Rank
}

// AllEmpty 报告是否还没有任何牌打出
func (t *Table) AllEmpty() bool {
	for _, r := range t.piles {
		if r != 0 {
			return false
		}
	}
	return true
}

// Score 桌面上所有牌的数量
func (t *Table) Score() int {
	total := 0
	for _, r := range t.piles {
		total += int(r)
	}
	return total
}

func (t *Table) String() string {
	var sb strings.Builder
	for i, c := range card.Colors {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.Abbrev())
		sb.WriteString(t.piles[c].String())
	}
	return sb.String()
}
