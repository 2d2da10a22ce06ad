package card

import (
	"fmt"
	"strings"

	"github.com/palemoky/hanabi/internal/apperrors"
)

// Deck 定义牌堆，Deck[0] 是下一张要摸的牌
type Deck []Card

// ParseDeck 从文本解析牌堆，如 "R1 G1 B1"，从左到右即摸牌顺序
func ParseDeck(spec string) (Deck, error) {
	tokens := strings.Fields(spec)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: 牌堆为空", apperrors.ErrInvalidDeck)
	}

	deck := make(Deck, 0, len(tokens))
	for _, token := range tokens {
		c, err := ParseCard(token)
		if err != nil {
			return nil, err
		}
		deck = append(deck, c)
	}
	return deck, nil
}

// Draw 摸一张牌；牌堆为空时 ok 为 false
func (d *Deck) Draw() (c Card, ok bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	c = (*d)[0]
	*d = (*d)[1:]
	return c, true
}

// Len 返回剩余牌数
func (d Deck) Len() int {
	return len(d)
}

// IsEmpty 报告牌堆是否已摸完
func (d Deck) IsEmpty() bool {
	return len(d) == 0
}

func (d Deck) String() string {
	parts := make([]string, len(d))
	for i, c := range d {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
