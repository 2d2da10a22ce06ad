package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/palemoky/hanabi/internal/apperrors"
)

// Color 定义牌的颜色
type Color int

// Rank 定义点数（1-5）
type Rank int

const (
	Red Color = iota
	Green
	Blue
	White
	Yellow
)

const (
	MinRank Rank = 1
	MaxRank Rank = 5
)

// Colors 所有颜色，按枚举顺序
var Colors = [...]Color{Red, Green, Blue, White, Yellow}

// Ranks 所有点数，从小到大
var Ranks = [...]Rank{1, 2, 3, 4, 5}

// NumColors 颜色数量
const NumColors = len(Colors)

// colorNames 颜色名称映射表
var colorNames = map[Color]string{
	Red:    "Red",
	Green:  "Green",
	Blue:   "Blue",
	White:  "White",
	Yellow: "Yellow",
}

// abbreviations 缩写到颜色的查找表，初始化后只读
var abbreviations = map[string]Color{
	"r": Red,
	"g": Green,
	"b": Blue,
	"w": White,
	"y": Yellow,
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "Color(" + strconv.Itoa(int(c)) + ")"
}

// Abbrev 返回颜色的单字母缩写
func (c Color) Abbrev() string {
	if name, ok := colorNames[c]; ok {
		return name[:1]
	}
	return "?"
}

// Valid 报告颜色是否属于枚举集合
func (c Color) Valid() bool {
	return c >= Red && c <= Yellow
}

func (r Rank) String() string {
	return strconv.Itoa(int(r))
}

// Valid 报告点数是否在 [1, 5] 范围内
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// ParseColor 解析单字母缩写或完整颜色名（不区分大小写）
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := abbreviations[key]; ok {
		return c, nil
	}
	for c, name := range colorNames {
		if strings.ToLower(name) == key {
			return c, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", apperrors.ErrInvalidColor, s)
}

// ParseRank 解析数字文本为点数
func ParseRank(s string) (Rank, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidRank, s)
	}
	r := Rank(n)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: %d", apperrors.ErrInvalidRank, n)
	}
	return r, nil
}

// Card 定义一张牌，值类型，可直接比较
type Card struct {
	Color Color
	Rank  Rank
}

// New 创建一张牌
func New(c Color, r Rank) Card {
	return Card{Color: c, Rank: r}
}

// String 返回 "R1" 形式的缩写
func (c Card) String() string {
	return c.Color.Abbrev() + c.Rank.String()
}

// ParseCard 解析 "<颜色><数字>" 形式的牌，如 "R1"、"green3"
func ParseCard(token string) (Card, error) {
	split := strings.IndexFunc(token, func(r rune) bool { return r >= '0' && r <= '9' })
	if split <= 0 {
		return Card{}, fmt.Errorf("%w: 无法识别的牌 %q", apperrors.ErrInvalidDeck, token)
	}
	color, err := ParseColor(token[:split])
	if err != nil {
		return Card{}, err
	}
	rank, err := ParseRank(token[split:])
	if err != nil {
		return Card{}, err
	}
	return New(color, rank), nil
}
