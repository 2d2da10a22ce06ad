// Package command parses player input lines into typed game commands.
package command

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/palemoky/hanabi/internal/apperrors"
	"github.com/palemoky/hanabi/internal/game/card"
	"github.com/palemoky/hanabi/internal/game/knowledge"
)

// Kind 命令类型
type Kind int

const (
	StartGame Kind = iota
	PlayCard
	DropCard
	TellRank
	TellColor
)

// kindNames 命令名称映射表
var kindNames = map[Kind]string{
	StartGame: "start",
	PlayCard:  "play",
	DropCard:  "drop",
	TellRank:  "tell-rank",
	TellColor: "tell-color",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command 解析后的命令
type Command struct {
	Kind      Kind
	Deck      card.Deck      // StartGame
	Index     int            // PlayCard, DropCard
	Hint      knowledge.Hint // TellRank, TellColor
	Positions []int          // TellRank, TellColor，队友手牌下标
}

// 命令格式，输入会先转为小写再匹配。下标列表每项前必须有空白，允许为空
var (
	startPattern     = regexp.MustCompile(`^start new game with deck (.*)$`)
	playPattern      = regexp.MustCompile(`^play card (\d)$`)
	dropPattern      = regexp.MustCompile(`^drop card (\d)$`)
	tellRankPattern  = regexp.MustCompile(`^tell rank (\d) for cards((?:\s+\S+)*)$`)
	tellColorPattern = regexp.MustCompile(`^tell color (\w+) for cards((?:\s+\S+)*)$`)
)

// Parse 把一行输入解析为命令
func Parse(line string) (Command, error) {
	input := strings.ToLower(strings.TrimSpace(line))

	if m := startPattern.FindStringSubmatch(input); m != nil {
		deck, err := card.ParseDeck(m[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: StartGame, Deck: deck}, nil
	}
	if m := playPattern.FindStringSubmatch(input); m != nil {
		idx, _ := strconv.Atoi(m[1])
		return Command{Kind: PlayCard, Index: idx}, nil
	}
	if m := dropPattern.FindStringSubmatch(input); m != nil {
		idx, _ := strconv.Atoi(m[1])
		return Command{Kind: DropCard, Index: idx}, nil
	}
	if m := tellRankPattern.FindStringSubmatch(input); m != nil {
		rank, err := card.ParseRank(m[1])
		if err != nil {
			return Command{}, err
		}
		return tell(TellRank, knowledge.RankHint(rank), m[2])
	}
	if m := tellColorPattern.FindStringSubmatch(input); m != nil {
		color, err := card.ParseColor(m[1])
		if err != nil {
			return Command{}, err
		}
		return tell(TellColor, knowledge.ColorHint(color), m[2])
	}

	return Command{}, fmt.Errorf("%w: %q", apperrors.ErrNoMatchingCommand, line)
}

func tell(kind Kind, hint knowledge.Hint, list string) (Command, error) {
	positions, err := parsePositions(list)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: kind, Hint: hint, Positions: positions}, nil
}

// parsePositions 解析空格分隔的下标列表
func parsePositions(list string) ([]int, error) {
	fields := strings.Fields(list)
	positions := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidHint, f)
		}
		positions = append(positions, n)
	}
	return positions, nil
}

func (c Command) String() string {
	switch c.Kind {
	case StartGame:
		return "start new game with deck " + c.Deck.String()
	case PlayCard, DropCard:
		return fmt.Sprintf("%s card %d", c.Kind, c.Index)
	case TellRank, TellColor:
		return fmt.Sprintf("tell %s for cards %v", c.Hint, c.Positions)
	}
	return c.Kind.String()
}
