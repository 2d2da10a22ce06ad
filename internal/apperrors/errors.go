package apperrors

import "errors"

// 错误码
const (
	ErrCodeNoMatchingCommand = 1001
	ErrCodeInvalidColor      = 1002
	ErrCodeInvalidRank       = 1003
	ErrCodeInvalidDeck       = 1004
	ErrCodeInvalidHint       = 1005
	ErrCodeInvalidCardIndex  = 2001
	ErrCodeNoActiveGame      = 3001
)

// GameError 游戏错误（命令解析、边界检查共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrNoMatchingCommand = &GameError{Code: ErrCodeNoMatchingCommand, Message: "no matching command"}
	ErrInvalidColor      = &GameError{Code: ErrCodeInvalidColor, Message: "无效的颜色"}
	ErrInvalidRank       = &GameError{Code: ErrCodeInvalidRank, Message: "无效的点数"}
	ErrInvalidDeck       = &GameError{Code: ErrCodeInvalidDeck, Message: "无效的牌堆"}
	ErrInvalidHint       = &GameError{Code: ErrCodeInvalidHint, Message: "无效的提示参数"}
	ErrInvalidCardIndex  = &GameError{Code: ErrCodeInvalidCardIndex, Message: "invalid card index"}
	ErrNoActiveGame      = &GameError{Code: ErrCodeNoActiveGame, Message: "游戏尚未开始"}
)

// Code 返回错误链中第一个 GameError 的错误码，没有则返回 0
func Code(err error) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return 0
}
