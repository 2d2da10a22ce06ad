// Package engine drives game sessions from a stream of command lines.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/palemoky/hanabi/internal/apperrors"
	"github.com/palemoky/hanabi/internal/command"
	"github.com/palemoky/hanabi/internal/game/session"
	"github.com/palemoky/hanabi/internal/logger"
	"github.com/palemoky/hanabi/internal/types"
)

// State 引擎状态
type State int

const (
	StateAwaitingStart State = iota // 还没开过局
	StateInSession                  // 正在接受操作
	StateSessionOver                // 本局结束，只接受开局命令
)

// stateNames 状态名称映射表
var stateNames = map[State]string{
	StateAwaitingStart: "awaiting-start",
	StateInSession:     "in-session",
	StateSessionOver:   "session-over",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Engine 回合引擎，单线程使用
type Engine struct {
	out     types.Output
	state   State
	session *session.Session
}

// New 创建引擎，汇总行写到 out
func New(out types.Output) *Engine {
	return &Engine{out: out}
}

// State 返回当前状态
func (e *Engine) State() State {
	return e.state
}

// Session 返回当前（或刚结束的）一局，没有开过局时为 nil
func (e *Engine) Session() *session.Session {
	return e.session
}

// Handle 处理一行命令。解析和越界错误不改变状态
func (e *Engine) Handle(line string) error {
	cmd, err := command.Parse(line)
	if err != nil {
		return err
	}

	if cmd.Kind == command.StartGame {
		return e.start(cmd)
	}

	switch e.state {
	case StateAwaitingStart:
		return apperrors.ErrNoActiveGame
	case StateSessionOver:
		return nil
	}

	if err := e.apply(cmd); err != nil {
		return err
	}
	return e.finishIfOver()
}

func (e *Engine) start(cmd command.Command) error {
	s, err := session.New(cmd.Deck)
	if err != nil {
		return err
	}
	e.session = s
	e.state = StateInSession
	logger.WithSession(s.ID).Infof("新的一局开始，牌堆剩余 %d 张", s.Deck.Len())
	return e.finishIfOver()
}

func (e *Engine) apply(cmd command.Command) error {
	s := e.session
	log := logger.WithSession(s.ID).WithField("seat", s.Current().Seat)

	switch cmd.Kind {
	case command.PlayCard:
		res, err := s.Play(cmd.Index)
		if err != nil {
			return err
		}
		if res.Accepted {
			log.Debugf("打出 %s (%s)，桌面 %s", res.Card, res.Risk, s.Table)
		} else {
			log.Infof("打出 %s 接不上，桌面 %s", res.Card, s.Table)
		}
	case command.DropCard:
		c, err := s.Drop(cmd.Index)
		if err != nil {
			return err
		}
		log.Debugf("弃掉 %s", c)
	case command.TellRank, command.TellColor:
		res, err := s.Tell(cmd.Hint, cmd.Positions)
		if err != nil {
			return err
		}
		if !res.Truthful {
			log.Infof("错误的提示 %s: 声称 %v，实际 %v", cmd.Hint, cmd.Positions, res.Actual)
		}
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrNoMatchingCommand, cmd.Kind)
	}
	return nil
}

// finishIfOver 本局结束时输出汇总并进入 SessionOver
func (e *Engine) finishIfOver() error {
	if !e.session.Over() {
		return nil
	}
	e.state = StateSessionOver
	stats := e.session.Stats()
	logger.WithSession(e.session.ID).Infof("本局结束: %s，桌面 %s (%d 张)", stats, e.session.Table, e.session.Table.Score())
	if err := e.out.WriteLine(stats.String()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// readResult 读协程送出的一行输入
type readResult struct {
	line string
	err  error
}

// readPump 在独立协程中读取输入，ReadLine 阻塞时 Run 仍能响应取消
func readPump(in types.Input, lines chan<- readResult, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			select {
			case lines <- readResult{err: fmt.Errorf("input panic: %v", r)}:
			case <-done:
			}
		}
	}()

	for {
		line, err := in.ReadLine()
		select {
		case lines <- readResult{line: line, err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

// Run 逐行读取命令直到输入结束或 ctx 取消。被拒绝的命令记录日志后继续
func (e *Engine) Run(ctx context.Context, in types.Input) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			err = fmt.Errorf("engine panic: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make(chan readResult)
	done := make(chan struct{})
	defer close(done)
	go readPump(in, lines, done)

	for {
		var r readResult
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r = <-lines:
		}

		if errors.Is(r.err, io.EOF) {
			return nil
		}
		if r.err != nil {
			return fmt.Errorf("failed to read command: %w", r.err)
		}

		if err := e.Handle(r.line); err != nil {
			code := apperrors.Code(err)
			if code == 0 {
				return err
			}
			logger.LogError("命令被拒绝 %q (code %d): %v", r.line, code, err)
		}
	}
}
