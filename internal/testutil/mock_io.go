//go:build !production

package testutil

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// ScriptInput 按顺序返回预设的命令行，读完后返回 io.EOF
type ScriptInput struct {
	Lines []string
	pos   int
}

// NewScriptInput 创建脚本输入
func NewScriptInput(lines ...string) *ScriptInput {
	return &ScriptInput{Lines: lines}
}

func (s *ScriptInput) ReadLine() (string, error) {
	if s.pos >= len(s.Lines) {
		return "", io.EOF
	}
	line := s.Lines[s.pos]
	s.pos++
	return line, nil
}

// RecordingOutput 记录写出的每一行
type RecordingOutput struct {
	Lines []string
}

func (r *RecordingOutput) WriteLine(line string) error {
	r.Lines = append(r.Lines, line)
	return nil
}

// MockOutput 实现 types.Output 的 mock
type MockOutput struct {
	mock.Mock
}

func (m *MockOutput) WriteLine(line string) error {
	args := m.Called(line)
	return args.Error(0)
}

// MockInput 实现 types.Input 的 mock
type MockInput struct {
	mock.Mock
}

func (m *MockInput) ReadLine() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
