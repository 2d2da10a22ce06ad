package transport

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineReader 按行读取命令，实现 types.Input
type LineReader struct {
	scanner *bufio.Scanner
}

// NewLineReader 从 r 读取
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(r)}
}

// ReadLine 返回下一行（去掉行尾的 \r），结束时返回 io.EOF
func (l *LineReader) ReadLine() (string, error) {
	if l.scanner.Scan() {
		return strings.TrimRight(l.scanner.Text(), "\r"), nil
	}
	if err := l.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// LineWriter 按行写出，实现 types.Output
type LineWriter struct {
	w io.Writer
}

// NewLineWriter 写到 w
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w}
}

// WriteLine 写一行并换行
func (l *LineWriter) WriteLine(line string) error {
	_, err := fmt.Fprintln(l.w, line)
	return err
}

// OpenInput 路径为空时使用标准输入
func OpenInput(path string) (*LineReader, io.Closer, error) {
	if path == "" {
		return NewLineReader(os.Stdin), io.NopCloser(nil), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	return NewLineReader(f), f, nil
}

// OpenOutput 路径为空时使用标准输出；文件以追加方式打开
func OpenOutput(path string) (*LineWriter, io.Closer, error) {
	if path == "" {
		return NewLineWriter(os.Stdout), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open output %s: %w", path, err)
	}
	return NewLineWriter(f), f, nil
}
