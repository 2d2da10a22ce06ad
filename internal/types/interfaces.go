package types

// Input 输入来源，一次一行；没有更多输入时返回 io.EOF
type Input interface {
	ReadLine() (string, error)
}

// Output 输出目标，一次一行
type Output interface {
	WriteLine(line string) error
}
