package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/palemoky/hanabi/internal/config"
	"github.com/palemoky/hanabi/internal/engine"
	"github.com/palemoky/hanabi/internal/logger"
	"github.com/palemoky/hanabi/internal/transport"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	if err := logger.Init(logger.Options{
		Dir:     cfg.Log.Dir,
		Level:   cfg.Log.Level,
		MaxSize: cfg.Log.MaxSizeBytes(),
	}); err != nil {
		log.Printf("初始化日志失败，输出到 stderr: %v", err)
	}
	defer logger.Close()

	in, inCloser, err := transport.OpenInput(cfg.Input.Path)
	if err != nil {
		log.Fatalf("打开输入失败: %v", err)
	}
	defer func() { _ = inCloser.Close() }()

	out, outCloser, err := transport.OpenOutput(cfg.Output.Path)
	if err != nil {
		log.Fatalf("打开输出失败: %v", err)
	}
	defer func() { _ = outCloser.Close() }()

	// 收到信号后停止读取
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := engine.New(out).Run(ctx, in); err != nil && ctx.Err() == nil {
		logger.LogError("引擎退出: %v", err)
		log.Printf("引擎退出: %v", err)
		os.Exit(1)
	}
}
