package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/deltapad/textcore/config"

	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

const serverName = "dp-rpc"

var (
	version = "0.0.1"
)

type MainConfig struct {
	ConfigFile string `cli:"name=config desc='config file (default $DELTAPAD_CONFIG)'"`
	Debug      bool   `cli:"name=debug desc='log requests at debug level'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, serverName).
		WithSynopsis(serverName + " [-config file] [-debug]").
		WithDescription(serverName + " serves the text core as JSON-RPC 2.0 over stdio.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func serve(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	log, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	file, err := config.LoadFile(cfg.ConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	conn := jsonrpc2.NewConn(stream)
	server := NewServer(file, log, conn)
	conn.Go(ctx, jsonrpc2.AsyncHandler(server.Handle))
	log.Info("serving", zap.String("version", version))
	<-conn.Done()
	if err := conn.Err(); err != nil && !errors.Is(err, io.EOF) {
		log.Info("connection closed", zap.Error(err))
	}
	return nil
}

// newLogger logs to stderr, stdout carries the protocol.
func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("could not create logger: %w", err)
	}
	return log, nil
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
