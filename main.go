package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fzft/go-dynset/cmd"
	"github.com/fzft/go-dynset/log"
)

func main() {
	if err := log.InitLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %s\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "--demo" {
		cmd.Demo()
		return
	}

	log.Logger.Info("dynset", zap.String("build", BuildIdRaw()))
	sh := cmd.NewShell()
	if err := sh.Run(); err != nil {
		log.Logger.Error("shell exited", zap.Error(err))
		os.Exit(1)
	}
}
