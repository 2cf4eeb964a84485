// Copyright 2018 The Ebiten Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"rocket-dodge/content/config"
	"rocket-dodge/content/flow"
	"rocket-dodge/content/store"
	"rocket-dodge/content/terminal"
)

func Init(logger *log.Logger) {
	InitImage()
	if err := InitFont(); err != nil {
		logger.Fatal("load font", "err", err)
	}
}

// newLogger 终端前端占用了 stderr，没有指定日志文件时丢弃日志
func newLogger(settings config.Settings) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closer := func() {}
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			w = f
			closer = func() { f.Close() }
		}
	} else if settings.Frontend == config.FrontendTerminal {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rocket",
	})
	if level, err := log.ParseLevel(settings.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger, closer
}

func main() {
	configPath := flag.String("config", config.GetEnv(config.EnvConfigPath, "rocket.toml"), "path to the TOML settings file")
	modeFlag := flag.String("mode", "", "start directly in 4G or 5G instead of showing the mode screen")
	frontendFlag := flag.String("frontend", "", "ebiten or terminal, overrides the settings file")
	flag.Parse()

	settings, settingsErr := config.LoadSettings(*configPath)
	if *modeFlag != "" {
		settings.Mode = *modeFlag
	}
	if *frontendFlag != "" {
		settings.Frontend = *frontendFlag
	}

	logger, closeLog := newLogger(settings)
	defer closeLog()
	if settingsErr != nil {
		logger.Fatal("load settings", "path", *configPath, "err", settingsErr)
	}

	scores, err := store.Open(settings.ScoreFile, logger)
	if err != nil {
		logger.Fatal("open score file", "path", settings.ScoreFile, "err", err)
	}

	fl := flow.New(flow.Options{
		Store:  scores,
		Seed:   settings.Seed,
		Logger: logger,
	})
	if settings.Mode != "" {
		// 无法识别的模式回到模式选择画面
		if err := fl.StartLabel(settings.Mode); err != nil {
			logger.Warn("showing mode selection", "err", err)
		}
	}

	switch settings.Frontend {
	case config.FrontendTerminal:
		runTerminal(fl, logger)
	case config.FrontendEbiten:
		runEbiten(fl, settings, logger)
	default:
		logger.Fatal("unknown frontend", "frontend", settings.Frontend)
	}
}

func runEbiten(fl *flow.Flow, settings config.Settings, logger *log.Logger) {
	Init(logger)
	g := &Game{
		flow:   fl,
		logger: logger,
	}
	if settings.Sound {
		p, err := newHitPlayer()
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		}
		g.hitPlayer = p
	}

	ebiten.SetWindowSize(config.ScreenWidth*settings.WindowScale, config.ScreenHeight*settings.WindowScale)
	ebiten.SetWindowTitle("Rocket Dodge")
	ebiten.SetTPS(config.FrameRate)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game error", "err", err)
	}
}

func runTerminal(fl *flow.Flow, logger *log.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("open terminal", "err", err)
	}
	if err := terminal.Run(ctx, screen, fl, logger); err != nil {
		logger.Fatal("terminal error", "err", err)
	}
}
