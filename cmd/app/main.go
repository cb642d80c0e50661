// Image Editor - flips, rotation, color filters, blur and bulge with restore to original

package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"

	"photo-editor/internal/codec"
	"photo-editor/internal/codec/opencv"
	"photo-editor/internal/config"
	"photo-editor/internal/core"
	"photo-editor/internal/gui"
)

const (
	AppID      = "com.photoeditor.image-editor"
	AppVersion = "1.0.0"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := cfg.NewLogger(os.Stdout)
	logger.WithFields(logrus.Fields{
		"version":     AppVersion,
		"debug_mode":  cfg.Debug,
		"codec":       cfg.Codec,
		"blur_radius": cfg.BlurRadius,
		"edge":        cfg.Edge,
	}).Info("Starting Image Editor")

	session := core.NewSession(cfg.Session(), logger)
	loader := codec.NewImageLoader(newCodec(cfg.Codec), logger)

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(theme.DocumentIcon())

	editor := gui.NewApplication(myApp, session, loader, logger)
	if cfg.Open != "" {
		if err := editor.LoadFile(cfg.Open); err != nil {
			logger.WithField("error", err).Error("Failed to open startup image")
		}
	}
	editor.ShowAndRun()

	logger.Info("Application shutting down gracefully")
}

func newCodec(name string) codec.Codec {
	if name == "opencv" {
		return opencv.New()
	}
	return codec.NewStandard()
}
