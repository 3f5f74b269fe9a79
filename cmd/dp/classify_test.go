package main

import (
	"errors"
	"testing"

	"github.com/deltapad/textcore/classify"
	"github.com/deltapad/textcore/config"

	"github.com/scott-cotton/cli"
)

func TestClassifyHints(t *testing.T) {
	mainCfg := &MainConfig{File: config.Default()}
	mainCfg.File.Classify.Fallback = classify.Markdown

	cfg := &ClassifyConfig{MainConfig: mainCfg}
	h, err := cfg.hints("src/app.ts")
	if err != nil {
		t.Fatal(err)
	}
	if h.Filename != "src/app.ts" || h.Fallback != classify.Markdown || h.Prior != "" {
		t.Errorf("got %+v", h)
	}

	cfg = &ClassifyConfig{MainConfig: mainCfg, Name: "x.py", Prior: "golang", Fallback: "YAML"}
	h, err = cfg.hints("-")
	if err != nil {
		t.Fatal(err)
	}
	want := classify.Hints{Filename: "x.py", Prior: classify.Go, Fallback: classify.YAML}
	if h != want {
		t.Errorf("got %+v, want %+v", h, want)
	}

	cfg = &ClassifyConfig{MainConfig: mainCfg, Prior: "cobol"}
	if _, err := cfg.hints(""); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}
